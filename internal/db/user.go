package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// RoleAdmin 拥有全部内容的写权限。
	RoleAdmin = "admin"
	// RoleEditor 仅保留给后续的受限编辑场景。
	RoleEditor = "editor"
)

// User 定义了后台账号模型，密码始终以 bcrypt 哈希存储。
type User struct {
	gorm.Model
	Username string `gorm:"size:100;uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string `gorm:"size:100"`
	Role     string `gorm:"size:20;not null;default:editor"`
}

// EnsureAdminUser 存在性检查：若提供的用户名与密码均非空且不存在对应账号，
// 则创建一个 bcrypt 哈希的管理员用户。
func EnsureAdminUser(gdb *gorm.DB, username, password string) error {
	trimmedUser := strings.TrimSpace(username)
	trimmedPassword := strings.TrimSpace(password)
	if trimmedUser == "" || trimmedPassword == "" {
		return nil
	}

	if gdb == nil {
		return errors.New("database not initialized")
	}

	var existing User
	if err := gdb.Where("username = ?", trimmedUser).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		return gdb.Create(&User{
			Username: trimmedUser,
			Password: string(hashed),
			Name:     trimmedUser,
			Role:     RoleAdmin,
		}).Error
	}

	return nil
}
