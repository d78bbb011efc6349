package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// Init 打开数据库连接。databasePath 为空时将回退到默认值 portfolio.db。
// 建表交由 Migrate 完成，便于协调器在启动时做幂等检查。
func Init(databasePath string) error {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "portfolio.db"
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}

	return nil
}

// Migrate 为固定的内容表执行自动迁移，可安全重复调用。
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&User{},
		&HeroSection{},
		&AboutSection{},
		&AboutParagraph{},
		&AboutTrait{},
		&SkillsSection{},
		&Skill{},
		&ProjectsSection{},
		&Project{},
		&ProjectTechStack{},
		&ContactSection{},
		&ContactSocial{},
		&SiteConfig{},
	)
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
