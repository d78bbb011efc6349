package db

import (
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupUserTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:users-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&User{}); err != nil {
		t.Fatalf("failed to migrate users: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestEnsureAdminUserHashesPassword(t *testing.T) {
	gdb, cleanup := setupUserTestDB(t)
	defer cleanup()

	if err := EnsureAdminUser(gdb, "admin", "s3cret"); err != nil {
		t.Fatalf("ensure admin failed: %v", err)
	}

	var user User
	if err := gdb.Where("username = ?", "admin").First(&user).Error; err != nil {
		t.Fatalf("admin user missing: %v", err)
	}
	if user.Role != RoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}
	if user.Password == "s3cret" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestEnsureAdminUserIsIdempotent(t *testing.T) {
	gdb, cleanup := setupUserTestDB(t)
	defer cleanup()

	if err := EnsureAdminUser(gdb, "admin", "first"); err != nil {
		t.Fatalf("ensure admin failed: %v", err)
	}
	if err := EnsureAdminUser(gdb, "admin", "second"); err != nil {
		t.Fatalf("repeat ensure failed: %v", err)
	}

	var count int64
	gdb.Model(&User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected a single admin user, found %d", count)
	}

	var user User
	gdb.Where("username = ?", "admin").First(&user)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("first")); err != nil {
		t.Fatalf("existing credentials were overwritten: %v", err)
	}
}

func TestEnsureAdminUserSkipsBlankCredentials(t *testing.T) {
	gdb, cleanup := setupUserTestDB(t)
	defer cleanup()

	if err := EnsureAdminUser(gdb, "", ""); err != nil {
		t.Fatalf("blank credentials should be a no-op: %v", err)
	}

	var count int64
	gdb.Model(&User{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no users, found %d", count)
	}
}
