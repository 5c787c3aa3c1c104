package database

import (
	"fmt"
	"os"
	"time"

	"go-grocery-pos/internal/auth"
	"go-grocery-pos/internal/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Open dials the database for the given driver ("mysql" or "sqlite").
// For sqlite the dsn is the database file path.
//
// FK constraints stay out of the schema: cascading deletes run as
// explicit application transactions (see DeleteCategory/DeleteProduct),
// and historical sale items must keep referencing deleted products.
func Open(driver, dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true}
	switch driver {
	case "mysql":
		return gorm.Open(mysql.Open(dsn), cfg)
	case "sqlite", "":
		if dsn == "" {
			dsn = "grocery_pos.db"
		}
		return gorm.Open(sqlite.Open(dsn), cfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// Migrate syncs the schema for every entity the app persists.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Sale{},
		&models.SaleItem{},
		&models.Inventory{},
	)
}

// Connect reads DB_DRIVER/DB_DSN from the environment, opens the database
// (retrying while it comes up), migrates the schema and seeds the first
// superadmin account when the users table is empty.
func Connect() {
	driver := os.Getenv("DB_DRIVER")
	dsn := os.Getenv("DB_DSN")

	var err error
	for i := 0; i < 5; i++ {
		DB, err = Open(driver, dsn)
		if err == nil {
			break
		}
		zap.L().Warn("failed to connect to database, retrying in 2 seconds",
			zap.Int("attempt", i+1), zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		zap.L().Fatal("failed to connect to database after 5 attempts", zap.Error(err))
	}

	if err := Migrate(DB); err != nil {
		zap.L().Fatal("failed to migrate database schema", zap.Error(err))
	}
	zap.L().Info("database schema synced")

	if err := SeedSuperadmin(DB); err != nil {
		zap.L().Fatal("failed to seed superadmin account", zap.Error(err))
	}
}

// SeedSuperadmin creates the bootstrap superadmin when no users exist yet.
// The password comes from SUPERADMIN_PASSWORD and falls back to a default
// that should only ever survive on a dev box.
func SeedSuperadmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := os.Getenv("SUPERADMIN_PASSWORD")
	if password == "" {
		password = "superadmin123"
		zap.L().Warn("SUPERADMIN_PASSWORD not set, seeding superadmin with the default password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Username:     "superadmin",
		PasswordHash: string(hash),
		Role:         auth.RoleSuperadmin,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}
	zap.L().Info("superadmin account created", zap.String("username", user.Username))
	return nil
}
