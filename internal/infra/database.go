package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/asa131211/sanchez-park/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create / update all tables.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates the schema. Also used by tests.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Shortcut{},
		&model.Product{},
		&model.CashBox{},
		&model.Sale{},
		&model.SaleItem{},
		&model.Settings{},
	)
}

// SeedDefaults creates the initial admin account and the settings row on an
// empty database so the first login works out of the box.
func SeedDefaults(ctx context.Context, db *gorm.DB, adminPassword string) error {
	var count int64
	if err := db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 12)
		if err != nil {
			return err
		}
		admin := &model.User{
			Username:     "admin",
			Name:         "Administrador",
			PasswordHash: string(hash),
			Role:         model.RoleAdmin,
			Active:       true,
		}
		if err := db.WithContext(ctx).Create(admin).Error; err != nil {
			return err
		}
	}

	var settings model.Settings
	err := db.WithContext(ctx).First(&settings, model.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = model.Settings{ID: model.SettingsID, CompanyName: "Sánchez Park"}
		return db.WithContext(ctx).Create(&settings).Error
	}
	return err
}
