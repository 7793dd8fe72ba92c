package database

import (
	"vastuguru-api/internal/domain/cart"
	"vastuguru-api/internal/domain/content"
	"vastuguru-api/internal/domain/services"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(dsn string) {
	if dsn == "" {
		zap.L().Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		zap.L().Fatal("failed to connect to database", zap.Error(err))
	}

	DB = db

	// gen_random_uuid() for services.id
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		zap.L().Fatal("failed to enable pgcrypto extension", zap.Error(err))
	}

	if err := DB.AutoMigrate(
		&services.Service{},
		&content.Section{},
		&content.About{},
		&cart.Item{},
	); err != nil {
		zap.L().Fatal("auto-migrate failed", zap.Error(err))
	}

	zap.L().Info("connected and migrated")
}
