package db

import (
	"fmt"

	"checkout/internal/config"
	infraRepo "checkout/internal/infra/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), Options(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	return gdb, nil
}

// Options は本番/テスト共通のgorm設定
func Options(cfg config.Config) *gorm.Config {
	return &gorm.Config{
		//一意制約違反などを gorm.ErrDuplicatedKey に揃える
		TranslateError: true,
		Logger:         logger.Default.LogMode(logLevel(cfg.DBLogLevel)),
	}
}

// Migrate は orders / order_items を作る
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(infraRepo.Models()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Ping はヘルスチェック用
func Ping(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func logLevel(v string) logger.LogLevel {
	switch v {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
