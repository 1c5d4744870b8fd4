package db

import (
	"fmt"

	"orderconsole/internal/config"
	"orderconsole/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.PostgresConfig, prod bool) (*gorm.DB, error) {
	gcfg := &gorm.Config{}
	if prod {
		gcfg.Logger = logger.Default.LogMode(logger.Warn)
	}
	return gorm.Open(postgres.Open(cfg.DSN()), gcfg)
}

// Migrate creates or updates the console's own tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.AuditLog{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
