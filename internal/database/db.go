package database

import (
	"backoffice/internal/model"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewConnection opens PostgreSQL through GORM and migrates the health-check table.
func NewConnection(dsn string, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.HealthCheck{}); err != nil {
		log.Warn().Err(err).Msg("Failed to auto-migrate health check table")
	}

	return db, nil
}
