package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/justsurfingit/job-canvas/internal/models"
)

// Connect opens the Postgres database at dsn and runs migrations.
func Connect(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	logger.Info("Migrations applied")
	return db, nil
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Company{}, &models.Job{}, &models.JobEvent{}, &models.DiagramRun{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
