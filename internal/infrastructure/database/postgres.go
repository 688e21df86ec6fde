package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/prasetyow/nota-spbu-api/internal/config"
	"github.com/prasetyow/nota-spbu-api/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(&entity.StationProfile{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData inserts the default station profile when the table is
// empty, so the selectable list is never without a profile and the
// delete-last guard holds from first boot.
func SeedDefaultData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.StationProfile{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count station profiles: %w", err)
	}
	if count > 0 {
		return nil
	}

	station := entity.DefaultStationProfile()
	if err := db.Create(station).Error; err != nil {
		return fmt.Errorf("failed to seed default station profile: %w", err)
	}

	log.Printf("Seeded default station profile: %s (%s)", station.Name, station.ID)
	return nil
}
