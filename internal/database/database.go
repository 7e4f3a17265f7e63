package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/reliefmap/relief-coordination-api/internal/config"
	"github.com/reliefmap/relief-coordination-api/internal/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Surfaces unique constraint violations as gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"host": cfg.DBHost,
		"db":   cfg.DBName,
	}).Info("database connection established")
	return nil
}

func Migrate() error {
	logrus.Info("running database migrations")
	err := DB.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.HelpRequest{},
		&models.Donation{},
		&models.Item{},
		&models.Camp{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
