package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/reliefmap/relief-coordination-api/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// An in-memory sqlite database exists per connection; a second connection
	// would see an empty schema.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.HelpRequest{},
		&models.Donation{},
		&models.Item{},
		&models.Camp{},
	)
	require.NoError(t, err)

	t.Cleanup(func() { sqlDB.Close() })
	return db
}
