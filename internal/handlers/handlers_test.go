package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/reliefmap/relief-coordination-api/internal/database"
	"github.com/reliefmap/relief-coordination-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// An in-memory sqlite database exists per connection.
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

	database.SetDB(db)

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// apiResponse mirrors the envelope every endpoint replies with.
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func decodeResponse(t *testing.T, body []byte) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func decodeData(t *testing.T, body []byte, out interface{}) apiResponse {
	t.Helper()
	resp := decodeResponse(t, body)
	require.NoError(t, json.Unmarshal(resp.Data, out))
	return resp
}
