package constants

import "time"

// Authentication
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6

	MinContactNumberLength = 8
	MaxContactNumberLength = 20

	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour

	ContextKeyUserID = "user_id"
)

// Help requests older than this are treated as inactive regardless of their
// stored status.
const ActiveWindowDays = 30
