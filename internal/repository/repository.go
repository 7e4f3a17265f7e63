package repository

import (
	"time"

	"github.com/reliefmap/relief-coordination-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// RefreshTokenRepository defines the interface for refresh token persistence
type RefreshTokenRepository interface {
	// Create stores a freshly issued refresh token
	Create(token *models.RefreshToken) error

	// DeleteExpired removes tokens whose expiry is before the given time
	DeleteExpired(before time.Time) error
}

// HelpRequestFilter holds filtering options for listing help requests
type HelpRequestFilter struct {
	// Only rows created at or after this time are returned.
	CreatedAfter time.Time
	Status       *models.HelpRequestStatus
	Urgency      *models.Urgency
	// Case-insensitive substring match on the approximate area.
	District string
}

// PeopleSummary holds the household composition sums of the summary.
type PeopleSummary struct {
	TotalPeople int64 `json:"totalPeople"`
	Elders      int64 `json:"elders"`
	Children    int64 `json:"children"`
	Pets        int64 `json:"pets"`
}

// HelpRequestSummary is the aggregate view over the active window.
type HelpRequestSummary struct {
	Total       int64                              `json:"total"`
	ByUrgency   map[models.Urgency]int64           `json:"byUrgency"`
	ByStatus    map[models.HelpRequestStatus]int64 `json:"byStatus"`
	ByDistrict  map[string]int64                   `json:"byDistrict"`
	People      PeopleSummary                      `json:"people"`
	RationItems map[string]int64                   `json:"rationItems"`
}

// HelpRequestRepository defines the interface for help request data access
type HelpRequestRepository interface {
	// Create creates a new help request
	Create(helpRequest *models.HelpRequest) error

	// FindByID finds a help request by ID
	FindByID(id uint64) (*models.HelpRequest, error)

	// List retrieves help requests matching the filter, newest first
	List(filter HelpRequestFilter) ([]models.HelpRequest, error)

	// Summary aggregates all help requests created at or after the given time
	Summary(createdAfter time.Time) (*HelpRequestSummary, error)
}

// DonationRepository defines the interface for donation data access
type DonationRepository interface {
	// Create creates a new donation
	Create(donation *models.Donation) error

	// FindByID finds a donation by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Donation, error)

	// ListByHelpRequestID lists donations for a help request, newest first,
	// with the donator preloaded
	ListByHelpRequestID(helpRequestID uint64) ([]models.Donation, error)

	// MarkScheduled sets the donator-scheduled flag
	MarkScheduled(id uint64) error

	// MarkCompletedByDonator sets the donator-completed flag
	MarkCompletedByDonator(id uint64) error

	// MarkCompletedByOwner sets the owner-completed flag
	MarkCompletedByOwner(id uint64) error
}

// ItemRepository defines the interface for ration item catalog access
type ItemRepository interface {
	Create(item *models.Item) error
	FindByID(id uint64) (*models.Item, error)
	List() ([]models.Item, error)
	Update(item *models.Item) error
	Delete(id uint64) error
}

// CampRepository defines the interface for relief camp data access
type CampRepository interface {
	Create(camp *models.Camp) error
	FindByID(id uint64) (*models.Camp, error)
	List() ([]models.Camp, error)
}
