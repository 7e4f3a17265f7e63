package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/reliefmap/relief-coordination-api/internal/constants"
	"github.com/reliefmap/relief-coordination-api/internal/models"
	"github.com/reliefmap/relief-coordination-api/internal/repository"
)

var (
	ErrHelpRequestNotFound = errors.New("help request not found")
	ErrInvalidUrgency      = errors.New("urgency must be LOW, MEDIUM or HIGH")
)

// HelpRequestService handles help request business logic.
type HelpRequestService struct {
	helpRequestRepo repository.HelpRequestRepository
}

// NewHelpRequestService creates a new HelpRequestService.
func NewHelpRequestService(helpRequestRepo repository.HelpRequestRepository) *HelpRequestService {
	return &HelpRequestService{helpRequestRepo: helpRequestRepo}
}

// ListHelpRequestsInput represents filters for the open listing.
type ListHelpRequestsInput struct {
	Urgency  *models.Urgency
	District string
}

// CreateHelpRequestInput represents input for creating a help request.
type CreateHelpRequestInput struct {
	// Nil for anonymous requests.
	UserID      *uint64
	Lat         float64
	Lng         float64
	Urgency     models.Urgency
	ShortNote   string
	ApproxArea  string
	ContactType string
	Contact     string
	Name        string
	TotalPeople int
	Elders      int
	Children    int
	Pets        int
	RationItems []string
}

// activeWindowStart returns the lower bound of the trailing active window,
// computed at call time.
func activeWindowStart() time.Time {
	return time.Now().AddDate(0, 0, -constants.ActiveWindowDays)
}

// ListOpen returns OPEN help requests created within the active window,
// newest first. Requests older than the window are excluded regardless of
// their stored status.
func (s *HelpRequestService) ListOpen(input ListHelpRequestsInput) ([]models.HelpRequest, error) {
	if input.Urgency != nil && !validUrgency(*input.Urgency) {
		return nil, ErrInvalidUrgency
	}

	status := models.HelpRequestStatusOpen
	filter := repository.HelpRequestFilter{
		CreatedAfter: activeWindowStart(),
		Status:       &status,
		Urgency:      input.Urgency,
		District:     strings.TrimSpace(input.District),
	}

	helpRequests, err := s.helpRequestRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list help requests: %w", err)
	}

	return helpRequests, nil
}

// Get returns a single help request by ID.
func (s *HelpRequestService) Get(id uint64) (*models.HelpRequest, error) {
	helpRequest, err := s.helpRequestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHelpRequestNotFound
		}
		return nil, fmt.Errorf("failed to find help request: %w", err)
	}

	return helpRequest, nil
}

// Create stores a new help request with status OPEN.
func (s *HelpRequestService) Create(input CreateHelpRequestInput) (*models.HelpRequest, error) {
	if !validUrgency(input.Urgency) {
		return nil, ErrInvalidUrgency
	}

	helpRequest := &models.HelpRequest{
		UserID:      input.UserID,
		Lat:         input.Lat,
		Lng:         input.Lng,
		Urgency:     input.Urgency,
		ShortNote:   input.ShortNote,
		ContactType: input.ContactType,
		Contact:     input.Contact,
		Name:        input.Name,
		TotalPeople: input.TotalPeople,
		Elders:      input.Elders,
		Children:    input.Children,
		Pets:        input.Pets,
		RationItems: datatypes.NewJSONSlice(input.RationItems),
		Status:      models.HelpRequestStatusOpen,
	}
	if area := strings.TrimSpace(input.ApproxArea); area != "" {
		helpRequest.ApproxArea = &area
	}

	if err := s.helpRequestRepo.Create(helpRequest); err != nil {
		return nil, fmt.Errorf("failed to create help request: %w", err)
	}

	return helpRequest, nil
}

// Summary aggregates every help request inside the active window, all
// statuses included. The dashboard wants totals; only the listing narrows to
// OPEN.
func (s *HelpRequestService) Summary() (*repository.HelpRequestSummary, error) {
	summary, err := s.helpRequestRepo.Summary(activeWindowStart())
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}
	return summary, nil
}

func validUrgency(u models.Urgency) bool {
	switch u {
	case models.UrgencyLow, models.UrgencyMedium, models.UrgencyHigh:
		return true
	default:
		return false
	}
}
