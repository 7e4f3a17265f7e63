package services

import (
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/reliefmap/relief-coordination-api/internal/models"
	"github.com/reliefmap/relief-coordination-api/internal/repository"
)

var (
	ErrDonationNotFound    = errors.New("donation not found")
	ErrRationItemsRequired = errors.New("ration items are required")
	ErrNotDonationDonator  = errors.New("only the donator can update this donation")
	ErrNotHelpRequestOwner = errors.New("only the help request owner can update this donation")
)

// DonationService handles donation business logic.
type DonationService struct {
	donationRepo    repository.DonationRepository
	helpRequestRepo repository.HelpRequestRepository
}

// NewDonationService creates a new DonationService.
func NewDonationService(donationRepo repository.DonationRepository, helpRequestRepo repository.HelpRequestRepository) *DonationService {
	return &DonationService{
		donationRepo:    donationRepo,
		helpRequestRepo: helpRequestRepo,
	}
}

// DonationListing is the result of listing a help request's donations.
// RequesterIsOwner tells the caller whether donator contact numbers may be
// disclosed.
type DonationListing struct {
	Donations        []models.Donation
	RequesterIsOwner bool
}

// ListByHelpRequest returns all donations for a help request, newest first,
// with donator details preloaded.
func (s *DonationService) ListByHelpRequest(helpRequestID uint64, requesterID *uint64) (*DonationListing, error) {
	helpRequest, err := s.helpRequestRepo.FindByID(helpRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHelpRequestNotFound
		}
		return nil, fmt.Errorf("failed to find help request: %w", err)
	}

	donations, err := s.donationRepo.ListByHelpRequestID(helpRequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}

	isOwner := requesterID != nil &&
		helpRequest.UserID != nil &&
		*helpRequest.UserID == *requesterID

	return &DonationListing{
		Donations:        donations,
		RequesterIsOwner: isOwner,
	}, nil
}

// Create pledges a donation against an existing help request. All completion
// flags start false.
func (s *DonationService) Create(helpRequestID, donatorID uint64, rationItems map[string]int64) (*models.Donation, error) {
	if len(rationItems) == 0 {
		return nil, ErrRationItemsRequired
	}

	if _, err := s.helpRequestRepo.FindByID(helpRequestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHelpRequestNotFound
		}
		return nil, fmt.Errorf("failed to find help request: %w", err)
	}

	donation := &models.Donation{
		HelpRequestID: helpRequestID,
		DonatorID:     donatorID,
		RationItems:   datatypes.NewJSONType(rationItems),
	}

	if err := s.donationRepo.Create(donation); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}

	return s.donationRepo.FindByID(donation.ID, "Donator")
}

// MarkAsScheduled sets the donator-scheduled flag. Only the donator may call
// it; repeating the call simply re-writes true.
func (s *DonationService) MarkAsScheduled(donationID, requesterID uint64) (*models.Donation, error) {
	return s.setDonatorFlag(donationID, requesterID, s.donationRepo.MarkScheduled)
}

// MarkAsCompletedByDonator sets the donator-completed flag. The API does not
// require the donation to have been scheduled first.
func (s *DonationService) MarkAsCompletedByDonator(donationID, requesterID uint64) (*models.Donation, error) {
	return s.setDonatorFlag(donationID, requesterID, s.donationRepo.MarkCompletedByDonator)
}

// MarkAsCompletedByOwner sets the owner-completed flag. Only the owner of the
// associated help request may call it.
func (s *DonationService) MarkAsCompletedByOwner(donationID, requesterID uint64) (*models.Donation, error) {
	donation, err := s.findDonation(donationID)
	if err != nil {
		return nil, err
	}

	helpRequest, err := s.helpRequestRepo.FindByID(donation.HelpRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHelpRequestNotFound
		}
		return nil, fmt.Errorf("failed to find help request: %w", err)
	}

	if helpRequest.UserID == nil || *helpRequest.UserID != requesterID {
		return nil, ErrNotHelpRequestOwner
	}

	if err := s.donationRepo.MarkCompletedByOwner(donationID); err != nil {
		return nil, fmt.Errorf("failed to update donation: %w", err)
	}

	return s.donationRepo.FindByID(donationID, "Donator")
}

func (s *DonationService) setDonatorFlag(donationID, requesterID uint64, mark func(uint64) error) (*models.Donation, error) {
	donation, err := s.findDonation(donationID)
	if err != nil {
		return nil, err
	}

	if donation.DonatorID != requesterID {
		return nil, ErrNotDonationDonator
	}

	if err := mark(donationID); err != nil {
		return nil, fmt.Errorf("failed to update donation: %w", err)
	}

	return s.donationRepo.FindByID(donationID, "Donator")
}

func (s *DonationService) findDonation(id uint64) (*models.Donation, error) {
	donation, err := s.donationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, fmt.Errorf("failed to find donation: %w", err)
	}
	return donation, nil
}
