package repository

import (
	"gorm.io/gorm"

	"github.com/reliefmap/relief-coordination-api/internal/models"
)

// GormDonationRepository is a GORM implementation of DonationRepository
type GormDonationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new DonationRepository
func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &GormDonationRepository{db: db}
}

// Create creates a new donation
func (r *GormDonationRepository) Create(donation *models.Donation) error {
	return r.db.Create(donation).Error
}

// FindByID finds a donation by ID with optional preloading
func (r *GormDonationRepository) FindByID(id uint64, preload ...string) (*models.Donation, error) {
	var donation models.Donation
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&donation, id).Error; err != nil {
		return nil, err
	}

	return &donation, nil
}

// ListByHelpRequestID lists donations for a help request, newest first
func (r *GormDonationRepository) ListByHelpRequestID(helpRequestID uint64) ([]models.Donation, error) {
	var donations []models.Donation
	if err := r.db.Preload("Donator").
		Where("help_request_id = ?", helpRequestID).
		Order("created_at DESC, id DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// MarkScheduled sets the donator-scheduled flag
func (r *GormDonationRepository) MarkScheduled(id uint64) error {
	return r.setFlag(id, "donator_marked_scheduled")
}

// MarkCompletedByDonator sets the donator-completed flag
func (r *GormDonationRepository) MarkCompletedByDonator(id uint64) error {
	return r.setFlag(id, "donator_marked_completed")
}

// MarkCompletedByOwner sets the owner-completed flag
func (r *GormDonationRepository) MarkCompletedByOwner(id uint64) error {
	return r.setFlag(id, "owner_marked_completed")
}

// setFlag writes a single completion flag to true. Flags are monotonic; they
// are never written back to false.
func (r *GormDonationRepository) setFlag(id uint64, column string) error {
	return r.db.Model(&models.Donation{}).
		Where("id = ?", id).
		Update(column, true).Error
}
