package repository

import (
	"gorm.io/gorm"

	"github.com/reliefmap/relief-coordination-api/internal/models"
)

// GormCampRepository is a GORM implementation of CampRepository
type GormCampRepository struct {
	db *gorm.DB
}

// NewCampRepository creates a new CampRepository
func NewCampRepository(db *gorm.DB) CampRepository {
	return &GormCampRepository{db: db}
}

func (r *GormCampRepository) Create(camp *models.Camp) error {
	return r.db.Create(camp).Error
}

func (r *GormCampRepository) FindByID(id uint64) (*models.Camp, error) {
	var camp models.Camp
	if err := r.db.First(&camp, id).Error; err != nil {
		return nil, err
	}
	return &camp, nil
}

func (r *GormCampRepository) List() ([]models.Camp, error) {
	var camps []models.Camp
	if err := r.db.Order("name ASC").Find(&camps).Error; err != nil {
		return nil, err
	}
	return camps, nil
}
