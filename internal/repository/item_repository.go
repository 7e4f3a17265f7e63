package repository

import (
	"gorm.io/gorm"

	"github.com/reliefmap/relief-coordination-api/internal/models"
)

// GormItemRepository is a GORM implementation of ItemRepository
type GormItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

func (r *GormItemRepository) FindByID(id uint64) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormItemRepository) List() ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormItemRepository) Update(item *models.Item) error {
	return r.db.Save(item).Error
}

// Delete soft deletes an item
func (r *GormItemRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Item{}, id).Error
}
