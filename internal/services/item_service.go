package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/reliefmap/relief-coordination-api/internal/models"
	"github.com/reliefmap/relief-coordination-api/internal/repository"
)

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrItemNameRequired = errors.New("item name is required")
	ErrItemNameTaken    = errors.New("item name already exists")
)

// ItemService manages the ration item catalog.
type ItemService struct {
	itemRepo repository.ItemRepository
}

func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// CreateItemInput represents input for creating or updating a catalog item.
type CreateItemInput struct {
	Name        string
	Unit        string
	Description string
	Active      *bool
}

func (s *ItemService) List() ([]models.Item, error) {
	items, err := s.itemRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (s *ItemService) Get(id uint64) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return item, nil
}

func (s *ItemService) Create(input CreateItemInput) (*models.Item, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrItemNameRequired
	}

	item := &models.Item{
		Name:        name,
		Unit:        strings.TrimSpace(input.Unit),
		Description: input.Description,
		Active:      true,
	}
	if input.Active != nil {
		item.Active = *input.Active
	}

	if err := s.itemRepo.Create(item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrItemNameTaken
		}
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

func (s *ItemService) Update(id uint64, input CreateItemInput) (*models.Item, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		item.Name = name
	}
	if unit := strings.TrimSpace(input.Unit); unit != "" {
		item.Unit = unit
	}
	if input.Description != "" {
		item.Description = input.Description
	}
	if input.Active != nil {
		item.Active = *input.Active
	}

	if err := s.itemRepo.Update(item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrItemNameTaken
		}
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}

func (s *ItemService) Delete(id uint64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.itemRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
