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
	ErrCampNotFound     = errors.New("camp not found")
	ErrCampNameRequired = errors.New("camp name is required")
)

// CampService manages relief camps.
type CampService struct {
	campRepo repository.CampRepository
}

func NewCampService(campRepo repository.CampRepository) *CampService {
	return &CampService{campRepo: campRepo}
}

// CreateCampInput represents input for registering a relief camp.
type CreateCampInput struct {
	Name       string
	Lat        float64
	Lng        float64
	ApproxArea string
	Capacity   int
	Contact    string
}

func (s *CampService) List() ([]models.Camp, error) {
	camps, err := s.campRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list camps: %w", err)
	}
	return camps, nil
}

func (s *CampService) Get(id uint64) (*models.Camp, error) {
	camp, err := s.campRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampNotFound
		}
		return nil, fmt.Errorf("failed to find camp: %w", err)
	}
	return camp, nil
}

func (s *CampService) Create(input CreateCampInput) (*models.Camp, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCampNameRequired
	}

	camp := &models.Camp{
		Name:       name,
		Lat:        input.Lat,
		Lng:        input.Lng,
		ApproxArea: strings.TrimSpace(input.ApproxArea),
		Capacity:   input.Capacity,
		Contact:    input.Contact,
		Status:     models.CampStatusOpen,
	}

	if err := s.campRepo.Create(camp); err != nil {
		return nil, fmt.Errorf("failed to create camp: %w", err)
	}

	return camp, nil
}
