package dto

import (
	"time"

	"github.com/reliefmap/relief-coordination-api/internal/models"
)

// ItemDTO represents a ration item catalog entry in API responses.
type ItemDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit,omitempty"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CampDTO represents a relief camp in API responses.
type CampDTO struct {
	ID         uint64            `json:"id"`
	Name       string            `json:"name"`
	Lat        float64           `json:"lat"`
	Lng        float64           `json:"lng"`
	ApproxArea string            `json:"approxArea,omitempty"`
	Capacity   int               `json:"capacity"`
	Contact    string            `json:"contact,omitempty"`
	Status     models.CampStatus `json:"status"`
	CreatedAt  time.Time         `json:"createdAt"`
}

func ToItemDTO(item models.Item) ItemDTO {
	return ItemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Unit:        item.Unit,
		Description: item.Description,
		Active:      item.Active,
		CreatedAt:   item.CreatedAt,
	}
}

func ToItemDTOs(items []models.Item) []ItemDTO {
	dtos := make([]ItemDTO, len(items))
	for i, item := range items {
		dtos[i] = ToItemDTO(item)
	}
	return dtos
}

func ToCampDTO(camp models.Camp) CampDTO {
	return CampDTO{
		ID:         camp.ID,
		Name:       camp.Name,
		Lat:        camp.Lat,
		Lng:        camp.Lng,
		ApproxArea: camp.ApproxArea,
		Capacity:   camp.Capacity,
		Contact:    camp.Contact,
		Status:     camp.Status,
		CreatedAt:  camp.CreatedAt,
	}
}

func ToCampDTOs(camps []models.Camp) []CampDTO {
	dtos := make([]CampDTO, len(camps))
	for i, c := range camps {
		dtos[i] = ToCampDTO(c)
	}
	return dtos
}
