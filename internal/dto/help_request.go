package dto

import (
	"time"

	"github.com/reliefmap/relief-coordination-api/internal/models"
)

// HelpRequestDTO represents a help request in API responses.
type HelpRequestDTO struct {
	ID          uint64                   `json:"id"`
	UserID      *uint64                  `json:"userId,omitempty"`
	Lat         float64                  `json:"lat"`
	Lng         float64                  `json:"lng"`
	Urgency     models.Urgency           `json:"urgency"`
	ShortNote   string                   `json:"shortNote,omitempty"`
	ApproxArea  string                   `json:"approxArea,omitempty"`
	ContactType string                   `json:"contactType,omitempty"`
	Contact     string                   `json:"contact,omitempty"`
	Name        string                   `json:"name,omitempty"`
	TotalPeople int                      `json:"totalPeople"`
	Elders      int                      `json:"elders"`
	Children    int                      `json:"children"`
	Pets        int                      `json:"pets"`
	RationItems []string                 `json:"rationItems"`
	Status      models.HelpRequestStatus `json:"status"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

// ToHelpRequestDTO converts a HelpRequest model to HelpRequestDTO
func ToHelpRequestDTO(helpRequest models.HelpRequest) HelpRequestDTO {
	dto := HelpRequestDTO{
		ID:          helpRequest.ID,
		UserID:      helpRequest.UserID,
		Lat:         helpRequest.Lat,
		Lng:         helpRequest.Lng,
		Urgency:     helpRequest.Urgency,
		ShortNote:   helpRequest.ShortNote,
		ContactType: helpRequest.ContactType,
		Contact:     helpRequest.Contact,
		Name:        helpRequest.Name,
		TotalPeople: helpRequest.TotalPeople,
		Elders:      helpRequest.Elders,
		Children:    helpRequest.Children,
		Pets:        helpRequest.Pets,
		RationItems: helpRequest.RationItems,
		Status:      helpRequest.Status,
		CreatedAt:   helpRequest.CreatedAt,
		UpdatedAt:   helpRequest.UpdatedAt,
	}
	if dto.RationItems == nil {
		dto.RationItems = []string{}
	}
	if helpRequest.ApproxArea != nil {
		dto.ApproxArea = *helpRequest.ApproxArea
	}
	return dto
}

// ToHelpRequestDTOs converts a slice of models to DTOs
func ToHelpRequestDTOs(helpRequests []models.HelpRequest) []HelpRequestDTO {
	dtos := make([]HelpRequestDTO, len(helpRequests))
	for i, hr := range helpRequests {
		dtos[i] = ToHelpRequestDTO(hr)
	}
	return dtos
}
