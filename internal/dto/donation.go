package dto

import (
	"time"

	"github.com/reliefmap/relief-coordination-api/internal/models"
)

// DonationDTO represents a donation in API responses. The donator's contact
// number is only populated when the requester owns the help request.
type DonationDTO struct {
	ID                     uint64           `json:"id"`
	HelpRequestID          uint64           `json:"helpRequestId"`
	DonatorID              uint64           `json:"donatorId"`
	DonatorUsername        string           `json:"donatorUsername,omitempty"`
	DonatorContactNumber   string           `json:"donatorContactNumber,omitempty"`
	RationItems            map[string]int64 `json:"rationItems"`
	DonatorMarkedScheduled bool             `json:"donatorMarkedScheduled"`
	DonatorMarkedCompleted bool             `json:"donatorMarkedCompleted"`
	OwnerMarkedCompleted   bool             `json:"ownerMarkedCompleted"`
	CreatedAt              time.Time        `json:"createdAt"`
	UpdatedAt              time.Time        `json:"updatedAt"`
}

// ToDonationDTO converts a Donation model to DonationDTO. includeContactNumber
// controls disclosure of the donator's contact number.
func ToDonationDTO(donation models.Donation, includeContactNumber bool) DonationDTO {
	dto := DonationDTO{
		ID:                     donation.ID,
		HelpRequestID:          donation.HelpRequestID,
		DonatorID:              donation.DonatorID,
		RationItems:            donation.RationItems.Data(),
		DonatorMarkedScheduled: donation.DonatorMarkedScheduled,
		DonatorMarkedCompleted: donation.DonatorMarkedCompleted,
		OwnerMarkedCompleted:   donation.OwnerMarkedCompleted,
		CreatedAt:              donation.CreatedAt,
		UpdatedAt:              donation.UpdatedAt,
	}
	if dto.RationItems == nil {
		dto.RationItems = map[string]int64{}
	}

	// Donator is preloaded on every read path.
	if donation.Donator.ID != 0 {
		dto.DonatorUsername = donation.Donator.Username
		if includeContactNumber && donation.Donator.ContactNumber != nil {
			dto.DonatorContactNumber = *donation.Donator.ContactNumber
		}
	}

	return dto
}

// ToDonationDTOs converts a slice of donations
func ToDonationDTOs(donations []models.Donation, includeContactNumber bool) []DonationDTO {
	dtos := make([]DonationDTO, len(donations))
	for i, d := range donations {
		dtos[i] = ToDonationDTO(d, includeContactNumber)
	}
	return dtos
}
