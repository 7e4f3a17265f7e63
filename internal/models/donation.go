package models

import (
	"time"

	"gorm.io/datatypes"
)

// Donation is a pledge against a help request. Its fulfillment state is three
// independent monotonic flags rather than a single status column: each flag is
// only ever written to true, and no ordering between them is enforced.
type Donation struct {
	ID            uint64 `gorm:"primarykey" json:"id"`
	HelpRequestID uint64 `gorm:"not null;index" json:"help_request_id"`
	DonatorID     uint64 `gorm:"not null;index" json:"donator_id"`
	// Ration item identifier -> pledged quantity.
	RationItems            datatypes.JSONType[map[string]int64] `json:"ration_items"`
	DonatorMarkedScheduled bool                                 `gorm:"not null;default:false" json:"donator_marked_scheduled"`
	DonatorMarkedCompleted bool                                 `gorm:"not null;default:false" json:"donator_marked_completed"`
	OwnerMarkedCompleted   bool                                 `gorm:"not null;default:false" json:"owner_marked_completed"`
	CreatedAt              time.Time                            `json:"created_at"`
	UpdatedAt              time.Time                            `json:"updated_at"`

	// Relations
	HelpRequest HelpRequest `gorm:"foreignKey:HelpRequestID" json:"help_request,omitempty"`
	Donator     User        `gorm:"foreignKey:DonatorID" json:"donator,omitempty"`
}
