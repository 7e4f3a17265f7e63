package models

import (
	"time"

	"gorm.io/datatypes"
)

type Urgency string

const (
	UrgencyLow    Urgency = "LOW"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyHigh   Urgency = "HIGH"
)

type HelpRequestStatus string

const (
	HelpRequestStatusOpen    HelpRequestStatus = "OPEN"
	HelpRequestStatusClosed  HelpRequestStatus = "CLOSED"
	HelpRequestStatusExpired HelpRequestStatus = "EXPIRED"
)

type HelpRequest struct {
	ID uint64 `gorm:"primarykey" json:"id"`
	// Nullable: anonymous requests carry no owner.
	UserID      *uint64 `gorm:"index" json:"user_id"`
	Lat         float64 `gorm:"not null" json:"lat"`
	Lng         float64 `gorm:"not null" json:"lng"`
	Urgency     Urgency `gorm:"type:varchar(10);not null" json:"urgency"`
	ShortNote   string  `gorm:"type:text" json:"short_note"`
	ApproxArea  *string `gorm:"type:varchar(255)" json:"approx_area"`
	ContactType string  `gorm:"type:varchar(30)" json:"contact_type"`
	Contact     string  `gorm:"type:varchar(100)" json:"contact"`
	Name        string  `gorm:"type:varchar(100)" json:"name"`
	TotalPeople int     `gorm:"not null;default:0" json:"total_people"`
	Elders      int     `gorm:"not null;default:0" json:"elders"`
	Children    int     `gorm:"not null;default:0" json:"children"`
	Pets        int     `gorm:"not null;default:0" json:"pets"`
	// Identifiers of requested ration items, stored as a JSON array.
	RationItems datatypes.JSONSlice[string] `json:"ration_items"`
	Status      HelpRequestStatus           `gorm:"type:varchar(10);not null;default:'OPEN'" json:"status"`
	CreatedAt   time.Time                   `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`

	// Relations
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Donations []Donation `gorm:"foreignKey:HelpRequestID" json:"donations,omitempty"`
}
