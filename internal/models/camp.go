package models

import "time"

type CampStatus string

const (
	CampStatusOpen   CampStatus = "OPEN"
	CampStatusClosed CampStatus = "CLOSED"
)

// Camp is a relief camp that donors and requesters can be pointed at.
type Camp struct {
	ID         uint64     `gorm:"primarykey" json:"id"`
	Name       string     `gorm:"type:varchar(100);not null" json:"name"`
	Lat        float64    `gorm:"not null" json:"lat"`
	Lng        float64    `gorm:"not null" json:"lng"`
	ApproxArea string     `gorm:"type:varchar(255)" json:"approx_area"`
	Capacity   int        `gorm:"not null;default:0" json:"capacity"`
	Contact    string     `gorm:"type:varchar(100)" json:"contact"`
	Status     CampStatus `gorm:"type:varchar(10);not null;default:'OPEN'" json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
