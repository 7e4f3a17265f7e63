package models

import (
	"time"

	"gorm.io/gorm"
)

// Item is a catalog entry for a ration item type. Help requests and donations
// reference items by their string identifier.
type Item struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Unit        string         `gorm:"type:varchar(30)" json:"unit"`
	Description string         `gorm:"type:text" json:"description"`
	Active      bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
