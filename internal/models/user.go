package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusDisabled UserStatus = "DISABLED"
)

type User struct {
	ID           uint64     `gorm:"primarykey" json:"id"`
	Username     string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash *string    `gorm:"type:varchar(255)" json:"-"`
	// Only disclosed to help request owners through donation listings.
	ContactNumber *string    `gorm:"type:varchar(20)" json:"-"`
	Role          UserRole   `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	Status        UserStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relations
	HelpRequests  []HelpRequest  `gorm:"foreignKey:UserID" json:"-"`
	Donations     []Donation     `gorm:"foreignKey:DonatorID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}
