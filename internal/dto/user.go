package dto

import (
	"time"

	"github.com/reliefmap/relief-coordination-api/internal/models"
)

// UserDTO represents a user in API responses. Password hashes never leave the
// service.
type UserDTO struct {
	ID            uint64            `json:"id"`
	Username      string            `json:"username"`
	ContactNumber string            `json:"contactNumber,omitempty"`
	Role          models.UserRole   `json:"role"`
	Status        models.UserStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// AuthResponseDTO is returned by the register-or-login endpoint.
type AuthResponseDTO struct {
	User         UserDTO `json:"user"`
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	dto := UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
	if user.ContactNumber != nil {
		dto.ContactNumber = *user.ContactNumber
	}
	return dto
}
