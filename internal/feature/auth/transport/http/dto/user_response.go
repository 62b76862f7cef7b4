package dto

import (
	"time"

	"devsnap_backend/internal/feature/auth/domain/entity"
)

// UserResponse is the account record returned to the authenticated user.
type UserResponse struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	EmailVerified *time.Time `json:"emailVerified,omitempty"`
	Name          string     `json:"name,omitempty"`
	Image         string     `json:"image,omitempty"`
	Plan          string     `json:"plan"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// UserResponseFromEntity converts a domain user to its response shape.
func UserResponseFromEntity(u *entity.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		Name:          u.Name,
		Image:         u.Image,
		Plan:          string(u.Plan),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
