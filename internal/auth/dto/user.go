package dto

import (
	"time"

	"github.com/dcsil/k.ai/internal/auth/domain"
)

// UserOutput is the safe projection of a user record: no password hash, no
// lockout bookkeeping.
type UserOutput struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	DisplayName     string     `json:"displayName,omitempty"`
	Timezone        string     `json:"timezone,omitempty"`
	Role            string     `json:"role"`
	EmailVerifiedAt *time.Time `json:"emailVerifiedAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func NewUserOutput(user *domain.User) *UserOutput {
	return &UserOutput{
		ID:              user.ID,
		Email:           user.Email,
		DisplayName:     user.DisplayName,
		Timezone:        user.Timezone,
		Role:            user.Role,
		EmailVerifiedAt: user.EmailVerifiedAt,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}
