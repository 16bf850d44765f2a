package dto

import (
	"strings"
	"time"

	"github.com/flexprice/storefront/internal/domain/user"
	"github.com/flexprice/storefront/internal/types"
	"github.com/flexprice/storefront/internal/validator"
)

// RegisterUserRequest registers a storefront customer. Country is fixed from here on.
type RegisterUserRequest struct {
	Email   string `json:"email" binding:"required" validate:"required,email"`
	Name    string `json:"name" validate:"omitempty,max=255"`
	Country string `json:"country" binding:"required" validate:"required,country"`
}

// Validate trims the input before checking it, so padded values are judged by their content
func (r *RegisterUserRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	r.Country = strings.TrimSpace(r.Country)
	return validator.ValidateRequest(r)
}

// ToUser builds the domain user with normalized email and country
func (r *RegisterUserRequest) ToUser() *user.User {
	return user.NewUser(
		strings.ToLower(strings.TrimSpace(r.Email)),
		strings.TrimSpace(r.Name),
		types.NormalizeCountry(r.Country),
	)
}

type UserResponse struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	Name      string         `json:"name,omitempty"`
	Country   string         `json:"country"`
	Currency  types.Currency `json:"currency"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewUserResponse(u *user.User, currency types.Currency) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Country:   u.Country,
		Currency:  currency,
		CreatedAt: u.CreatedAt,
	}
}
