package user

import (
	"time"

	"github.com/flexprice/storefront/internal/types"
)

// User is a registered storefront customer. Country is fixed at registration
// and drives currency and tax for every checkout the user makes.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser builds a user with an already normalized country code
func NewUser(email, name, country string) *User {
	return &User{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER),
		Email:     email,
		Name:      name,
		Country:   country,
		CreatedAt: time.Now().UTC(),
	}
}
