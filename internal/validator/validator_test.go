package validator

import (
	"testing"

	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/stretchr/testify/assert"
)

type registerRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Country string `json:"country" validate:"required,country"`
}

func TestValidateRequest(t *testing.T) {
	NewValidator()

	assert.NoError(t, ValidateRequest(registerRequest{Email: "ada@example.com", Country: "de"}))
	assert.NoError(t, ValidateRequest(registerRequest{Email: "ada@example.com", Country: "Germany"}))

	err := ValidateRequest(registerRequest{Email: "ada@example.com", Country: "Atlantis"})
	assert.True(t, ierr.IsValidation(err))

	err = ValidateRequest(registerRequest{Email: "not-an-email", Country: "DE"})
	assert.True(t, ierr.IsValidation(err))
}
