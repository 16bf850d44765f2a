package payment

import (
	ierr "github.com/flexprice/storefront/internal/errors"
)

// Validate checks a request before it is sent to any provider
func (r *IntentRequest) Validate() error {
	if r == nil {
		return ierr.NewError("payment intent request is nil").
			WithHint("Payment request is required").
			Mark(ierr.ErrValidation)
	}

	if r.Amount <= 0 {
		return ierr.NewError("payment intent amount must be positive").
			WithHint("Order total must be greater than zero").
			WithReportableDetails(map[string]any{
				"amount": r.Amount,
			}).
			Mark(ierr.ErrInvalidAmount)
	}

	if !r.Currency.IsSupported() {
		return ierr.NewError("unsupported payment currency").
			WithHint("Currency is not supported").
			WithReportableDetails(map[string]any{
				"currency": r.Currency,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
