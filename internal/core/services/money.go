package services

import (
	"fmt"

	"github.com/acctoffice/backoffice_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// parseAmount parses a monetary value that crossed the API as a string.
// An empty string parses to zero so optional fields need no special casing.
func parseAmount(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s must be a decimal string", apperrors.ErrValidation, field)
	}
	return d, nil
}
