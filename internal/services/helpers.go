package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "quickbudg/internal/errors"
	"quickbudg/internal/logger"
)

const (
	minYear = 1
	maxYear = 9999
)

// storeError logs a storage engine failure and wraps it as a StoreError.
func storeError(op string, err error) error {
	logger.Get().Errorw("store operation failed", "op", op, "error", err)
	return apperrors.Wrap(apperrors.ErrStore, fmt.Errorf("%s: %w", op, err))
}

// validateAmount requires a present, non-negative amount.
func validateAmount(field string, amount *decimal.Decimal) error {
	if amount == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, field+" is required")
	}
	if amount.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, field+" must not be negative")
	}
	return nil
}

// validatePeriod requires a calendar month of a four-digit year.
func validatePeriod(year, month int) error {
	if year < minYear || year > maxYear {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("year must be between %d and %d", minYear, maxYear))
	}
	if month < 1 || month > 12 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	return nil
}
