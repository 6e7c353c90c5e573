package service

import (
	"fmt"

	apperrors "shiftmaster/internal/errors"
)

// storeErr wraps an unexpected persistence failure so it maps to a bare 500.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", apperrors.ErrStoreUnavailable, op, err)
}

func missingField(name string) error {
	return fmt.Errorf("%w: %s", apperrors.ErrMissingField, name)
}
