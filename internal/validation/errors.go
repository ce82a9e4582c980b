package validation

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrMissingStore     = errors.New("franchiseId and storeId are required")
	ErrEmptyOrder       = errors.New("order has no items")
	ErrTooManyItems     = errors.New("order exceeds maximum items")
	ErrInvalidMenuID    = errors.New("menuId is required")
	ErrInvalidPrice     = errors.New("price must be a positive amount")
	ErrEmptyTitle       = errors.New("title is required")
)

// ItemValidationError lists every rejected item of an order.
type ItemValidationError struct {
	Errors []IndexedError
}

type IndexedError struct {
	Index int
	Err   error
}

func (e *ItemValidationError) Error() string {
	return fmt.Sprintf("%d order items failed validation", len(e.Errors))
}
