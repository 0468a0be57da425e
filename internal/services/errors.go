package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned for absent entities and for orders outside the
	// caller's visibility.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the caller's role does not allow the operation.
	ErrForbidden = errors.New("you do not have permission to perform this action")

	// ErrUnauthorized is returned for missing or invalid credentials.
	ErrUnauthorized = errors.New("authentication credentials were not provided or are invalid")

	// ErrUnavailable is returned when a non-featured menu item is added to a cart.
	ErrUnavailable = errors.New("this item is not available in the store at the moment")

	// ErrEmptyCart is returned when an order is placed with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidAssignment is returned when an order is assigned to a user
	// outside the Delivery Crew group.
	ErrInvalidAssignment = errors.New("this user is not delivery crew")

	// ErrMethodNotAllowed is returned when a non-Manager deletes an order.
	ErrMethodNotAllowed = errors.New("order can't be deleted. Order has already been shipped")
)

// ValidationError represents malformed or out-of-range input.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// duplicate maps a unique-key violation on field onto a ValidationError.
func duplicate(err error, field string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return invalid(field, "already exists")
	}
	return err
}

// notFound maps gorm's missing-record error onto ErrNotFound and leaves
// everything else untouched.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %w", what, ErrNotFound)
	}
	return err
}
