// Package services holds the domain logic. Services return sentinel errors;
// controllers map them to HTTP statuses.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountDisabled is returned when a deactivated user tries to log in.
	ErrAccountDisabled = errors.New("account is deactivated")

	// ErrNotOwner is returned when a user touches a record they do not own.
	ErrNotOwner = errors.New("not authorized for this resource")

	// ErrEmptyOrder is returned when an order is created with no items.
	ErrEmptyOrder = errors.New("order must contain at least one item")

	// ErrInvalidTransition is returned for an order status change the state
	// machine does not allow.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrInvalidStatus is returned for an unrecognised status value.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPaymentMethod is returned for an unrecognised payment method.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrTableOccupied is returned when occupying a table that is not available.
	ErrTableOccupied = errors.New("table is not available")

	// ErrDuplicatePayment is returned when an order already has a payment.
	ErrDuplicatePayment = errors.New("order already has a payment")

	// ErrCategoryNotFound is returned when a menu item names a missing category.
	ErrCategoryNotFound = errors.New("category not found")
)

// ItemUnavailableError reports which menu item blocked an order: either it
// does not exist or it is currently unavailable.
type ItemUnavailableError struct {
	MenuItemID uint
	Reason     string // "not found" or "unavailable"
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("menu item %d is %s", e.MenuItemID, e.Reason)
}
