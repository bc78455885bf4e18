package services

import (
	"errors"
	"fmt"
)

// Business-rule errors surface to the client as 400 with the message as-is.
// Anything else coming out of a service is treated as internal.
var (
	// "invalid address" covers not-found and not-owned alike, so a caller
	// cannot probe other users' address ids.
	ErrInvalidAddress     = errors.New("invalid address")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrNoCourierAvailable = errors.New("no courier available")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrAlreadyRated       = errors.New("order already rated")
	ErrOrderNotDelivered  = errors.New("order is not delivered yet")
	ErrPaymentNotPending  = errors.New("payment is not pending")
	ErrEmptyOrder         = errors.New("items is required")
)

// MenuItemError rejects a whole order because of one offending line item.
type MenuItemError struct {
	MenuItemID uint
	Reason     string
}

func (e *MenuItemError) Error() string {
	return fmt.Sprintf("menu item %d: %s", e.MenuItemID, e.Reason)
}

// IsBusinessError tells controllers whether err maps to a 400.
func IsBusinessError(err error) bool {
	var mie *MenuItemError
	if errors.As(err, &mie) {
		return true
	}
	for _, sentinel := range []error{
		ErrInvalidAddress, ErrRestaurantNotFound, ErrNoCourierAvailable,
		ErrInvalidTransition, ErrAlreadyRated, ErrOrderNotDelivered,
		ErrPaymentNotPending, ErrEmptyOrder,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
