package domain

import (
	"errors"
	"fmt"
)

// ErrOfferExpired means the supplier no longer prices the offer at the quoted
// terms. The caller should re-run the search.
var ErrOfferExpired = errors.New("offer is no longer bookable at the quoted terms")

// AuthenticationError means the supplier rejected our credentials or the
// token endpoint was unreachable.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("supplier authentication failed: %v", e.Err)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// ValidationError rejects caller input before any network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SupplierError carries the upstream status and message for any non-2xx or
// malformed supplier response that has no more specific meaning.
type SupplierError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *SupplierError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supplier returned %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("supplier returned %d: %s", e.StatusCode, e.Message)
}

// OrderCreationError means order creation got a 2xx response without a PNR
// reference. The outcome is ambiguous: the supplier may or may not hold a
// booking, so callers must check for duplicates before retrying.
type OrderCreationError struct {
	SupplierOrderID string
	Message         string
}

func (e *OrderCreationError) Error() string {
	return fmt.Sprintf("order creation ambiguous, check for duplicate bookings before retrying: %s", e.Message)
}

// PersistenceError wraps a failed local write after a committed supplier
// order. It never fails the booking; it is logged and published for
// reconciliation.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("booking record write failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
