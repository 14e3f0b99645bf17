package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSessionID   = errors.New("invalid session id")
	ErrInvalidProviderID  = errors.New("invalid provider id")
	ErrNoProviderSelected = errors.New("no provider selected")
	ErrSubmissionInFlight = errors.New("a booking submission is already in flight for this session")
	ErrUnauthenticated    = errors.New("booking requires a signed-in client")
	ErrInvalidBookingID   = errors.New("invalid booking id")
	ErrBookingNotFound    = errors.New("booking not found")
)

// ValidationError blocks a submission until the listed fields are filled in.
type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return "missing required booking fields: " + strings.Join(e.MissingFields, ", ")
}

// PersistenceWarning reports a failed remote profile write. Local state is kept.
type PersistenceWarning struct {
	Cause error
}

func (e *PersistenceWarning) Error() string {
	return fmt.Sprintf("preferences could not be saved to your profile: %v", e.Cause)
}

func (e *PersistenceWarning) Unwrap() error { return e.Cause }

// RecoverableLoadFailure is a remote profile read that failed in transport.
// It is not the same as a profile that does not exist yet.
type RecoverableLoadFailure struct {
	Cause error
}

func (e *RecoverableLoadFailure) Error() string {
	return fmt.Sprintf("profile temporarily unavailable: %v", e.Cause)
}

func (e *RecoverableLoadFailure) Unwrap() error { return e.Cause }

// BookingCreationError wraps a failure of the booking service.
type BookingCreationError struct {
	Cause error
}

func (e *BookingCreationError) Error() string {
	return fmt.Sprintf("booking could not be created: %v", e.Cause)
}

func (e *BookingCreationError) Unwrap() error { return e.Cause }
