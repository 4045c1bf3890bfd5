package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate
// these into HTTP statuses; anything else bubbles up as a 500.
var (
	// ErrDuplicateEmail is returned when registration reuses an email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned on a failed login. The same
	// value covers unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrValidation covers malformed input the service rejects, such
	// as an empty subject or an inverted time window.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a referenced slot or booking does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrSlotUnavailable is returned when booking a slot whose
	// availability flag is already false.
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrSelfBooking is returned when a volunteer tries to book their
	// own slot.
	ErrSelfBooking = errors.New("cannot book your own volunteer slot")

	// ErrUnauthorized is returned when the caller does not own the
	// resource, or lacks the volunteer role for an operation.
	ErrUnauthorized = errors.New("unauthorized")
)
