package services

import "errors"

// Sentinel errors returned by the service layer.
// Use errors.Is to check.
var (
	// ErrNotDue is returned when a review arrives for a card whose next
	// review time is still in the future. This is how the loser of a
	// concurrent-review race is told: the winner already advanced the
	// schedule past the instant both of them saw as due.
	ErrNotDue = errors.New("card is not due for review")

	// ErrEmailTaken is returned on signup with an already registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login or password re-check
	// fails. Wrong email and wrong password are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmptyUpdate is returned for a partial update with no fields set.
	ErrEmptyUpdate = errors.New("provide at least one field to update")

	// ErrInvalidEmail is returned on signup with a malformed email.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidPassword is returned on signup when the password is shorter
	// than 8 or longer than 72 bytes.
	ErrInvalidPassword = errors.New("password must be between 8 and 72 characters")
)
