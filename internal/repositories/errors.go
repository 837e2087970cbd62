package repositories

import "errors"

// Sentinel errors returned by the repository layer.
// Use errors.Is to check.
var (
	// ErrNotFound covers both a missing row and a row owned by another
	// user. The two are deliberately indistinguishable so error responses
	// never disclose the existence of other users' data.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyLearned is returned when a schedule already exists for the
	// card a caller is trying to start learning.
	ErrAlreadyLearned = errors.New("card is already learned")
)
