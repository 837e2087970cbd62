// Package sm2 implements the SM-2 derived scheduling update used for card
// reviews. The function is pure: callers own all synchronization and clocks.
package sm2

import (
	"errors"
	"math"
	"time"
)

const (
	// MinEase is the lower bound for the ease factor.
	MinEase = 1.3
	// InitialEase is the ease factor assigned when a card enters learning.
	InitialEase = 2.5
	// RelearnInterval is how soon a card comes back after a failed review
	// or its first successful one.
	RelearnInterval = 10 * time.Minute
)

// ErrInvalidQuality is returned when the quality score is outside [0,5].
// Use errors.Is to check.
var ErrInvalidQuality = errors.New("sm2: quality must be between 0 and 5")

// State is the scheduling state of a card before or after an update.
type State struct {
	RepetitionCount int
	IntervalDays    int
	EaseFactor      float64
}

// Result is the outcome of applying one review to a State.
type Result struct {
	State
	NextReviewAt time.Time
}

// NewState returns the state a schedule starts with when a card is learned.
func NewState() State {
	return State{RepetitionCount: 0, IntervalDays: 0, EaseFactor: InitialEase}
}

// Update applies one review with the given quality score at reviewedAt and
// returns the next state and due time.
//
// The ease factor is updated on every review, failures included; ease tracks
// long-run difficulty, not the latest outcome. Quality below 3 is a failure
// and resets the repetition streak. The interval ladder for successive passes
// is 1 day, 6 days, then round(interval * ease). Rounding is half-to-even.
func Update(st State, quality int, reviewedAt time.Time) (Result, error) {
	// The boundary layer validates range already; checked again so the
	// function stays total when called directly.
	if quality < 0 || quality > 5 {
		return Result{}, ErrInvalidQuality
	}

	ease := st.EaseFactor + (0.1 - float64(5-quality)*(0.08+float64(5-quality)*0.02))
	if ease < MinEase {
		ease = MinEase
	}

	res := Result{State: State{EaseFactor: ease}}

	switch {
	case quality < 3:
		// Failed review, relearn soon.
		res.RepetitionCount = 0
		res.IntervalDays = 0
		res.NextReviewAt = reviewedAt.Add(RelearnInterval)

	case st.RepetitionCount == 0:
		// First pass after creation or a failure reset.
		res.RepetitionCount = 1
		res.IntervalDays = 0
		res.NextReviewAt = reviewedAt.Add(RelearnInterval)

	default:
		switch st.RepetitionCount {
		case 1:
			res.IntervalDays = 1
		case 2:
			res.IntervalDays = 6
		default:
			res.IntervalDays = int(math.RoundToEven(float64(st.IntervalDays) * ease))
		}
		res.RepetitionCount = st.RepetitionCount + 1
		res.NextReviewAt = reviewedAt.Add(time.Duration(res.IntervalDays) * 24 * time.Hour)
	}

	return res, nil
}
