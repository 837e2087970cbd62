package sm2

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reviewedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestUpdate_InvalidQuality(t *testing.T) {
	for _, quality := range []int{-1, 6, 100} {
		_, err := Update(NewState(), quality, reviewedAt)
		assert.ErrorIs(t, err, ErrInvalidQuality)
	}
}

func TestUpdate_EaseNeverBelowFloor(t *testing.T) {
	// Repeated failures drive the ease factor down; it must clamp at 1.3.
	st := NewState()
	for i := 0; i < 10; i++ {
		res, err := Update(st, 0, reviewedAt)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.EaseFactor, MinEase)
		st = res.State
	}
	assert.Equal(t, MinEase, st.EaseFactor)
}

func TestUpdate_EaseUpdatedOnFailure(t *testing.T) {
	// Ease moves by the same formula on failing reviews as on passing ones.
	res, err := Update(State{RepetitionCount: 4, IntervalDays: 20, EaseFactor: 2.5}, 1, reviewedAt)
	require.NoError(t, err)

	assert.InDelta(t, 1.96, res.EaseFactor, 1e-9)
	assert.Equal(t, 0, res.RepetitionCount)
	assert.Equal(t, 0, res.IntervalDays)
	assert.Equal(t, reviewedAt.Add(RelearnInterval), res.NextReviewAt)
}

func TestUpdate_FailureAlwaysResets(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		quality int
	}{
		{"fresh card quality 0", NewState(), 0},
		{"mature card quality 1", State{RepetitionCount: 7, IntervalDays: 45, EaseFactor: 2.1}, 1},
		{"young card quality 2", State{RepetitionCount: 1, IntervalDays: 0, EaseFactor: 2.5}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Update(tt.state, tt.quality, reviewedAt)
			require.NoError(t, err)

			assert.Equal(t, 0, res.RepetitionCount)
			assert.Equal(t, 0, res.IntervalDays)
			assert.Equal(t, reviewedAt.Add(RelearnInterval), res.NextReviewAt)
		})
	}
}

func TestUpdate_FirstPass(t *testing.T) {
	// Any passing quality on repetition 0 keeps the short interval.
	for _, quality := range []int{3, 4, 5} {
		res, err := Update(NewState(), quality, reviewedAt)
		require.NoError(t, err)

		assert.Equal(t, 1, res.RepetitionCount)
		assert.Equal(t, 0, res.IntervalDays)
		assert.Equal(t, reviewedAt.Add(RelearnInterval), res.NextReviewAt)
	}
}

func TestUpdate_IntervalLadder(t *testing.T) {
	tests := []struct {
		name             string
		state            State
		quality          int
		wantRepetition   int
		wantIntervalDays int
	}{
		{
			name:             "second pass is one day regardless of ease",
			state:            State{RepetitionCount: 1, IntervalDays: 0, EaseFactor: 1.3},
			quality:          5,
			wantRepetition:   2,
			wantIntervalDays: 1,
		},
		{
			name:             "third pass is six days regardless of ease",
			state:            State{RepetitionCount: 2, IntervalDays: 1, EaseFactor: 2.6},
			quality:          3,
			wantRepetition:   3,
			wantIntervalDays: 6,
		},
		{
			name:             "mature pass multiplies by updated ease",
			state:            State{RepetitionCount: 3, IntervalDays: 6, EaseFactor: 2.5},
			quality:          4, // quality 4 leaves ease unchanged
			wantRepetition:   4,
			wantIntervalDays: 15,
		},
		{
			name:             "half rounds to even",
			state:            State{RepetitionCount: 3, IntervalDays: 5, EaseFactor: 2.5},
			quality:          4, // 5 * 2.5 = 12.5 -> 12
			wantRepetition:   4,
			wantIntervalDays: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Update(tt.state, tt.quality, reviewedAt)
			require.NoError(t, err)

			assert.Equal(t, tt.wantRepetition, res.RepetitionCount)
			assert.Equal(t, tt.wantIntervalDays, res.IntervalDays)
			assert.Equal(t, reviewedAt.Add(time.Duration(tt.wantIntervalDays)*24*time.Hour), res.NextReviewAt)
		})
	}
}

func TestUpdate_MatureIntervalUsesUpdatedEase(t *testing.T) {
	// Quality 5 bumps ease by 0.1 before the multiplication.
	res, err := Update(State{RepetitionCount: 3, IntervalDays: 10, EaseFactor: 2.0}, 5, reviewedAt)
	require.NoError(t, err)

	assert.InDelta(t, 2.1, res.EaseFactor, 1e-9)
	assert.Equal(t, 21, res.IntervalDays) // 10 * 2.1
}

func TestUpdate_LearnThenReviewScenario(t *testing.T) {
	// Fresh schedule, first review with quality 4.
	st := NewState()
	assert.Equal(t, 0, st.RepetitionCount)
	assert.Equal(t, 0, st.IntervalDays)
	assert.Equal(t, InitialEase, st.EaseFactor)

	first, err := Update(st, 4, reviewedAt)
	require.NoError(t, err)
	assert.Equal(t, 1, first.RepetitionCount)
	assert.Equal(t, 0, first.IntervalDays)
	assert.Equal(t, reviewedAt.Add(RelearnInterval), first.NextReviewAt)

	// Second pass with quality 5 moves to the one-day interval.
	secondAt := first.NextReviewAt
	second, err := Update(first.State, 5, secondAt)
	require.NoError(t, err)
	assert.Equal(t, 2, second.RepetitionCount)
	assert.Equal(t, 1, second.IntervalDays)
	assert.Equal(t, secondAt.Add(24*time.Hour), second.NextReviewAt)

	// Third pass moves to six days.
	thirdAt := second.NextReviewAt
	third, err := Update(second.State, 5, thirdAt)
	require.NoError(t, err)
	assert.Equal(t, 3, third.RepetitionCount)
	assert.Equal(t, 6, third.IntervalDays)
	assert.Equal(t, thirdAt.Add(6*24*time.Hour), third.NextReviewAt)
}

func TestUpdate_NextReviewAlwaysInFuture(t *testing.T) {
	states := []State{
		NewState(),
		{RepetitionCount: 1, IntervalDays: 0, EaseFactor: 2.5},
		{RepetitionCount: 5, IntervalDays: 30, EaseFactor: 1.3},
	}

	for _, st := range states {
		for quality := 0; quality <= 5; quality++ {
			res, err := Update(st, quality, reviewedAt)
			require.NoError(t, err)
			assert.True(t, res.NextReviewAt.After(reviewedAt),
				"quality %d on %+v produced a due time not after the review instant", quality, st)
		}
	}
}
