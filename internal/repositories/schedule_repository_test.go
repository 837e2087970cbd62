package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/flashdeck/backend/internal/models"
	"github.com/flashdeck/backend/internal/sm2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupScheduleTestRepository creates a schedule repository with a mock database
func setupScheduleTestRepository(t *testing.T) (*scheduleRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	logger, err := zap.NewDevelopment()
	require.NoError(t, err)

	repo := NewScheduleRepository(db, logger)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewScheduleRepository(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	db := &sql.DB{}

	repo := NewScheduleRepository(db, logger)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
	assert.Equal(t, logger, repo.logger)
}

func TestScheduleRepository_BeginLearning(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		cardID        int
		userID        int
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name:   "success",
			cardID: 1,
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				rows := sqlmock.NewRows([]string{"id", "deck_id", "is_learned"}).
					AddRow(1, 2, false)
				mock.ExpectQuery(`SELECT c\.id, c\.deck_id, c\.is_learned FROM cards c JOIN decks d ON c\.deck_id = d\.id WHERE c\.id = \? AND d\.user_id = \? FOR UPDATE`).
					WithArgs(1, 1).
					WillReturnRows(rows)
				mock.ExpectExec(`INSERT INTO card_schedules`).
					WithArgs(1, 2, sm2.InitialEase).
					WillReturnResult(sqlmock.NewResult(5, 1))
				mock.ExpectExec(`UPDATE cards SET is_learned = TRUE WHERE id = \?`).
					WithArgs(1).
					WillReturnResult(sqlmock.NewResult(0, 1))
				readBack := sqlmock.NewRows([]string{"next_review_at"}).AddRow(now)
				mock.ExpectQuery(`SELECT next_review_at FROM card_schedules WHERE id = \?`).
					WithArgs(int64(5)).
					WillReturnRows(readBack)
				mock.ExpectCommit()
			},
			expectedError: nil,
		},
		{
			name:   "card not found",
			cardID: 999,
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT c\.id, c\.deck_id, c\.is_learned FROM cards c`).
					WithArgs(999, 1).
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedError: ErrNotFound,
		},
		{
			name:   "card owned by another user",
			cardID: 1,
			userID: 2,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT c\.id, c\.deck_id, c\.is_learned FROM cards c`).
					WithArgs(1, 2).
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedError: ErrNotFound,
		},
		{
			name:   "card already learned",
			cardID: 1,
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				rows := sqlmock.NewRows([]string{"id", "deck_id", "is_learned"}).
					AddRow(1, 2, true)
				mock.ExpectQuery(`SELECT c\.id, c\.deck_id, c\.is_learned FROM cards c`).
					WithArgs(1, 1).
					WillReturnRows(rows)
				mock.ExpectRollback()
			},
			expectedError: ErrAlreadyLearned,
		},
		{
			name:   "transaction begin error",
			cardID: 1,
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("begin error"))
			},
			expectedError: errors.New("begin error"),
		},
		{
			name:   "insert error rolls back",
			cardID: 1,
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				rows := sqlmock.NewRows([]string{"id", "deck_id", "is_learned"}).
					AddRow(1, 2, false)
				mock.ExpectQuery(`SELECT c\.id, c\.deck_id, c\.is_learned FROM cards c`).
					WithArgs(1, 1).
					WillReturnRows(rows)
				mock.ExpectExec(`INSERT INTO card_schedules`).
					WithArgs(1, 2, sm2.InitialEase).
					WillReturnError(errors.New("insert error"))
				mock.ExpectRollback()
			},
			expectedError: errors.New("insert error"),
		},
		{
			name:   "commit error",
			cardID: 1,
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				rows := sqlmock.NewRows([]string{"id", "deck_id", "is_learned"}).
					AddRow(1, 2, false)
				mock.ExpectQuery(`SELECT c\.id, c\.deck_id, c\.is_learned FROM cards c`).
					WithArgs(1, 1).
					WillReturnRows(rows)
				mock.ExpectExec(`INSERT INTO card_schedules`).
					WithArgs(1, 2, sm2.InitialEase).
					WillReturnResult(sqlmock.NewResult(5, 1))
				mock.ExpectExec(`UPDATE cards SET is_learned = TRUE WHERE id = \?`).
					WithArgs(1).
					WillReturnResult(sqlmock.NewResult(0, 1))
				readBack := sqlmock.NewRows([]string{"next_review_at"}).AddRow(now)
				mock.ExpectQuery(`SELECT next_review_at FROM card_schedules WHERE id = \?`).
					WithArgs(int64(5)).
					WillReturnRows(readBack)
				mock.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			expectedError: errors.New("commit error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupScheduleTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			schedule, err := repo.BeginLearning(context.Background(), tt.cardID, tt.userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, schedule)
				if errors.Is(tt.expectedError, ErrNotFound) || errors.Is(tt.expectedError, ErrAlreadyLearned) {
					assert.ErrorIs(t, err, tt.expectedError)
				}
			} else {
				assert.NoError(t, err)
				require.NotNil(t, schedule)
				assert.Equal(t, 5, schedule.ID)
				assert.Equal(t, tt.cardID, schedule.CardID)
				assert.Equal(t, 2, schedule.DeckID)
				assert.Equal(t, 0, schedule.RepetitionCount)
				assert.Equal(t, 0, schedule.IntervalDays)
				assert.Equal(t, sm2.InitialEase, schedule.EaseFactor)
				assert.Equal(t, now, schedule.NextReviewAt)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestScheduleRepository_LockForReview(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(-time.Hour)
	reviewed := now.Add(-24 * time.Hour)

	lockQuery := `SELECT cs\.id, cs\.card_id, cs\.deck_id, cs\.repetition_count, cs\.interval_days, cs\.ease_factor, cs\.next_review_at, cs\.last_reviewed_at, NOW\(6\) FROM card_schedules cs JOIN cards c ON cs\.card_id = c\.id JOIN decks d ON c\.deck_id = d\.id WHERE c\.id = \? AND d\.user_id = \? FOR UPDATE OF cs`

	columns := []string{
		"id", "card_id", "deck_id", "repetition_count", "interval_days",
		"ease_factor", "next_review_at", "last_reviewed_at", "NOW(6)",
	}

	tests := []struct {
		name          string
		cardID        int
		userID        int
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		wantReviewed  bool
	}{
		{
			name:   "success never reviewed",
			cardID: 1,
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				rows := sqlmock.NewRows(columns).
					AddRow(5, 1, 2, 0, 0, 2.5, due, nil, now)
				mock.ExpectQuery(lockQuery).
					WithArgs(1, 1).
					WillReturnRows(rows)
				mock.ExpectRollback()
			},
			expectedError: nil,
			wantReviewed:  false,
		},
		{
			name:   "success previously reviewed",
			cardID: 1,
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				rows := sqlmock.NewRows(columns).
					AddRow(5, 1, 2, 3, 6, 2.36, due, reviewed, now)
				mock.ExpectQuery(lockQuery).
					WithArgs(1, 1).
					WillReturnRows(rows)
				mock.ExpectRollback()
			},
			expectedError: nil,
			wantReviewed:  true,
		},
		{
			name:   "no schedule",
			cardID: 1,
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).
					WithArgs(1, 1).
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedError: ErrNotFound,
		},
		{
			name:   "database error",
			cardID: 1,
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(lockQuery).
					WithArgs(1, 1).
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupScheduleTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			lock, err := repo.LockForReview(context.Background(), tt.cardID, tt.userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, lock)
				if errors.Is(tt.expectedError, ErrNotFound) {
					assert.ErrorIs(t, err, ErrNotFound)
				}
			} else {
				assert.NoError(t, err)
				require.NotNil(t, lock)
				assert.Equal(t, 5, lock.Schedule.ID)
				assert.Equal(t, 1, lock.Schedule.CardID)
				assert.Equal(t, now, lock.Now)
				if tt.wantReviewed {
					require.NotNil(t, lock.Schedule.LastReviewedAt)
					assert.Equal(t, reviewed, *lock.Schedule.LastReviewedAt)
				} else {
					assert.Nil(t, lock.Schedule.LastReviewedAt)
				}
				lock.Release()
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestScheduleRepository_CommitReview(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	next := now.Add(6 * 24 * time.Hour)

	updated := &models.CardSchedule{
		ID:              5,
		CardID:          1,
		DeckID:          2,
		RepetitionCount: 2,
		IntervalDays:    6,
		EaseFactor:      2.5,
		NextReviewAt:    next,
		LastReviewedAt:  &now,
	}
	entry := &models.ReviewHistory{
		CardID:            1,
		ReviewedAt:        now,
		Quality:           4,
		RepetitionBefore:  1,
		IntervalBefore:    1,
		EaseBefore:        2.5,
		RepetitionAfter:   2,
		IntervalAfter:     6,
		EaseAfter:         2.5,
		NextReviewAtAfter: next,
	}

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				lockRows := sqlmock.NewRows([]string{
					"id", "card_id", "deck_id", "repetition_count", "interval_days",
					"ease_factor", "next_review_at", "last_reviewed_at", "NOW(6)",
				}).AddRow(5, 1, 2, 1, 1, 2.5, now, nil, now)
				mock.ExpectQuery(`SELECT cs\.id`).
					WithArgs(1, 1).
					WillReturnRows(lockRows)
				mock.ExpectExec(`UPDATE card_schedules SET repetition_count = \?, interval_days = \?, ease_factor = \?, next_review_at = \?, last_reviewed_at = \? WHERE id = \?`).
					WithArgs(2, 6, 2.5, next, now, 5).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO review_history`).
					WithArgs(1, now, 4, 1, 1, 2.5, 2, 6, 2.5, next).
					WillReturnResult(sqlmock.NewResult(9, 1))
				mock.ExpectCommit()
			},
			expectedError: false,
		},
		{
			name: "update error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				lockRows := sqlmock.NewRows([]string{
					"id", "card_id", "deck_id", "repetition_count", "interval_days",
					"ease_factor", "next_review_at", "last_reviewed_at", "NOW(6)",
				}).AddRow(5, 1, 2, 1, 1, 2.5, now, nil, now)
				mock.ExpectQuery(`SELECT cs\.id`).
					WithArgs(1, 1).
					WillReturnRows(lockRows)
				mock.ExpectExec(`UPDATE card_schedules`).
					WillReturnError(errors.New("update error"))
				mock.ExpectRollback()
			},
			expectedError: true,
		},
		{
			name: "history insert error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				lockRows := sqlmock.NewRows([]string{
					"id", "card_id", "deck_id", "repetition_count", "interval_days",
					"ease_factor", "next_review_at", "last_reviewed_at", "NOW(6)",
				}).AddRow(5, 1, 2, 1, 1, 2.5, now, nil, now)
				mock.ExpectQuery(`SELECT cs\.id`).
					WithArgs(1, 1).
					WillReturnRows(lockRows)
				mock.ExpectExec(`UPDATE card_schedules`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO review_history`).
					WillReturnError(errors.New("insert error"))
				mock.ExpectRollback()
			},
			expectedError: true,
		},
		{
			name: "commit error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				lockRows := sqlmock.NewRows([]string{
					"id", "card_id", "deck_id", "repetition_count", "interval_days",
					"ease_factor", "next_review_at", "last_reviewed_at", "NOW(6)",
				}).AddRow(5, 1, 2, 1, 1, 2.5, now, nil, now)
				mock.ExpectQuery(`SELECT cs\.id`).
					WithArgs(1, 1).
					WillReturnRows(lockRows)
				mock.ExpectExec(`UPDATE card_schedules`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO review_history`).
					WillReturnResult(sqlmock.NewResult(9, 1))
				mock.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupScheduleTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			lock, err := repo.LockForReview(context.Background(), 1, 1)
			require.NoError(t, err)

			err = repo.CommitReview(context.Background(), lock, updated, entry)
			lock.Release()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestScheduleRepository_GetByCardIDForUser(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	query := `SELECT cs\.id, cs\.card_id, cs\.deck_id, cs\.repetition_count, cs\.interval_days, cs\.ease_factor, cs\.next_review_at, cs\.last_reviewed_at FROM card_schedules cs JOIN cards c ON cs\.card_id = c\.id JOIN decks d ON c\.deck_id = d\.id WHERE c\.id = \? AND d\.user_id = \?`

	tests := []struct {
		name          string
		cardID        int
		userID        int
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name:   "success",
			cardID: 1,
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{
					"id", "card_id", "deck_id", "repetition_count", "interval_days",
					"ease_factor", "next_review_at", "last_reviewed_at",
				}).AddRow(5, 1, 2, 3, 6, 2.36, now, now.Add(-6*24*time.Hour))
				mock.ExpectQuery(query).
					WithArgs(1, 1).
					WillReturnRows(rows)
			},
			expectedError: nil,
		},
		{
			name:   "not in learning",
			cardID: 1,
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs(1, 1).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: ErrNotFound,
		},
		{
			name:   "database error",
			cardID: 1,
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).
					WithArgs(1, 1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupScheduleTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			schedule, err := repo.GetByCardIDForUser(context.Background(), tt.cardID, tt.userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, schedule)
				if errors.Is(tt.expectedError, ErrNotFound) {
					assert.ErrorIs(t, err, ErrNotFound)
				}
			} else {
				assert.NoError(t, err)
				require.NotNil(t, schedule)
				assert.Equal(t, 5, schedule.ID)
				assert.Equal(t, 3, schedule.RepetitionCount)
				assert.Equal(t, 6, schedule.IntervalDays)
				assert.NotNil(t, schedule.LastReviewedAt)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
