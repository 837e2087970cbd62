package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/flashdeck/backend/internal/models"
	"github.com/flashdeck/backend/internal/sm2"
	"go.uber.org/zap"
)

// ScheduleLock holds the open transaction behind a row lock taken by
// LockForReview, together with the snapshot read under that lock.
//
// Now is the database's own clock observed in the same statement that took
// the lock; the service uses it for the due check and the review instant so
// client clock skew can never produce an instant behind committed state.
type ScheduleLock struct {
	tx       *sql.Tx
	Schedule models.CardSchedule
	Now      time.Time
}

// Release rolls the transaction back, dropping the row lock.
// Safe to call after CommitReview; the rollback is then a no-op.
func (l *ScheduleLock) Release() {
	if l.tx == nil {
		return
	}
	_ = l.tx.Rollback()
}

// scheduleRepository implements ScheduleRepository
type scheduleRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *sql.DB, logger *zap.Logger) *scheduleRepository {
	return &scheduleRepository{
		db:     db,
		logger: logger,
	}
}

// BeginLearning creates the initial schedule for a card and marks it learned,
// all in one transaction.
//
// The card row is locked through the deck join so two concurrent calls
// serialize: the first commits, the second sees is_learned already set and
// fails with ErrAlreadyLearned. A missing or foreign card is ErrNotFound.
func (r *scheduleRepository) BeginLearning(ctx context.Context, cardID, userID int) (*models.CardSchedule, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		SELECT c.id, c.deck_id, c.is_learned
		FROM cards c
		JOIN decks d ON c.deck_id = d.id
		WHERE c.id = ? AND d.user_id = ?
		FOR UPDATE
	`

	var id, deckID int
	var isLearned bool
	err = tx.QueryRowContext(ctx, query, cardID, userID).Scan(&id, &deckID, &isLearned)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to lock card for learning", zap.Error(err), zap.Int("cardId", cardID))
		return nil, fmt.Errorf("failed to lock card: %w", err)
	}

	if isLearned {
		return nil, ErrAlreadyLearned
	}

	insert := `
		INSERT INTO card_schedules
		(card_id, deck_id, repetition_count, interval_days, ease_factor, next_review_at, last_reviewed_at)
		VALUES (?, ?, 0, 0, ?, NOW(6), NULL)
	`

	result, err := tx.ExecContext(ctx, insert, cardID, deckID, sm2.InitialEase)
	if err != nil {
		r.logger.Error("failed to create schedule", zap.Error(err), zap.Int("cardId", cardID))
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	scheduleID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE cards SET is_learned = TRUE WHERE id = ?`, cardID); err != nil {
		r.logger.Error("failed to mark card learned", zap.Error(err), zap.Int("cardId", cardID))
		return nil, fmt.Errorf("failed to mark card learned: %w", err)
	}

	// Read the due time the database assigned before committing.
	schedule := &models.CardSchedule{
		ID:              int(scheduleID),
		CardID:          cardID,
		DeckID:          deckID,
		RepetitionCount: 0,
		IntervalDays:    0,
		EaseFactor:      sm2.InitialEase,
	}
	err = tx.QueryRowContext(ctx, `SELECT next_review_at FROM card_schedules WHERE id = ?`, scheduleID).
		Scan(&schedule.NextReviewAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read back schedule: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return schedule, nil
}

// LockForReview locates the schedule of a learned card owned by the user and
// takes an exclusive row lock on it, returning the snapshot and the
// database's current instant observed under that lock.
//
// The lock is held until CommitReview or Release. A card that does not
// exist, is not owned by the user, or has no schedule yet is ErrNotFound.
func (r *scheduleRepository) LockForReview(ctx context.Context, cardID, userID int) (*ScheduleLock, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	query := `
		SELECT cs.id, cs.card_id, cs.deck_id, cs.repetition_count, cs.interval_days,
		       cs.ease_factor, cs.next_review_at, cs.last_reviewed_at, NOW(6)
		FROM card_schedules cs
		JOIN cards c ON cs.card_id = c.id
		JOIN decks d ON c.deck_id = d.id
		WHERE c.id = ? AND d.user_id = ?
		FOR UPDATE OF cs
	`

	var schedule models.CardSchedule
	var lastReviewedAt sql.NullTime
	var now time.Time
	err = tx.QueryRowContext(ctx, query, cardID, userID).Scan(
		&schedule.ID,
		&schedule.CardID,
		&schedule.DeckID,
		&schedule.RepetitionCount,
		&schedule.IntervalDays,
		&schedule.EaseFactor,
		&schedule.NextReviewAt,
		&lastReviewedAt,
		&now,
	)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return nil, ErrNotFound
	}
	if err != nil {
		tx.Rollback()
		r.logger.Error("failed to lock schedule for review", zap.Error(err), zap.Int("cardId", cardID))
		return nil, fmt.Errorf("failed to lock schedule: %w", err)
	}

	if lastReviewedAt.Valid {
		schedule.LastReviewedAt = &lastReviewedAt.Time
	}

	return &ScheduleLock{tx: tx, Schedule: schedule, Now: now}, nil
}

// CommitReview writes the updated schedule fields and appends the ledger
// entry as one atomic unit, then releases the lock taken by LockForReview.
func (r *scheduleRepository) CommitReview(ctx context.Context, lock *ScheduleLock, updated *models.CardSchedule, entry *models.ReviewHistory) error {
	update := `
		UPDATE card_schedules
		SET repetition_count = ?, interval_days = ?, ease_factor = ?,
		    next_review_at = ?, last_reviewed_at = ?
		WHERE id = ?
	`

	_, err := lock.tx.ExecContext(ctx, update,
		updated.RepetitionCount,
		updated.IntervalDays,
		updated.EaseFactor,
		updated.NextReviewAt,
		updated.LastReviewedAt,
		updated.ID,
	)
	if err != nil {
		r.logger.Error("failed to update schedule", zap.Error(err), zap.Int("scheduleId", updated.ID))
		return fmt.Errorf("failed to update schedule: %w", err)
	}

	insert := `
		INSERT INTO review_history
		(card_id, reviewed_at, quality, repetition_before, interval_before, ease_before,
		 repetition_after, interval_after, ease_after, next_review_at_after)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = lock.tx.ExecContext(ctx, insert,
		entry.CardID,
		entry.ReviewedAt,
		entry.Quality,
		entry.RepetitionBefore,
		entry.IntervalBefore,
		entry.EaseBefore,
		entry.RepetitionAfter,
		entry.IntervalAfter,
		entry.EaseAfter,
		entry.NextReviewAtAfter,
	)
	if err != nil {
		r.logger.Error("failed to append review history", zap.Error(err), zap.Int("cardId", entry.CardID))
		return fmt.Errorf("failed to append review history: %w", err)
	}

	if err := lock.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByCardIDForUser retrieves the schedule of a learned card owned by the
// user without locking it
func (r *scheduleRepository) GetByCardIDForUser(ctx context.Context, cardID, userID int) (*models.CardSchedule, error) {
	query := `
		SELECT cs.id, cs.card_id, cs.deck_id, cs.repetition_count, cs.interval_days,
		       cs.ease_factor, cs.next_review_at, cs.last_reviewed_at
		FROM card_schedules cs
		JOIN cards c ON cs.card_id = c.id
		JOIN decks d ON c.deck_id = d.id
		WHERE c.id = ? AND d.user_id = ?
	`

	var schedule models.CardSchedule
	var lastReviewedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, cardID, userID).Scan(
		&schedule.ID,
		&schedule.CardID,
		&schedule.DeckID,
		&schedule.RepetitionCount,
		&schedule.IntervalDays,
		&schedule.EaseFactor,
		&schedule.NextReviewAt,
		&lastReviewedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get schedule", zap.Error(err), zap.Int("cardId", cardID))
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	if lastReviewedAt.Valid {
		schedule.LastReviewedAt = &lastReviewedAt.Time
	}

	return &schedule, nil
}
