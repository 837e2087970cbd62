package services

import (
	"context"
	"fmt"

	"github.com/flashdeck/backend/internal/models"
	"github.com/flashdeck/backend/internal/repositories"
	"github.com/flashdeck/backend/internal/sm2"
	"go.uber.org/zap"
)

// ScheduleRepository is the interface that wraps methods for CardSchedule table data access
type ScheduleRepository interface {
	// Method BeginLearning atomically creates the initial schedule for a card
	// and marks the card learned.
	//
	// "cardID" identifies the card; "userID" is the authenticated owner asserted
	// by the caller.
	//
	// Returns repositories.ErrNotFound if the card does not exist or is not owned
	// by the user, repositories.ErrAlreadyLearned if a schedule already exists.
	BeginLearning(ctx context.Context, cardID, userID int) (*models.CardSchedule, error)
	// Method LockForReview takes an exclusive lock on the card's schedule row and
	// returns the snapshot together with the store's current instant.
	//
	// The lock is held until CommitReview or Release is called on the returned
	// ScheduleLock. Returns repositories.ErrNotFound if no owned, learned card
	// matches.
	LockForReview(ctx context.Context, cardID, userID int) (*repositories.ScheduleLock, error)
	// Method CommitReview persists the updated schedule and the ledger entry as
	// one atomic unit while still holding the lock, then releases it.
	CommitReview(ctx context.Context, lock *repositories.ScheduleLock, updated *models.CardSchedule, entry *models.ReviewHistory) error
	// Method GetByCardIDForUser retrieves the schedule of a learned card owned by
	// the user without locking it.
	//
	// Returns repositories.ErrNotFound if no owned, learned card matches.
	GetByCardIDForUser(ctx context.Context, cardID, userID int) (*models.CardSchedule, error)
}

// SchedulerCardRepository is the interface that wraps card listing methods the
// scheduler needs
type SchedulerCardRepository interface {
	// Method GetDueByDeckID retrieves up to "limit" learned cards in the deck
	// whose next review time is at or before the store's current instant,
	// ordered earliest-due first with card id as tiebreak.
	GetDueByDeckID(ctx context.Context, deckID, limit int) ([]models.Card, error)
	// Method GetUnlearnedByDeckID retrieves up to "limit" cards in the deck with
	// no schedule, ordered by card id.
	GetUnlearnedByDeckID(ctx context.Context, deckID, limit int) ([]models.Card, error)
}

// SchedulerDeckRepository is the interface that wraps the deck ownership check
// the scheduler needs
type SchedulerDeckRepository interface {
	// Method GetByIDForUser retrieves a deck by ID, reporting a foreign deck as
	// repositories.ErrNotFound.
	GetByIDForUser(ctx context.Context, deckID, userID int) (*models.Deck, error)
}

const (
	defaultListLimit = 10
	maxListLimit     = 50
)

type schedulerService struct {
	scheduleRepo ScheduleRepository
	cardRepo     SchedulerCardRepository
	deckRepo     SchedulerDeckRepository
	logger       *zap.Logger
}

// NewSchedulerService creates a new scheduler service
func NewSchedulerService(
	scheduleRepo ScheduleRepository,
	cardRepo SchedulerCardRepository,
	deckRepo SchedulerDeckRepository,
	logger *zap.Logger,
) *schedulerService {
	return &schedulerService{
		scheduleRepo: scheduleRepo,
		cardRepo:     cardRepo,
		deckRepo:     deckRepo,
		logger:       logger,
	}
}

// Learn puts a card into learning, creating its schedule due immediately
func (s *schedulerService) Learn(ctx context.Context, cardID, userID int) (*models.CardSchedule, error) {
	schedule, err := s.scheduleRepo.BeginLearning(ctx, cardID, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("card entered learning",
		zap.Int("cardId", cardID),
		zap.Int("userId", userID),
	)

	return schedule, nil
}

// Review applies one review with the given quality score to a due card.
//
// Quality is validated before any storage access. The due check runs against
// the snapshot and instant observed under the schedule's row lock, so of N
// concurrent reviews of one due card exactly one commits; the rest see a
// next review time already in the future and fail with ErrNotDue. The
// review instant is the store's clock, never the client's.
func (s *schedulerService) Review(ctx context.Context, cardID, userID, quality int) (*models.CardSchedule, error) {
	if quality < 0 || quality > 5 {
		return nil, sm2.ErrInvalidQuality
	}

	lock, err := s.scheduleRepo.LockForReview(ctx, cardID, userID)
	if err != nil {
		return nil, err
	}
	defer lock.Release()

	snapshot := lock.Schedule
	now := lock.Now

	if snapshot.NextReviewAt.After(now) {
		// A previous request advanced the card past this instant.
		return nil, ErrNotDue
	}

	result, err := sm2.Update(sm2.State{
		RepetitionCount: snapshot.RepetitionCount,
		IntervalDays:    snapshot.IntervalDays,
		EaseFactor:      snapshot.EaseFactor,
	}, quality, now)
	if err != nil {
		return nil, err
	}

	updated := snapshot
	updated.RepetitionCount = result.RepetitionCount
	updated.IntervalDays = result.IntervalDays
	updated.EaseFactor = result.EaseFactor
	updated.NextReviewAt = result.NextReviewAt
	updated.LastReviewedAt = &now

	entry := &models.ReviewHistory{
		CardID:            snapshot.CardID,
		ReviewedAt:        now,
		Quality:           quality,
		RepetitionBefore:  snapshot.RepetitionCount,
		IntervalBefore:    snapshot.IntervalDays,
		EaseBefore:        snapshot.EaseFactor,
		RepetitionAfter:   updated.RepetitionCount,
		IntervalAfter:     updated.IntervalDays,
		EaseAfter:         updated.EaseFactor,
		NextReviewAtAfter: updated.NextReviewAt,
	}

	if err := s.scheduleRepo.CommitReview(ctx, lock, &updated, entry); err != nil {
		return nil, fmt.Errorf("failed to commit review: %w", err)
	}

	s.logger.Info("review applied",
		zap.Int("cardId", cardID),
		zap.Int("quality", quality),
		zap.Int("repetitionCount", updated.RepetitionCount),
		zap.Time("nextReviewAt", updated.NextReviewAt),
	)

	return &updated, nil
}

// GetSchedule retrieves the current schedule of a learned card
func (s *schedulerService) GetSchedule(ctx context.Context, cardID, userID int) (*models.CardSchedule, error) {
	return s.scheduleRepo.GetByCardIDForUser(ctx, cardID, userID)
}

// DueCards lists cards in a deck that are due for review
func (s *schedulerService) DueCards(ctx context.Context, deckID, userID, limit int) ([]models.Card, error) {
	if _, err := s.deckRepo.GetByIDForUser(ctx, deckID, userID); err != nil {
		return nil, err
	}

	return s.cardRepo.GetDueByDeckID(ctx, deckID, clampLimit(limit))
}

// UnlearnedCards lists cards in a deck that have not entered learning yet
func (s *schedulerService) UnlearnedCards(ctx context.Context, deckID, userID, limit int) ([]models.Card, error) {
	if _, err := s.deckRepo.GetByIDForUser(ctx, deckID, userID); err != nil {
		return nil, err
	}

	return s.cardRepo.GetUnlearnedByDeckID(ctx, deckID, clampLimit(limit))
}

// clampLimit applies the default page size and the upper bound that keeps
// list queries from turning into unbounded scans
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
