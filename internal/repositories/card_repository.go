package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/flashdeck/backend/internal/models"
)

// cardRepository implements CardRepository
type cardRepository struct {
	db *sql.DB
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *sql.DB) *cardRepository {
	return &cardRepository{
		db: db,
	}
}

// Create inserts a new card into a deck.
// Deck existence and ownership are checked by the caller.
func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	query := `
		INSERT INTO cards (front, back, deck_id)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, card.Front, card.Back, card.DeckID)
	if err != nil {
		return fmt.Errorf("failed to create card: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	card.ID = int(id)
	return nil
}

// GetAllByDeckID retrieves all cards in a deck, ordered by id
func (r *cardRepository) GetAllByDeckID(ctx context.Context, deckID int) ([]models.Card, error) {
	query := `
		SELECT id, front, back, deck_id, is_learned
		FROM cards
		WHERE deck_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// GetByIDForUser retrieves a card by ID, enforcing ownership through the
// deck join. A foreign card is reported as ErrNotFound.
func (r *cardRepository) GetByIDForUser(ctx context.Context, cardID, userID int) (*models.Card, error) {
	query := `
		SELECT c.id, c.front, c.back, c.deck_id, c.is_learned
		FROM cards c
		JOIN decks d ON c.deck_id = d.id
		WHERE c.id = ? AND d.user_id = ?
	`

	card := &models.Card{}
	err := r.db.QueryRowContext(ctx, query, cardID, userID).Scan(
		&card.ID,
		&card.Front,
		&card.Back,
		&card.DeckID,
		&card.IsLearned,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return card, nil
}

// UpdateForUser updates the front and back of a card owned by the user
func (r *cardRepository) UpdateForUser(ctx context.Context, cardID, userID int, front, back string) error {
	query := `
		UPDATE cards c
		JOIN decks d ON c.deck_id = d.id
		SET c.front = ?, c.back = ?
		WHERE c.id = ? AND d.user_id = ?
	`

	_, err := r.db.ExecContext(ctx, query, front, back, cardID, userID)
	if err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}

	return nil
}

// DeleteForUser removes a card owned by the user; the schedule and review
// history cascade
func (r *cardRepository) DeleteForUser(ctx context.Context, cardID, userID int) error {
	query := `
		DELETE c FROM cards c
		JOIN decks d ON c.deck_id = d.id
		WHERE c.id = ? AND d.user_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, cardID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// GetDueByDeckID retrieves learned cards in a deck whose schedule is due at
// or before the store's current instant, earliest due first. Ties on the due
// time are broken by card id so the ordering is deterministic.
func (r *cardRepository) GetDueByDeckID(ctx context.Context, deckID, limit int) ([]models.Card, error) {
	query := `
		SELECT c.id, c.front, c.back, c.deck_id, c.is_learned
		FROM cards c
		JOIN card_schedules cs ON cs.card_id = c.id
		WHERE cs.deck_id = ? AND cs.next_review_at <= NOW(6)
		ORDER BY cs.next_review_at ASC, c.id ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, deckID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query due cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// GetUnlearnedByDeckID retrieves cards in a deck that have no schedule yet,
// ordered by id
func (r *cardRepository) GetUnlearnedByDeckID(ctx context.Context, deckID, limit int) ([]models.Card, error) {
	query := `
		SELECT id, front, back, deck_id, is_learned
		FROM cards
		WHERE deck_id = ? AND is_learned = FALSE
		ORDER BY id ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, deckID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unlearned cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// scanCards collects card rows into a slice
func scanCards(rows *sql.Rows) ([]models.Card, error) {
	var cards []models.Card
	for rows.Next() {
		var card models.Card
		if err := rows.Scan(&card.ID, &card.Front, &card.Back, &card.DeckID, &card.IsLearned); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return cards, nil
}
