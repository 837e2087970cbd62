package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/flashdeck/backend/internal/models"
)

// deckRepository implements DeckRepository
type deckRepository struct {
	db *sql.DB
}

// NewDeckRepository creates a new deck repository
func NewDeckRepository(db *sql.DB) *deckRepository {
	return &deckRepository{
		db: db,
	}
}

// Create inserts a new deck for the given owner
func (r *deckRepository) Create(ctx context.Context, deck *models.Deck) error {
	query := `
		INSERT INTO decks (name, user_id)
		VALUES (?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, deck.Name, deck.UserID)
	if err != nil {
		return fmt.Errorf("failed to create deck: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	deck.ID = int(id)
	return nil
}

// GetAllByUserID retrieves all decks owned by a user, ordered by id
func (r *deckRepository) GetAllByUserID(ctx context.Context, userID int) ([]models.Deck, error) {
	query := `
		SELECT id, name, user_id
		FROM decks
		WHERE user_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query decks: %w", err)
	}
	defer rows.Close()

	var decks []models.Deck
	for rows.Next() {
		var deck models.Deck
		if err := rows.Scan(&deck.ID, &deck.Name, &deck.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan deck: %w", err)
		}
		decks = append(decks, deck)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return decks, nil
}

// GetByIDForUser retrieves a deck by ID, enforcing ownership.
// A deck owned by someone else is reported as ErrNotFound.
func (r *deckRepository) GetByIDForUser(ctx context.Context, deckID, userID int) (*models.Deck, error) {
	query := `
		SELECT id, name, user_id
		FROM decks
		WHERE id = ? AND user_id = ?
	`

	deck := &models.Deck{}
	err := r.db.QueryRowContext(ctx, query, deckID, userID).Scan(&deck.ID, &deck.Name, &deck.UserID)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}

	return deck, nil
}

// DeleteForUser removes a deck owned by the user; cards, schedules and
// review history cascade
func (r *deckRepository) DeleteForUser(ctx context.Context, deckID, userID int) error {
	query := `DELETE FROM decks WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, deckID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
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
