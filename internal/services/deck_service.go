package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/flashdeck/backend/internal/models"
)

// DeckRepository is the interface that wraps methods for Deck table data access
type DeckRepository interface {
	// Method Create inserts a new deck; the generated ID is written back.
	Create(ctx context.Context, deck *models.Deck) error
	// Method GetAllByUserID retrieves all decks owned by a user, ordered by id.
	GetAllByUserID(ctx context.Context, userID int) ([]models.Deck, error)
	// Method GetByIDForUser retrieves a deck by ID, reporting a missing or
	// foreign deck as repositories.ErrNotFound.
	GetByIDForUser(ctx context.Context, deckID, userID int) (*models.Deck, error)
	// Method DeleteForUser removes a deck owned by the user; cards, schedules
	// and review history cascade.
	DeleteForUser(ctx context.Context, deckID, userID int) error
}

type deckService struct {
	deckRepo DeckRepository
}

// NewDeckService creates a new deck service
func NewDeckService(deckRepo DeckRepository) *deckService {
	return &deckService{
		deckRepo: deckRepo,
	}
}

// CreateDeck creates a deck for the user
func (s *deckService) CreateDeck(ctx context.Context, userID int, req *models.DeckCreateRequest) (*models.Deck, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("deck name is required")
	}

	deck := &models.Deck{
		Name:   name,
		UserID: userID,
	}

	if err := s.deckRepo.Create(ctx, deck); err != nil {
		return nil, err
	}

	return deck, nil
}

// ListDecks retrieves all decks owned by the user
func (s *deckService) ListDecks(ctx context.Context, userID int) ([]models.Deck, error) {
	return s.deckRepo.GetAllByUserID(ctx, userID)
}

// GetDeck retrieves a single deck owned by the user
func (s *deckService) GetDeck(ctx context.Context, deckID, userID int) (*models.Deck, error) {
	return s.deckRepo.GetByIDForUser(ctx, deckID, userID)
}

// DeleteDeck removes a deck owned by the user
func (s *deckService) DeleteDeck(ctx context.Context, deckID, userID int) error {
	return s.deckRepo.DeleteForUser(ctx, deckID, userID)
}
