package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/flashdeck/backend/internal/models"
)

// CardRepository is the interface that wraps methods for Card table data access
type CardRepository interface {
	// Method Create inserts a new card; the generated ID is written back.
	// Deck ownership is checked by the caller.
	Create(ctx context.Context, card *models.Card) error
	// Method GetAllByDeckID retrieves all cards in a deck, ordered by id.
	GetAllByDeckID(ctx context.Context, deckID int) ([]models.Card, error)
	// Method GetByIDForUser retrieves a card by ID, reporting a missing or
	// foreign card as repositories.ErrNotFound.
	GetByIDForUser(ctx context.Context, cardID, userID int) (*models.Card, error)
	// Method UpdateForUser updates the front and back of a card owned by the
	// user.
	UpdateForUser(ctx context.Context, cardID, userID int, front, back string) error
	// Method DeleteForUser removes a card owned by the user; the schedule and
	// review history cascade.
	DeleteForUser(ctx context.Context, cardID, userID int) error
}

type cardService struct {
	cardRepo CardRepository
	deckRepo DeckRepository
}

// NewCardService creates a new card service
func NewCardService(cardRepo CardRepository, deckRepo DeckRepository) *cardService {
	return &cardService{
		cardRepo: cardRepo,
		deckRepo: deckRepo,
	}
}

// CreateCard creates a card inside a deck owned by the user
func (s *cardService) CreateCard(ctx context.Context, deckID, userID int, req *models.CardCreateRequest) (*models.Card, error) {
	front := strings.TrimSpace(req.Front)
	back := strings.TrimSpace(req.Back)
	if front == "" || back == "" {
		return nil, fmt.Errorf("card front and back are required")
	}

	// Confirm the deck exists and belongs to the user
	if _, err := s.deckRepo.GetByIDForUser(ctx, deckID, userID); err != nil {
		return nil, err
	}

	card := &models.Card{
		Front:  front,
		Back:   back,
		DeckID: deckID,
	}

	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}

// ListCards retrieves all cards in a deck owned by the user
func (s *cardService) ListCards(ctx context.Context, deckID, userID int) ([]models.Card, error) {
	if _, err := s.deckRepo.GetByIDForUser(ctx, deckID, userID); err != nil {
		return nil, err
	}

	return s.cardRepo.GetAllByDeckID(ctx, deckID)
}

// GetCard retrieves a single card owned by the user
func (s *cardService) GetCard(ctx context.Context, cardID, userID int) (*models.Card, error) {
	return s.cardRepo.GetByIDForUser(ctx, cardID, userID)
}

// UpdateCard applies a partial update to a card owned by the user.
// Only fields present in the request change; an empty patch is rejected.
func (s *cardService) UpdateCard(ctx context.Context, cardID, userID int, req *models.CardUpdateRequest) (*models.Card, error) {
	if req.Front == nil && req.Back == nil {
		return nil, ErrEmptyUpdate
	}

	card, err := s.cardRepo.GetByIDForUser(ctx, cardID, userID)
	if err != nil {
		return nil, err
	}

	if req.Front != nil {
		card.Front = *req.Front
	}
	if req.Back != nil {
		card.Back = *req.Back
	}

	if err := s.cardRepo.UpdateForUser(ctx, cardID, userID, card.Front, card.Back); err != nil {
		return nil, err
	}

	return card, nil
}

// DeleteCard removes a card owned by the user
func (s *cardService) DeleteCard(ctx context.Context, cardID, userID int) error {
	return s.cardRepo.DeleteForUser(ctx, cardID, userID)
}
