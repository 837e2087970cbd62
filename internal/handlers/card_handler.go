package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/flashdeck/backend/internal/middleware"
	"github.com/flashdeck/backend/internal/models"
	"github.com/flashdeck/backend/internal/repositories"
	"github.com/flashdeck/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CardService is the interface that wraps methods for card business logic
type CardService interface {
	// Method CreateCard creates a card in a deck owned by the user.
	CreateCard(ctx context.Context, deckID, userID int, req *models.CardCreateRequest) (*models.Card, error)
	// Method ListCards retrieves all cards in a deck owned by the user.
	ListCards(ctx context.Context, deckID, userID int) ([]models.Card, error)
	// Method GetCard retrieves a single card owned by the user.
	GetCard(ctx context.Context, cardID, userID int) (*models.Card, error)
	// Method UpdateCard applies a partial update to a card's faces.
	//
	// Returns services.ErrEmptyUpdate when neither face is provided.
	UpdateCard(ctx context.Context, cardID, userID int, req *models.CardUpdateRequest) (*models.Card, error)
	// Method DeleteCard removes a card owned by the user.
	DeleteCard(ctx context.Context, cardID, userID int) error
}

// CardHandler handles card-related HTTP requests
type CardHandler struct {
	BaseHandler
	cardService CardService
}

// NewCardHandler creates a new card handler
func NewCardHandler(cardService CardService, logger *zap.Logger) *CardHandler {
	return &CardHandler{
		BaseHandler: BaseHandler{Logger: logger},
		cardService: cardService,
	}
}

// RegisterRoutes registers all card handler routes
func (h *CardHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/decks/{deckID}/cards", h.CreateCard)
		r.Get("/decks/{deckID}/cards", h.ListCards)
		r.Get("/cards/{cardID}", h.GetCard)
		r.Patch("/cards/{cardID}", h.UpdateCard)
		r.Delete("/cards/{cardID}", h.DeleteCard)
	})
}

// CreateCard handles POST /decks/{deckID}/cards
// @Summary Create a card
// @Tags cards
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param deckID path int true "Deck ID"
// @Param request body models.CardCreateRequest true "Card to create"
// @Success 201 {object} models.Card "Created card"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deck not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks/{deckID}/cards [post]
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	deckID, ok := h.URLParamInt(w, r, "deckID")
	if !ok {
		return
	}

	var req models.CardCreateRequest
	if !h.DecodeBody(w, r, &req) {
		return
	}

	card, err := h.cardService.CreateCard(r.Context(), deckID, userID, &req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "deck not found")
			return
		}
		h.Logger.Error("failed to create card", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusCreated, card)
}

// ListCards handles GET /decks/{deckID}/cards
// @Summary List cards in a deck
// @Tags cards
// @Produce json
// @Security ApiKeyAuth
// @Param deckID path int true "Deck ID"
// @Success 200 {array} models.Card "Cards in the deck"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deck not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks/{deckID}/cards [get]
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	deckID, ok := h.URLParamInt(w, r, "deckID")
	if !ok {
		return
	}

	cards, err := h.cardService.ListCards(r.Context(), deckID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "deck not found")
			return
		}
		h.Logger.Error("failed to list cards", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list cards")
		return
	}

	if cards == nil {
		cards = []models.Card{}
	}
	h.RespondJSON(w, http.StatusOK, cards)
}

// GetCard handles GET /cards/{cardID}
// @Summary Get a card
// @Tags cards
// @Produce json
// @Security ApiKeyAuth
// @Param cardID path int true "Card ID"
// @Success 200 {object} models.Card "Card"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cards/{cardID} [get]
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	cardID, ok := h.URLParamInt(w, r, "cardID")
	if !ok {
		return
	}

	card, err := h.cardService.GetCard(r.Context(), cardID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "card not found")
			return
		}
		h.Logger.Error("failed to get card", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get card")
		return
	}

	h.RespondJSON(w, http.StatusOK, card)
}

// UpdateCard handles PATCH /cards/{cardID}
// @Summary Update a card
// @Description Partially update the front and/or back text of a card
// @Tags cards
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param cardID path int true "Card ID"
// @Param request body models.CardUpdateRequest true "Fields to update"
// @Success 200 {object} models.Card "Updated card"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cards/{cardID} [patch]
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	cardID, ok := h.URLParamInt(w, r, "cardID")
	if !ok {
		return
	}

	var req models.CardUpdateRequest
	if !h.DecodeBody(w, r, &req) {
		return
	}

	card, err := h.cardService.UpdateCard(r.Context(), cardID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyUpdate):
			h.RespondError(w, http.StatusBadRequest, "at least one of front or back must be provided")
		case errors.Is(err, repositories.ErrNotFound):
			h.RespondError(w, http.StatusNotFound, "card not found")
		default:
			h.Logger.Error("failed to update card", zap.Error(err))
			h.RespondError(w, http.StatusInternalServerError, "failed to update card")
		}
		return
	}

	h.RespondJSON(w, http.StatusOK, card)
}

// DeleteCard handles DELETE /cards/{cardID}
// @Summary Delete a card
// @Tags cards
// @Security ApiKeyAuth
// @Param cardID path int true "Card ID"
// @Success 204 "Card deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cards/{cardID} [delete]
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	cardID, ok := h.URLParamInt(w, r, "cardID")
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(r.Context(), cardID, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "card not found")
			return
		}
		h.Logger.Error("failed to delete card", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete card")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
