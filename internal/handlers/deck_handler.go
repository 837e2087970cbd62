package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/flashdeck/backend/internal/middleware"
	"github.com/flashdeck/backend/internal/models"
	"github.com/flashdeck/backend/internal/repositories"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DeckService is the interface that wraps methods for deck business logic
type DeckService interface {
	// Method CreateDeck creates a deck for the user.
	CreateDeck(ctx context.Context, userID int, req *models.DeckCreateRequest) (*models.Deck, error)
	// Method ListDecks retrieves all decks owned by the user, ordered by id.
	ListDecks(ctx context.Context, userID int) ([]models.Deck, error)
	// Method GetDeck retrieves a single deck owned by the user.
	//
	// Returns repositories.ErrNotFound for a missing or foreign deck.
	GetDeck(ctx context.Context, deckID, userID int) (*models.Deck, error)
	// Method DeleteDeck removes a deck owned by the user.
	//
	// Returns repositories.ErrNotFound for a missing or foreign deck.
	DeleteDeck(ctx context.Context, deckID, userID int) error
}

// DeckHandler handles deck-related HTTP requests
type DeckHandler struct {
	BaseHandler
	deckService DeckService
}

// NewDeckHandler creates a new deck handler
func NewDeckHandler(deckService DeckService, logger *zap.Logger) *DeckHandler {
	return &DeckHandler{
		BaseHandler: BaseHandler{Logger: logger},
		deckService: deckService,
	}
}

// RegisterRoutes registers all deck handler routes
func (h *DeckHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/decks", h.CreateDeck)
		r.Get("/decks", h.ListDecks)
		r.Get("/decks/{deckID}", h.GetDeck)
		r.Delete("/decks/{deckID}", h.DeleteDeck)
	})
}

// CreateDeck handles POST /decks
// @Summary Create a deck
// @Tags decks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.DeckCreateRequest true "Deck to create"
// @Success 201 {object} models.Deck "Created deck"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks [post]
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	var req models.DeckCreateRequest
	if !h.DecodeBody(w, r, &req) {
		return
	}

	deck, err := h.deckService.CreateDeck(r.Context(), userID, &req)
	if err != nil {
		h.Logger.Error("failed to create deck", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusCreated, deck)
}

// ListDecks handles GET /decks
// @Summary List decks
// @Tags decks
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Deck "Decks owned by the user"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks [get]
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	decks, err := h.deckService.ListDecks(r.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to list decks", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to list decks")
		return
	}

	if decks == nil {
		decks = []models.Deck{}
	}
	h.RespondJSON(w, http.StatusOK, decks)
}

// GetDeck handles GET /decks/{deckID}
// @Summary Get a deck
// @Tags decks
// @Produce json
// @Security ApiKeyAuth
// @Param deckID path int true "Deck ID"
// @Success 200 {object} models.Deck "Deck"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deck not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks/{deckID} [get]
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	deckID, ok := h.URLParamInt(w, r, "deckID")
	if !ok {
		return
	}

	deck, err := h.deckService.GetDeck(r.Context(), deckID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "deck not found")
			return
		}
		h.Logger.Error("failed to get deck", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get deck")
		return
	}

	h.RespondJSON(w, http.StatusOK, deck)
}

// DeleteDeck handles DELETE /decks/{deckID}
// @Summary Delete a deck
// @Description Delete a deck together with its cards, schedules and review history
// @Tags decks
// @Security ApiKeyAuth
// @Param deckID path int true "Deck ID"
// @Success 204 "Deck deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deck not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks/{deckID} [delete]
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	deckID, ok := h.URLParamInt(w, r, "deckID")
	if !ok {
		return
	}

	if err := h.deckService.DeleteDeck(r.Context(), deckID, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "deck not found")
			return
		}
		h.Logger.Error("failed to delete deck", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to delete deck")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
