package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/flashdeck/backend/internal/middleware"
	"github.com/flashdeck/backend/internal/models"
	"github.com/flashdeck/backend/internal/repositories"
	"github.com/flashdeck/backend/internal/services"
	"github.com/flashdeck/backend/internal/sm2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SchedulerService is the interface that wraps methods for scheduling business logic
type SchedulerService interface {
	// Method Learn puts a card into learning, creating its schedule due
	// immediately.
	//
	// Returns repositories.ErrAlreadyLearned if the card already has a
	// schedule.
	Learn(ctx context.Context, cardID, userID int) (*models.CardSchedule, error)
	// Method Review applies one graded review to a due card and returns the
	// updated schedule.
	//
	// Returns sm2.ErrInvalidQuality for a quality outside [0, 5],
	// services.ErrNotDue when the card's next review time is still in the
	// future, and repositories.ErrNotFound when the card is missing, foreign
	// or not in learning.
	Review(ctx context.Context, cardID, userID, quality int) (*models.CardSchedule, error)
	// Method GetSchedule retrieves the current schedule of a learned card.
	GetSchedule(ctx context.Context, cardID, userID int) (*models.CardSchedule, error)
	// Method DueCards lists cards in a deck due for review, most overdue
	// first.
	DueCards(ctx context.Context, deckID, userID, limit int) ([]models.Card, error)
	// Method UnlearnedCards lists cards in a deck that have not entered
	// learning yet.
	UnlearnedCards(ctx context.Context, deckID, userID, limit int) ([]models.Card, error)
}

// SchedulerHandler handles learning and review HTTP requests
type SchedulerHandler struct {
	BaseHandler
	schedulerService SchedulerService
}

// NewSchedulerHandler creates a new scheduler handler
func NewSchedulerHandler(schedulerService SchedulerService, logger *zap.Logger) *SchedulerHandler {
	return &SchedulerHandler{
		BaseHandler:      BaseHandler{Logger: logger},
		schedulerService: schedulerService,
	}
}

// RegisterRoutes registers all scheduler handler routes
func (h *SchedulerHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/cards/{cardID}/learn", h.Learn)
		r.Post("/cards/{cardID}/review", h.Review)
		r.Get("/cards/{cardID}/schedule", h.GetSchedule)
		r.Get("/decks/{deckID}/cards/due", h.DueCards)
		r.Get("/decks/{deckID}/cards/new", h.UnlearnedCards)
	})
}

// Learn handles POST /cards/{cardID}/learn
// @Summary Start learning a card
// @Description Move a card into learning; its first review is due immediately
// @Tags scheduling
// @Produce json
// @Security ApiKeyAuth
// @Param cardID path int true "Card ID"
// @Success 201 {object} models.CardSchedule "Created schedule"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Card not found"
// @Failure 409 {object} map[string]string "Card is already learned"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cards/{cardID}/learn [post]
func (h *SchedulerHandler) Learn(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	cardID, ok := h.URLParamInt(w, r, "cardID")
	if !ok {
		return
	}

	schedule, err := h.schedulerService.Learn(r.Context(), cardID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			h.RespondError(w, http.StatusNotFound, "card not found")
		case errors.Is(err, repositories.ErrAlreadyLearned):
			h.RespondError(w, http.StatusConflict, "card is already learned")
		default:
			h.Logger.Error("failed to start learning", zap.Error(err))
			h.RespondError(w, http.StatusInternalServerError, "failed to start learning")
		}
		return
	}

	h.RespondJSON(w, http.StatusCreated, schedule)
}

// Review handles POST /cards/{cardID}/review
// @Summary Review a card
// @Description Apply one graded review to a due card and reschedule it
// @Tags scheduling
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param cardID path int true "Card ID"
// @Param request body models.ReviewRequest true "Recall quality, 0 to 5"
// @Success 200 {object} models.CardSchedule "Updated schedule"
// @Failure 400 {object} map[string]string "Invalid quality"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Card not found or not in learning"
// @Failure 409 {object} map[string]string "Card is not due yet"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cards/{cardID}/review [post]
func (h *SchedulerHandler) Review(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	cardID, ok := h.URLParamInt(w, r, "cardID")
	if !ok {
		return
	}

	var req models.ReviewRequest
	if !h.DecodeBody(w, r, &req) {
		return
	}

	schedule, err := h.schedulerService.Review(r.Context(), cardID, userID, req.Quality)
	if err != nil {
		switch {
		case errors.Is(err, sm2.ErrInvalidQuality):
			h.RespondError(w, http.StatusBadRequest, "quality must be between 0 and 5")
		case errors.Is(err, repositories.ErrNotFound):
			h.RespondError(w, http.StatusNotFound, "card not found or not in learning")
		case errors.Is(err, services.ErrNotDue):
			h.RespondError(w, http.StatusConflict, "card is not due yet")
		default:
			h.Logger.Error("failed to review card", zap.Error(err))
			h.RespondError(w, http.StatusInternalServerError, "failed to review card")
		}
		return
	}

	h.RespondJSON(w, http.StatusOK, schedule)
}

// GetSchedule handles GET /cards/{cardID}/schedule
// @Summary Get a card's schedule
// @Tags scheduling
// @Produce json
// @Security ApiKeyAuth
// @Param cardID path int true "Card ID"
// @Success 200 {object} models.CardSchedule "Schedule"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Card not found or not in learning"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cards/{cardID}/schedule [get]
func (h *SchedulerHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	cardID, ok := h.URLParamInt(w, r, "cardID")
	if !ok {
		return
	}

	schedule, err := h.schedulerService.GetSchedule(r.Context(), cardID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "card not found or not in learning")
			return
		}
		h.Logger.Error("failed to get schedule", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get schedule")
		return
	}

	h.RespondJSON(w, http.StatusOK, schedule)
}

// DueCards handles GET /decks/{deckID}/cards/due
// @Summary List due cards
// @Description List cards in a deck due for review, most overdue first
// @Tags scheduling
// @Produce json
// @Security ApiKeyAuth
// @Param deckID path int true "Deck ID"
// @Param limit query int false "Maximum number of cards (default 10, max 50)"
// @Success 200 {array} models.Card "Due cards"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deck not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks/{deckID}/cards/due [get]
func (h *SchedulerHandler) DueCards(w http.ResponseWriter, r *http.Request) {
	h.listCards(w, r, h.schedulerService.DueCards)
}

// UnlearnedCards handles GET /decks/{deckID}/cards/new
// @Summary List new cards
// @Description List cards in a deck that have not entered learning yet
// @Tags scheduling
// @Produce json
// @Security ApiKeyAuth
// @Param deckID path int true "Deck ID"
// @Param limit query int false "Maximum number of cards (default 10, max 50)"
// @Success 200 {array} models.Card "Unlearned cards"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deck not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /decks/{deckID}/cards/new [get]
func (h *SchedulerHandler) UnlearnedCards(w http.ResponseWriter, r *http.Request) {
	h.listCards(w, r, h.schedulerService.UnlearnedCards)
}

func (h *SchedulerHandler) listCards(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, deckID, userID, limit int) ([]models.Card, error)) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	deckID, ok := h.URLParamInt(w, r, "deckID")
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.RespondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	cards, err := list(r.Context(), deckID, userID, limit)
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
