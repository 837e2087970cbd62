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

// AuthService is the interface that wraps methods for authentication business logic
type AuthService interface {
	// Method Signup validates the credentials and creates a new account.
	//
	// Returns services.ErrInvalidEmail, services.ErrInvalidPassword or
	// services.ErrEmailTaken on a rejected request.
	Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error)
	// Method Login authenticates a user and returns an access token.
	//
	// Returns services.ErrInvalidCredentials when the email or password is
	// wrong, without saying which.
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
	// Method GetProfile retrieves the authenticated user's account.
	GetProfile(ctx context.Context, userID int) (*models.User, error)
	// Method DeleteAccount removes the authenticated user after re-checking
	// the password. All owned decks, cards, schedules and review history go
	// with it.
	DeleteAccount(ctx context.Context, userID int, password string) error
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/me", h.Me)
			r.Delete("/me", h.DeleteAccount)
		})
	})
}

// Signup handles POST /auth/signup
// @Summary Register a new user
// @Description Register a new account with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup request"
// @Success 201 {object} models.User "Account created"
// @Failure 400 {object} map[string]string "Invalid email or password"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if !h.DecodeBody(w, r, &req) {
		return
	}

	user, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			h.RespondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrInvalidEmail), errors.Is(err, services.ErrInvalidPassword):
			h.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			h.Logger.Error("failed to sign up user", zap.Error(err))
			h.RespondError(w, http.StatusInternalServerError, "failed to sign up")
		}
		return
	}

	h.RespondJSON(w, http.StatusCreated, user)
}

// Login handles POST /auth/login
// @Summary Login
// @Description Authenticate with email and password, returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.TokenResponse "Access token"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.DecodeBody(w, r, &req) {
		return
	}

	token, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.RespondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.Logger.Error("failed to log in user", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	h.RespondJSON(w, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me handles GET /auth/me
// @Summary Current user
// @Description Get the authenticated user's account
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.User "Account"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	user, err := h.authService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.RespondError(w, http.StatusNotFound, "user not found")
			return
		}
		h.Logger.Error("failed to get profile", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get profile")
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// DeleteAccount handles DELETE /auth/me
// @Summary Delete account
// @Description Delete the authenticated user's account and all of its data after re-checking the password
// @Tags auth
// @Accept json
// @Security ApiKeyAuth
// @Param request body models.DeleteAccountRequest true "Password confirmation"
// @Success 204 "Account deleted"
// @Failure 401 {object} map[string]string "Unauthorized or wrong password"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/me [delete]
func (h *AuthHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	var req models.DeleteAccountRequest
	if !h.DecodeBody(w, r, &req) {
		return
	}

	if err := h.authService.DeleteAccount(r.Context(), userID, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			h.RespondError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, repositories.ErrNotFound):
			h.RespondError(w, http.StatusNotFound, "user not found")
		default:
			h.Logger.Error("failed to delete account", zap.Error(err))
			h.RespondError(w, http.StatusInternalServerError, "failed to delete account")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
