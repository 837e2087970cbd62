package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/flashdeck/backend/internal/auth"
	"github.com/flashdeck/backend/internal/models"
	"github.com/flashdeck/backend/internal/repositories"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// "user" carries the email and password hash; the generated ID is written
	// back into it.
	Create(ctx context.Context, user *models.User) error
	// Method GetByEmail retrieves a user by email.
	//
	// Returns repositories.ErrNotFound if no such user exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method GetByID retrieves a user by ID.
	//
	// Returns repositories.ErrNotFound if no such user exists.
	GetByID(ctx context.Context, userID int) (*models.User, error)
	// Method ExistsByEmail checks if a user with such email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Method Delete removes a user and, by cascade, all decks, cards,
	// schedules and review history the user owns.
	Delete(ctx context.Context, userID int) error
}

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt input limit
)

type authService struct {
	userRepo       UserRepository
	tokenGenerator *auth.TokenGenerator
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokenGenerator *auth.TokenGenerator, logger *zap.Logger) *authService {
	return &authService{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// Signup creates a new user account
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < minPasswordLen || len(req.Password) > maxPasswordLen {
		return nil, ErrInvalidPassword
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.Int("userId", user.ID))

	return user, nil
}

// Login authenticates a user and returns an access token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// A missing user and a bad password get the same answer.
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.GenerateAccessToken(user.ID)
	if err != nil {
		s.logger.Error("failed to generate access token", zap.Error(err), zap.Int("userId", user.ID))
		return "", err
	}

	return token, nil
}

// GetProfile retrieves the authenticated user's account
func (s *authService) GetProfile(ctx context.Context, userID int) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// DeleteAccount removes the authenticated user after re-checking the password
func (s *authService) DeleteAccount(ctx context.Context, userID int, password string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	s.logger.Info("user account deleted", zap.Int("userId", userID))

	return nil
}
