package models

// User represents a registered account
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// SignupRequest represents the signup request body
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DeleteAccountRequest represents the account deletion request body
//
// The password is re-checked before the account and all of its decks,
// cards, schedules and review history are removed.
type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// TokenResponse represents the login response body
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
