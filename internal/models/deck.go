package models

// Deck represents a collection of cards owned by a single user
type Deck struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	UserID int    `json:"userId"`
}

// DeckCreateRequest represents the deck creation request body
type DeckCreateRequest struct {
	Name string `json:"name"`
}
