package models

// Card represents a single flashcard inside a deck
//
// IsLearned is a denormalized flag mirroring the existence of the card's
// schedule row. It is flipped inside the same transaction that creates the
// schedule so the two can never disagree.
type Card struct {
	ID        int    `json:"id"`
	Front     string `json:"front"`
	Back      string `json:"back"`
	DeckID    int    `json:"deckId"`
	IsLearned bool   `json:"isLearned"`
}

// CardCreateRequest represents the card creation request body
type CardCreateRequest struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// CardUpdateRequest represents the partial card update request body
//
// Nil fields are left untouched. A request with both fields nil is rejected.
type CardUpdateRequest struct {
	Front *string `json:"front"`
	Back  *string `json:"back"`
}

// ReviewRequest represents the review request body
type ReviewRequest struct {
	Quality int `json:"quality"`
}
