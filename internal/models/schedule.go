package models

import "time"

// CardSchedule represents the scheduling state of a learned card
//
// Exactly one schedule exists while and only while the card is learned.
// DeckID duplicates the card's deck for the due-card index and is kept in
// sync transactionally.
type CardSchedule struct {
	ID              int        `json:"id"`
	CardID          int        `json:"cardId"`
	DeckID          int        `json:"deckId"`
	RepetitionCount int        `json:"repetitionCount"`
	IntervalDays    int        `json:"intervalDays"`
	EaseFactor      float64    `json:"easeFactor"`
	NextReviewAt    time.Time  `json:"nextReviewAt"`
	LastReviewedAt  *time.Time `json:"lastReviewedAt"`
}
