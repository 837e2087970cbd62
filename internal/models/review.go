package models

import "time"

// ReviewHistory is one append-only ledger entry for an applied review
//
// Rows are never updated or deleted (deletion only cascades with the card).
// The before/after snapshot makes the schedule state reconstructible at any
// point by replaying entries in reviewed_at order.
type ReviewHistory struct {
	ID                int       `json:"id"`
	CardID            int       `json:"cardId"`
	ReviewedAt        time.Time `json:"reviewedAt"`
	Quality           int       `json:"quality"`
	RepetitionBefore  int       `json:"repetitionBefore"`
	IntervalBefore    int       `json:"intervalBefore"`
	EaseBefore        float64   `json:"easeBefore"`
	RepetitionAfter   int       `json:"repetitionAfter"`
	IntervalAfter     int       `json:"intervalAfter"`
	EaseAfter         float64   `json:"easeAfter"`
	NextReviewAtAfter time.Time `json:"nextReviewAtAfter"`
}
