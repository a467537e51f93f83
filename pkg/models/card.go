package models

import "time"

// VocabEntry is the learnable payload of a card: an English word with its
// meaning and Hindi translation. The scheduler carries it but never reads it.
type VocabEntry struct {
	Word        string `json:"word" db:"word"`
	Meaning     string `json:"meaning" db:"meaning"`
	Translation string `json:"translation" db:"translation"`
}

// Card is a single memorization unit together with its SM-2 scheduling state.
type Card struct {
	ID             string     `json:"id" db:"id"`
	Word           string     `json:"word" db:"word"`
	Meaning        string     `json:"meaning" db:"meaning"`
	Translation    string     `json:"translation" db:"translation"`
	EaseFactor     float64    `json:"easeFactor" db:"ease_factor"`         // SM-2 EF parameter, floor 1.3
	Interval       int        `json:"interval" db:"interval"`              // Days until next review
	Repetitions    int        `json:"repetitions" db:"repetitions"`        // Consecutive successful reviews
	NextReviewDate time.Time  `json:"nextReviewDate" db:"next_review_date"`
	LastReviewDate *time.Time `json:"lastReviewDate,omitempty" db:"last_review_date"` // nil until first review
}

// Due reports whether the card is eligible for review at the given time.
func (c Card) Due(now time.Time) bool {
	return !c.NextReviewDate.After(now)
}
