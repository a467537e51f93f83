package models

import "time"

// DeckState is the full scheduler state for one learner's deck: the card
// collection plus the session counters rolled over once per day.
type DeckState struct {
	Cards          map[string]Card `json:"cards"`
	CompletedToday int             `json:"completedToday"`
	Streak         int             `json:"streak"`
	LastResetDate  *time.Time      `json:"lastResetDate,omitempty"` // nil until the first daily rollover
}

// NewDeckState returns an empty state with an initialized card map.
func NewDeckState() *DeckState {
	return &DeckState{Cards: make(map[string]Card)}
}
