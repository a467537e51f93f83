package api

import (
	"sync"
	"time"

	"github.com/example/vocabsrs/internal/deck"
	"github.com/example/vocabsrs/internal/srs"
	"github.com/example/vocabsrs/pkg/models"
)

// Service is the single serialization point for deck access. The deck itself
// provides no locking, so every caller (HTTP handlers, cron jobs) goes
// through this mutex.
type Service struct {
	mu   sync.Mutex
	deck *deck.Deck
}

// NewService wraps a deck for concurrent callers.
func NewService(d *deck.Deck) *Service {
	return &Service{deck: d}
}

// DueCards returns the cards currently due for review.
func (s *Service) DueCards(now time.Time) []models.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.DueCards(now)
}

// Review applies a quality rating to a card.
func (s *Service) Review(cardID string, quality srs.Quality, now time.Time) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Review(cardID, quality, now)
}

// AddWord admits a new vocabulary word into the deck.
func (s *Service) AddWord(word, meaning, translation string, now time.Time) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.AddWord(word, meaning, translation, now)
}

// Stats returns the dashboard counters.
func (s *Service) Stats(now time.Time) models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Stats(now)
}

// ResetDaily rolls over the daily counters.
func (s *Service) ResetDaily(now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.ResetDaily(now)
}

// LastResetDate returns the time of the most recent daily rollover.
func (s *Service) LastResetDate() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.LastResetDate()
}

// Flush persists the current state.
func (s *Service) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Flush()
}
