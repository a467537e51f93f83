// Package deck owns the in-memory scheduler state: the card collection plus
// the daily counters. All mutations go through it; persistence is an injected
// Store and is best-effort relative to the in-memory update.
//
// A Deck is not safe for concurrent use. Hosts serving multiple requests must
// serialize Review/AddWord/ResetDaily calls (see internal/api).
package deck

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/example/vocabsrs/internal/srs"
	"github.com/example/vocabsrs/pkg/models"
)

var (
	// ErrCardNotFound is returned when a review targets an id that is not in
	// the deck, e.g. a stale UI reference.
	ErrCardNotFound = errors.New("deck: card not found")
	// ErrPersistence wraps a failed store write. The in-memory update has
	// already been applied and is not rolled back; callers should treat this
	// as a warning and may retry the save.
	ErrPersistence = errors.New("deck: failed to persist state")
	// ErrIDCollision is returned when id generation collides twice in a row,
	// which indicates a broken generator rather than bad luck.
	ErrIDCollision = errors.New("deck: card id collision")
)

// Store is the durable mirror of the deck state.
type Store interface {
	// Load returns the persisted state, or found=false on first run.
	Load() (state *models.DeckState, found bool, err error)
	// Save writes the full state. Failures are reported, not retried.
	Save(state *models.DeckState) error
}

// Deck is the single serialization point for one learner's scheduler state.
type Deck struct {
	state *models.DeckState
	store Store
	newID func() string
}

// Load restores a deck from the store, seeding it with the given vocabulary
// entries when no persisted state exists yet.
func Load(store Store, seed []models.VocabEntry, now time.Time) (*Deck, error) {
	state, found, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading deck state: %w", err)
	}

	d := &Deck{store: store, newID: uuid.NewString}
	if found {
		if state.Cards == nil {
			state.Cards = make(map[string]models.Card)
		}
		d.state = state
		return d, nil
	}

	d.state = models.NewDeckState()
	for _, entry := range seed {
		if _, err := d.AddWord(entry.Word, entry.Meaning, entry.Translation, now); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// DueCards returns every card whose next review date has passed, sorted by
// next review date ascending (most overdue first). The result is recomputed
// on every call.
func (d *Deck) DueCards(now time.Time) []models.Card {
	var due []models.Card
	for _, c := range d.state.Cards {
		if c.Due(now) {
			due = append(due, c)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].NextReviewDate.Equal(due[j].NextReviewDate) {
			return due[i].NextReviewDate.Before(due[j].NextReviewDate)
		}
		return due[i].ID < due[j].ID
	})
	return due
}

// Review applies a quality rating to one card, bumps the daily counter and
// saves the state. A persistence failure is returned wrapped in
// ErrPersistence together with the already-updated card.
func (d *Deck) Review(cardID string, quality srs.Quality, now time.Time) (models.Card, error) {
	card, ok := d.state.Cards[cardID]
	if !ok {
		return models.Card{}, fmt.Errorf("%w: %q", ErrCardNotFound, cardID)
	}

	updated, err := srs.Review(card, quality, now)
	if err != nil {
		return models.Card{}, err
	}

	d.state.Cards[cardID] = updated
	d.state.CompletedToday++

	return updated, d.save()
}

// AddWord creates a card for a new vocabulary word and saves the state. The
// id is regenerated once if it collides with an existing card.
func (d *Deck) AddWord(word, meaning, translation string, now time.Time) (models.Card, error) {
	id := d.newID()
	if _, exists := d.state.Cards[id]; exists {
		id = d.newID()
		if _, exists := d.state.Cards[id]; exists {
			return models.Card{}, ErrIDCollision
		}
	}

	entry := models.VocabEntry{Word: word, Meaning: meaning, Translation: translation}
	card := srs.NewCard(id, entry, now)
	d.state.Cards[id] = card

	return card, d.save()
}

// ContainsWord reports whether a card for the given word already exists.
// Used by importers to skip duplicates.
func (d *Deck) ContainsWord(word string) bool {
	for _, c := range d.state.Cards {
		if c.Word == word {
			return true
		}
	}
	return false
}

// Stats derives the dashboard counters. Read-only; mastered, learning and new
// partition the full card set.
func (d *Deck) Stats(now time.Time) models.Stats {
	stats := models.Stats{
		Total:          len(d.state.Cards),
		CompletedToday: d.state.CompletedToday,
		Streak:         d.state.Streak,
	}
	for _, c := range d.state.Cards {
		if c.Due(now) {
			stats.Due++
		}
		switch {
		case srs.Mastered(c):
			stats.Mastered++
		case c.Repetitions > 0:
			stats.Learning++
		default:
			stats.New++
		}
	}
	return stats
}

// ResetDaily rolls over the daily counters: a day with at least one completed
// review extends the streak, a day without one breaks it. Not idempotent -
// callers must invoke it at most once per day boundary (LastResetDate is
// recorded for exactly that guard).
func (d *Deck) ResetDaily(now time.Time) error {
	if d.state.CompletedToday > 0 {
		d.state.Streak++
	} else {
		d.state.Streak = 0
	}
	d.state.CompletedToday = 0
	reset := now
	d.state.LastResetDate = &reset

	return d.save()
}

// LastResetDate returns the time of the most recent daily rollover, or nil if
// none has happened yet.
func (d *Deck) LastResetDate() *time.Time {
	return d.state.LastResetDate
}

// Flush writes the current state to the store.
func (d *Deck) Flush() error {
	return d.save()
}

func (d *Deck) save() error {
	if err := d.store.Save(d.state); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}
