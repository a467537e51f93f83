package database

import (
	"fmt"
	"time"

	"github.com/example/vocabsrs/pkg/models"
)

// CardStore persists the whole deck state. It implements deck.Store.
type CardStore struct{}

// NewCardStore creates a new store instance
func NewCardStore() *CardStore {
	return &CardStore{}
}

type deckStateRow struct {
	CompletedToday int        `db:"completed_today"`
	Streak         int        `db:"streak"`
	LastResetDate  *time.Time `db:"last_reset_date"`
}

// Load reads the persisted deck state. found is false on first run, before
// any state has been saved.
func (s *CardStore) Load() (*models.DeckState, bool, error) {
	var rows []deckStateRow
	err := DB.Select(&rows, "SELECT completed_today, streak, last_reset_date FROM deck_state WHERE id = 1")
	if err != nil {
		return nil, false, fmt.Errorf("failed to load deck state: %v", err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}

	var cards []models.Card
	err = DB.Select(&cards, `
		SELECT id, word, meaning, translation, ease_factor, interval, repetitions, next_review_date, last_review_date
		FROM cards
	`)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load cards: %v", err)
	}

	state := models.NewDeckState()
	state.CompletedToday = rows[0].CompletedToday
	state.Streak = rows[0].Streak
	state.LastResetDate = rows[0].LastResetDate
	for _, c := range cards {
		state.Cards[c.ID] = c
	}
	return state, true, nil
}

// Save writes the full deck state in one transaction, replacing the card set.
func (s *CardStore) Save(state *models.DeckState) error {
	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	query := tx.Rebind(`
		INSERT INTO deck_state (id, completed_today, streak, last_reset_date)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			completed_today = excluded.completed_today,
			streak = excluded.streak,
			last_reset_date = excluded.last_reset_date
	`)
	if _, err := tx.Exec(query, state.CompletedToday, state.Streak, state.LastResetDate); err != nil {
		return fmt.Errorf("failed to save deck state: %v", err)
	}

	if _, err := tx.Exec("DELETE FROM cards"); err != nil {
		return fmt.Errorf("failed to clear cards: %v", err)
	}

	insert := tx.Rebind(`
		INSERT INTO cards (id, word, meaning, translation, ease_factor, interval, repetitions, next_review_date, last_review_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	for _, c := range state.Cards {
		_, err := tx.Exec(insert,
			c.ID,
			c.Word,
			c.Meaning,
			c.Translation,
			c.EaseFactor,
			c.Interval,
			c.Repetitions,
			c.NextReviewDate,
			c.LastReviewDate,
		)
		if err != nil {
			return fmt.Errorf("failed to save card %s: %v", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %v", err)
	}
	return nil
}
