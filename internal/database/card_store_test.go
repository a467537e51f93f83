package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vocabsrs/pkg/models"
)

func connectTestDB(t *testing.T) {
	t.Helper()
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DATABASE_PATH", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, Connect())
	t.Cleanup(func() { Close() })
}

func TestCardStoreRoundTrip(t *testing.T) {
	connectTestDB(t)
	store := NewCardStore()

	// First run: nothing persisted yet
	_, found, err := store.Load()
	require.NoError(t, err)
	assert.False(t, found)

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	reviewed := now.Add(-time.Hour)

	state := models.NewDeckState()
	state.CompletedToday = 2
	state.Streak = 7
	state.LastResetDate = &now
	state.Cards["card-1"] = models.Card{
		ID:             "card-1",
		Word:           "hello",
		Meaning:        "a greeting",
		Translation:    "नमस्ते",
		EaseFactor:     2.36,
		Interval:       6,
		Repetitions:    2,
		NextReviewDate: now.AddDate(0, 0, 6),
		LastReviewDate: &reviewed,
	}
	state.Cards["card-2"] = models.Card{
		ID:             "card-2",
		Word:           "water",
		Meaning:        "the clear liquid we drink",
		Translation:    "पानी",
		EaseFactor:     2.5,
		NextReviewDate: now,
	}

	require.NoError(t, store.Save(state))

	loaded, found, err := store.Load()
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, 2, loaded.CompletedToday)
	assert.Equal(t, 7, loaded.Streak)
	require.NotNil(t, loaded.LastResetDate)
	assert.True(t, loaded.LastResetDate.Equal(now))

	require.Len(t, loaded.Cards, 2)
	c1 := loaded.Cards["card-1"]
	assert.Equal(t, "hello", c1.Word)
	assert.InDelta(t, 2.36, c1.EaseFactor, 1e-9)
	assert.Equal(t, 6, c1.Interval)
	assert.Equal(t, 2, c1.Repetitions)
	assert.True(t, c1.NextReviewDate.Equal(now.AddDate(0, 0, 6)))
	require.NotNil(t, c1.LastReviewDate)
	assert.True(t, c1.LastReviewDate.Equal(reviewed))

	c2 := loaded.Cards["card-2"]
	assert.Nil(t, c2.LastReviewDate)
	assert.Equal(t, 0, c2.Repetitions)
}

func TestCardStoreSaveReplacesCards(t *testing.T) {
	connectTestDB(t)
	store := NewCardStore()

	now := time.Now().UTC()
	state := models.NewDeckState()
	state.Cards["a"] = models.Card{ID: "a", Word: "one", Meaning: "1", EaseFactor: 2.5, NextReviewDate: now}
	state.Cards["b"] = models.Card{ID: "b", Word: "two", Meaning: "2", EaseFactor: 2.5, NextReviewDate: now}
	require.NoError(t, store.Save(state))

	// Removing a card from the state removes it from the store on next save
	delete(state.Cards, "b")
	require.NoError(t, store.Save(state))

	loaded, found, err := store.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, loaded.Cards, 1)
	assert.Contains(t, loaded.Cards, "a")
}
