package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/vocabsrs/internal/deck"
	"github.com/example/vocabsrs/pkg/models"
)

type memStore struct {
	failSave bool
}

func (m *memStore) Load() (*models.DeckState, bool, error) { return nil, false, nil }

func (m *memStore) Save(state *models.DeckState) error {
	if m.failSave {
		return fmt.Errorf("disk full")
	}
	return nil
}

func newTestServer(t *testing.T) (*Server, *memStore) {
	t.Helper()
	store := &memStore{}
	seed := []models.VocabEntry{
		{Word: "hello", Meaning: "a greeting", Translation: "नमस्ते"},
		{Word: "water", Meaning: "the clear liquid we drink", Translation: "पानी"},
	}
	d, err := deck.Load(store, seed, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return NewServer(NewService(d)), store
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echoContentType, "application/json")
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

const echoContentType = "Content-Type"

func TestHandleDue(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/api/vocabulary/due", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cards []models.Card
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	assert.Len(t, cards, 2)
}

func TestHandleReview(t *testing.T) {
	s, _ := newTestServer(t)

	due := s.service.DueCards(time.Now())
	require.NotEmpty(t, due)

	body := fmt.Sprintf(`{"vocabularyId":%q,"quality":4}`, due[0].ID)
	rec := doRequest(s, http.MethodPost, "/api/vocabulary/review", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp reviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, due[0].ID, resp.Card.ID)
	assert.Equal(t, 1, resp.Card.Repetitions)
	assert.Empty(t, resp.Warning)

	assert.Equal(t, 1, s.service.Stats(time.Now()).CompletedToday)
}

func TestHandleReviewInvalidQuality(t *testing.T) {
	s, _ := newTestServer(t)

	due := s.service.DueCards(time.Now())
	body := fmt.Sprintf(`{"vocabularyId":%q,"quality":7}`, due[0].ID)
	rec := doRequest(s, http.MethodPost, "/api/vocabulary/review", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleReviewUnknownCard(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, http.MethodPost, "/api/vocabulary/review", `{"vocabularyId":"nope","quality":4}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleReviewPersistenceWarning(t *testing.T) {
	s, store := newTestServer(t)
	store.failSave = true

	due := s.service.DueCards(time.Now())
	body := fmt.Sprintf(`{"vocabularyId":%q,"quality":4}`, due[0].ID)
	rec := doRequest(s, http.MethodPost, "/api/vocabulary/review", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp reviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Card.Repetitions)
	assert.NotEmpty(t, resp.Warning)
}

func TestHandleAddWord(t *testing.T) {
	s, _ := newTestServer(t)

	body := `{"word":"book","meaning":"pages bound together","translation":"किताब"}`
	rec := doRequest(s, http.MethodPost, "/api/vocabulary", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var card models.Card
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
	assert.Equal(t, "book", card.Word)
	assert.NotEmpty(t, card.ID)

	// The new word is immediately due
	due := s.service.DueCards(time.Now())
	assert.Len(t, due, 3)
}

func TestHandleAddWordMissingFields(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, http.MethodPost, "/api/vocabulary", `{"word":"book"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleStats(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/api/vocabulary/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats models.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.New)
	assert.Equal(t, stats.Total, stats.Mastered+stats.Learning+stats.New)
}
