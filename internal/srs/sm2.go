// Package srs implements the SuperMemo-2 spaced-repetition algorithm used to
// schedule vocabulary reviews.
package srs

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/example/vocabsrs/pkg/models"
)

// ErrInvalidQuality is returned when a quality rating is outside 0..5.
// Use errors.Is to check.
var ErrInvalidQuality = errors.New("srs: quality rating out of range")

const (
	// InitialEaseFactor is the EF assigned to a freshly created card.
	InitialEaseFactor = 2.5
	// MinEaseFactor is the hard floor for EF; a card never gets harder to
	// schedule than this.
	MinEaseFactor = 1.3
	// PassThreshold is the lowest quality counted as a successful recall.
	PassThreshold = 3
)

// Quality is the learner's 0-5 self-rating of a recall attempt.
type Quality int

const (
	// QualityBlackout - complete blackout, unable to recall
	QualityBlackout Quality = 0
	// QualityIncorrect - incorrect response but remembered upon seeing the answer
	QualityIncorrect Quality = 1
	// QualityIncorrectFamiliar - incorrect response but the answer felt familiar
	QualityIncorrectFamiliar Quality = 2
	// QualityCorrectDifficult - correct response requiring significant effort
	QualityCorrectDifficult Quality = 3
	// QualityCorrectHesitation - correct response after some hesitation
	QualityCorrectHesitation Quality = 4
	// QualityPerfect - perfect response with no hesitation
	QualityPerfect Quality = 5
)

// Valid reports whether q is inside the 0..5 rating scale.
func (q Quality) Valid() bool {
	return q >= QualityBlackout && q <= QualityPerfect
}

// Passing reports whether q counts as a successful recall.
func (q Quality) Passing() bool {
	return q >= PassThreshold
}

// NewCard builds a fresh card for a vocabulary entry. The card starts with
// EF 2.5, interval 0 and no review history, and is due immediately so new
// words enter the queue right away.
func NewCard(id string, entry models.VocabEntry, now time.Time) models.Card {
	return models.Card{
		ID:             id,
		Word:           entry.Word,
		Meaning:        entry.Meaning,
		Translation:    entry.Translation,
		EaseFactor:     InitialEaseFactor,
		Interval:       0,
		Repetitions:    0,
		NextReviewDate: now,
	}
}

// Review applies one SM-2 review step and returns the updated card. The input
// card is never modified.
//
// On failure (quality < 3) the repetition count and interval reset to 0 and 1.
// On success the interval follows the 1 / 6 / round(interval * EF) ladder,
// where EF is the ease factor from before this review. The ease factor itself
// is then adjusted for the given quality in both cases and floored at 1.3.
// Intervals are rounded half away from zero.
func Review(card models.Card, quality Quality, now time.Time) (models.Card, error) {
	if !quality.Valid() {
		return models.Card{}, fmt.Errorf("%w: %d", ErrInvalidQuality, quality)
	}

	if quality.Passing() {
		switch card.Repetitions {
		case 0:
			card.Interval = 1
		case 1:
			card.Interval = 6
		default:
			card.Interval = int(math.Round(float64(card.Interval) * card.EaseFactor))
		}
		card.Repetitions++
	} else {
		card.Repetitions = 0
		card.Interval = 1
	}

	q := float64(quality)
	ef := card.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ef < MinEaseFactor {
		ef = MinEaseFactor
	}
	card.EaseFactor = ef

	reviewed := now
	card.LastReviewDate = &reviewed
	card.NextReviewDate = now.AddDate(0, 0, card.Interval)

	return card, nil
}

// Mastered reports whether a card counts as mastered for statistics purposes.
func Mastered(card models.Card) bool {
	return card.Repetitions >= 5
}
