// Package scheduler runs the time-driven jobs around the deck: the daily
// counter rollover at local midnight and periodic review reminders.
package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/vocabsrs/pkg/models"
)

// Default window for sending reminders
const (
	DefaultNotificationStartHour = 8
	DefaultNotificationEndHour   = 22
)

// Deck is the serialized view of the scheduler state the jobs operate on.
type Deck interface {
	DueCards(now time.Time) []models.Card
	ResetDaily(now time.Time) error
	LastResetDate() *time.Time
}

// Notifier interface for sending review reminders
type Notifier interface {
	SendReminder(dueCount int) error
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	deck      Deck
	notifier  Notifier
}

// New creates a new scheduler instance. notifier may be nil, in which case
// reminders are disabled.
func New(deck Deck, notifier Notifier) *Scheduler {
	s := gocron.NewScheduler(time.Local)
	return &Scheduler{
		scheduler: s,
		deck:      deck,
		notifier:  notifier,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Roll over the daily counters right after local midnight
	s.scheduler.Every(1).Day().At("00:00").Do(s.runDailyReset)

	if s.notifier != nil {
		s.scheduler.Every(1).Hour().Do(s.checkAndSendReminder)
	}

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// CatchUpReset performs the rollover missed while the process was down. Safe
// to call at startup: it is a no-op when the deck was already reset today or
// has never been reset at all.
func (s *Scheduler) CatchUpReset() {
	last := s.deck.LastResetDate()
	if last == nil || sameDay(*last, time.Now()) {
		return
	}
	s.runDailyReset()
}

// runDailyReset invokes the deck rollover, guarding against running twice in
// one day. ResetDaily is not idempotent: a second call on the same day would
// zero the streak.
func (s *Scheduler) runDailyReset() {
	now := time.Now()
	if last := s.deck.LastResetDate(); last != nil && sameDay(*last, now) {
		log.Printf("Daily reset already ran today, skipping")
		return
	}
	if err := s.deck.ResetDaily(now); err != nil {
		log.Printf("Error during daily reset: %v", err)
		return
	}
	log.Printf("Daily counters rolled over")
}

// checkAndSendReminder sends a reminder when words are due and the current
// hour is inside the notification window
func (s *Scheduler) checkAndSendReminder() {
	currentHour := time.Now().Hour()

	startHour := DefaultNotificationStartHour
	endHour := DefaultNotificationEndHour

	if startHourStr := os.Getenv("NOTIFICATION_START_HOUR"); startHourStr != "" {
		if h, err := strconv.Atoi(startHourStr); err == nil && h >= 0 && h <= 23 {
			startHour = h
		}
	}
	if endHourStr := os.Getenv("NOTIFICATION_END_HOUR"); endHourStr != "" {
		if h, err := strconv.Atoi(endHourStr); err == nil && h >= 0 && h <= 23 {
			endHour = h
		}
	}

	if currentHour < startHour || currentHour > endHour {
		return
	}

	due := s.deck.DueCards(time.Now())
	if len(due) == 0 {
		return
	}

	if err := s.notifier.SendReminder(len(due)); err != nil {
		log.Printf("Error sending reminder: %v", err)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
