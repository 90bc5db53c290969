package worker

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"tutor-service/internal/event"
	"tutor-service/internal/repository"

	"github.com/go-co-op/gocron"
)

// Default window within which reminder events are published.
const (
	DefaultReminderStartHour = 8
	DefaultReminderEndHour   = 22
)

// ReminderWorker periodically looks for users with overdue reviews and
// publishes a reminder event per user. It only reads the schedule the
// core computed; it never advances any review state itself.
type ReminderWorker struct {
	scheduler *gocron.Scheduler
	analytics *repository.AnalyticsRepository
	publisher *event.EventPublisher
}

func NewReminderWorker(analytics *repository.AnalyticsRepository, publisher *event.EventPublisher) *ReminderWorker {
	return &ReminderWorker{
		scheduler: gocron.NewScheduler(time.UTC),
		analytics: analytics,
		publisher: publisher,
	}
}

// Start schedules the hourly sweep and returns immediately.
func (w *ReminderWorker) Start() {
	w.scheduler.Every(1).Hour().Do(w.sweep)
	w.scheduler.StartAsync()
}

func (w *ReminderWorker) Stop() {
	w.scheduler.Stop()
}

func (w *ReminderWorker) sweep() {
	currentHour := time.Now().UTC().Hour()
	startHour, endHour := reminderWindow()
	if currentHour < startHour || currentHour > endHour {
		log.Printf("hour %d outside reminder window (%d-%d), skipping sweep", currentHour, startHour, endHour)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now().UTC()
	users, err := w.analytics.DueUserIDs(ctx, now)
	if err != nil {
		log.Printf("reminder sweep failed: %v", err)
		return
	}

	for _, userID := range users {
		due, err := w.analytics.FindDue(ctx, userID, now)
		if err != nil {
			log.Printf("could not load due reviews for user %s: %v", userID, err)
			continue
		}
		if len(due) == 0 {
			continue
		}
		if w.publisher != nil {
			w.publisher.Publish(event.ReviewReminder, map[string]interface{}{
				"user_id":   userID,
				"due_count": len(due),
				"as_of":     now,
			})
		}
	}
}

func reminderWindow() (int, int) {
	start := DefaultReminderStartHour
	end := DefaultReminderEndHour
	if raw := os.Getenv("REMINDER_START_HOUR"); raw != "" {
		if h, err := strconv.Atoi(raw); err == nil && h >= 0 && h <= 23 {
			start = h
		}
	}
	if raw := os.Getenv("REMINDER_END_HOUR"); raw != "" {
		if h, err := strconv.Atoi(raw); err == nil && h >= 0 && h <= 23 {
			end = h
		}
	}
	return start, end
}
