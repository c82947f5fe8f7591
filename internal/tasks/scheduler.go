package tasks

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"classboard/internal/models"
	"classboard/internal/notify"
	"classboard/internal/storage"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// EventSink receives reminder events for live clients. Satisfied by ws.Hub.
type EventSink interface {
	BroadcastEvent(event string, data map[string]interface{})
}

// Scheduler sweeps the class table once per minute for classes entering the
// reminder window and sends one reminder per class. The persisted
// notification_sent latch, not anything in memory, decides eligibility, so an
// overlapping slow sweep cannot double-deliver a latched class.
type Scheduler struct {
	DB        *gorm.DB
	Delivery  notify.Delivery
	Recipient string

	// Lead is how long before class start the reminder fires; Tol is half the
	// window width. Defaults give the window [now+29m, now+31m).
	Lead            time.Duration
	Tol             time.Duration
	DeliveryTimeout time.Duration

	// Now is the clock; overridden in tests.
	Now func() time.Time

	// InvalidateCache drops the cached class list after a latch update, so
	// list reads reflect notificationSent without waiting out the TTL.
	InvalidateCache func()

	Events EventSink

	cron *cron.Cron
}

func New(db *gorm.DB, delivery notify.Delivery, recipient string) *Scheduler {
	return &Scheduler{
		DB:              db,
		Delivery:        delivery,
		Recipient:       recipient,
		Lead:            30 * time.Minute,
		Tol:             time.Minute,
		DeliveryTimeout: 10 * time.Second,
		Now:             time.Now,
		InvalidateCache: storage.InvalidateClassCache,
	}
}

// FromEnv builds the scheduler the way main wires it: delivery channel from
// NOTIFICATION_METHOD, recipient from ADMIN_PHONE. Returns nil when
// SCHEDULER_ENABLED=false.
func FromEnv(db *gorm.DB, events EventSink) *Scheduler {
	if os.Getenv("SCHEDULER_ENABLED") == "false" {
		log.Println("Notification scheduler disabled (SCHEDULER_ENABLED=false)")
		return nil
	}
	s := New(db, notify.FromEnv(), os.Getenv("ADMIN_PHONE"))
	s.Events = events
	return s
}

// Start registers the per-minute sweep and starts the cron loop.
func (s *Scheduler) Start() error {
	s.cron = cron.New(cron.WithSeconds())
	if _, err := s.cron.AddFunc("0 * * * * *", s.Sweep); err != nil {
		return err
	}
	s.cron.Start()
	log.Println("Notification scheduler started, checking every minute for upcoming classes")
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Sweep runs one scan-and-notify pass at the current clock reading.
//
// A class is matched when its start falls in [now+Lead-Tol, now+Lead+Tol) and
// its latch is unset. The latch is persisted only after Deliver returns nil;
// a delivery error leaves the class pending for the next sweep still inside
// the window. One class's failure never aborts the rest of the pass.
func (s *Scheduler) Sweep() {
	now := s.Now()
	low := now.Add(s.Lead - s.Tol)
	high := now.Add(s.Lead + s.Tol)

	var pending []models.ClassSession
	err := s.DB.
		Where("notification_sent = ? AND start_time >= ? AND start_time < ?", false, low, high).
		Find(&pending).Error
	if err != nil {
		log.Println("Reminder sweep query failed:", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	if s.Recipient == "" {
		log.Println("ADMIN_PHONE not configured, skipping", len(pending), "reminder(s)")
		return
	}

	for _, cls := range pending {
		message := fmt.Sprintf("Class Reminder: %s (%s) at %s in %s - starts in ~%d minutes.",
			cls.Title, cls.Type, cls.StartTime.Local().Format("15:04"), cls.Location, int(s.Lead.Minutes()))

		ctx, cancel := context.WithTimeout(context.Background(), s.DeliveryTimeout)
		deliverErr := s.Delivery.Deliver(ctx, s.Recipient, message, cls)
		cancel()
		if deliverErr != nil {
			log.Printf("Reminder delivery failed for class %d (%s): %v", cls.ID, cls.Title, deliverErr)
			continue
		}

		if err := s.DB.Model(&models.ClassSession{}).
			Where("id = ?", cls.ID).
			Update("notification_sent", true).Error; err != nil {
			log.Printf("Failed to latch notification for class %d: %v", cls.ID, err)
			continue
		}

		if s.InvalidateCache != nil {
			s.InvalidateCache()
		}

		log.Printf("Reminder sent for class %d (%s) at %s", cls.ID, cls.Title, cls.StartTime.Local().Format("15:04"))
		if s.Events != nil {
			s.Events.BroadcastEvent("reminder_sent", map[string]interface{}{
				"class_id": cls.ID,
				"title":    cls.Title,
			})
		}
	}
}
