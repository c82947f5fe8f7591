package tasks

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"classboard/internal/models"
	"classboard/internal/storage"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deliveredCall struct {
	Recipient string
	Message   string
	ClassID   uint
}

// fakeDelivery records calls and fails on demand per class title.
type fakeDelivery struct {
	mu      sync.Mutex
	calls   []deliveredCall
	failFor map[string]error
}

func (f *fakeDelivery) Deliver(ctx context.Context, recipient, message string, class models.ClassSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[class.Title]; ok {
		return err
	}
	f.calls = append(f.calls, deliveredCall{Recipient: recipient, Message: message, ClassID: class.ID})
	return nil
}

func (f *fakeDelivery) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func setupScheduler(t *testing.T, now time.Time) (*Scheduler, *fakeDelivery) {
	t.Helper()

	if os.Getenv("ENV_CHEK") == "" {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Println("No .env file, relying on the environment")
		}
	}

	storage.ConnectTestingDatabase()
	require.NoError(t, storage.DB.AutoMigrate(&models.ClassSession{}))
	storage.DB.Exec("TRUNCATE TABLE class_sessions RESTART IDENTITY CASCADE;")

	delivery := &fakeDelivery{failFor: map[string]error{}}
	s := New(storage.DB, delivery, "+94771234567")
	s.Now = func() time.Time { return now }
	return s, delivery
}

func seedClass(t *testing.T, title string, start time.Time) models.ClassSession {
	t.Helper()
	cls := models.ClassSession{
		Title:     title,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Location:  "Hall A",
		Day:       "Monday",
		Type:      "Theory",
		Category:  "EXTERNAL",
	}
	require.NoError(t, storage.DB.Create(&cls).Error)
	return cls
}

func latchOf(t *testing.T, id uint) bool {
	t.Helper()
	var cls models.ClassSession
	require.NoError(t, storage.DB.First(&cls, id).Error)
	return cls.NotificationSent
}

func TestSweepMatchesOnlyTheReminderWindow(t *testing.T) {
	now := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.Local)
	s, delivery := setupScheduler(t, now)

	before := seedClass(t, "Too soon", now.Add(28*time.Minute))
	lowEdge := seedClass(t, "Low edge", now.Add(29*time.Minute))
	center := seedClass(t, "Center", now.Add(30*time.Minute))
	highEdge := seedClass(t, "High edge", now.Add(31*time.Minute))
	after := seedClass(t, "Too late", now.Add(32*time.Minute))

	s.Sweep()

	assert.Equal(t, 2, delivery.count())
	assert.False(t, latchOf(t, before.ID))
	assert.True(t, latchOf(t, lowEdge.ID), "29 minutes out is inside the window")
	assert.True(t, latchOf(t, center.ID))
	assert.False(t, latchOf(t, highEdge.ID), "31 minutes out is already past the window")
	assert.False(t, latchOf(t, after.ID))
}

func TestSweepWindowAdvancesWithTheClock(t *testing.T) {
	nineTwentyNine := time.Date(2025, time.September, 1, 9, 29, 0, 0, time.Local)
	s, delivery := setupScheduler(t, nineTwentyNine)

	cls := seedClass(t, "Maths", time.Date(2025, time.September, 1, 10, 0, 0, 0, time.Local))

	// 31 minutes away: not matched yet.
	s.Sweep()
	assert.Equal(t, 0, delivery.count())
	assert.False(t, latchOf(t, cls.ID))

	// 29.5 minutes away: matched and notified.
	s.Now = func() time.Time {
		return time.Date(2025, time.September, 1, 9, 30, 30, 0, time.Local)
	}
	s.Sweep()
	assert.Equal(t, 1, delivery.count())
	assert.True(t, latchOf(t, cls.ID))
}

func TestSweepIsIdempotentAtTheSameInstant(t *testing.T) {
	now := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.Local)
	s, delivery := setupScheduler(t, now)

	cls := seedClass(t, "Maths", now.Add(30*time.Minute))

	s.Sweep()
	s.Sweep()

	assert.Equal(t, 1, delivery.count(), "second sweep finds the latch already set")
	assert.True(t, latchOf(t, cls.ID))
}

func TestSweepSkipsEntirelyWithoutRecipient(t *testing.T) {
	now := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.Local)
	s, delivery := setupScheduler(t, now)
	s.Recipient = ""

	cls := seedClass(t, "Maths", now.Add(30*time.Minute))

	s.Sweep()

	assert.Equal(t, 0, delivery.count())
	assert.False(t, latchOf(t, cls.ID), "skipped sweeps must not mutate anything")
}

func TestSweepDeliveryFailureLeavesClassPending(t *testing.T) {
	now := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.Local)
	s, delivery := setupScheduler(t, now)

	cls := seedClass(t, "Maths", now.Add(30*time.Minute))
	delivery.failFor["Maths"] = errors.New("channel down")

	s.Sweep()
	assert.Equal(t, 0, delivery.count())
	assert.False(t, latchOf(t, cls.ID), "failed delivery does not set the latch")

	// Channel recovers while the class is still in the window.
	delete(delivery.failFor, "Maths")
	s.Sweep()
	assert.Equal(t, 1, delivery.count())
	assert.True(t, latchOf(t, cls.ID))
}

func TestSweepIsolatesPerClassFailures(t *testing.T) {
	now := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.Local)
	s, delivery := setupScheduler(t, now)

	failing := seedClass(t, "Failing", now.Add(29*time.Minute))
	healthy := seedClass(t, "Healthy", now.Add(30*time.Minute))
	delivery.failFor["Failing"] = errors.New("channel down")

	s.Sweep()

	assert.Equal(t, 1, delivery.count(), "one failure must not abort the rest")
	assert.False(t, latchOf(t, failing.ID))
	assert.True(t, latchOf(t, healthy.ID))
}

func TestSweepInvalidatesCacheOnlyForLatchedClasses(t *testing.T) {
	now := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.Local)
	s, delivery := setupScheduler(t, now)

	invalidations := 0
	s.InvalidateCache = func() { invalidations++ }

	failing := seedClass(t, "Failing", now.Add(29*time.Minute))
	healthy := seedClass(t, "Healthy", now.Add(30*time.Minute))
	delivery.failFor["Failing"] = errors.New("channel down")

	s.Sweep()

	// The latch update changes what list reads should return, so each
	// successful latch drops the cached list; a failed delivery must not.
	assert.Equal(t, 1, invalidations)
	assert.False(t, latchOf(t, failing.ID))
	assert.True(t, latchOf(t, healthy.ID))

	// A sweep that skips for lack of a recipient touches nothing.
	s.Recipient = ""
	seedClass(t, "Skipped", now.Add(30*time.Minute))
	s.Sweep()
	assert.Equal(t, 1, invalidations)
}

func TestSweepMessageContents(t *testing.T) {
	now := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.Local)
	s, delivery := setupScheduler(t, now)

	start := now.Add(30 * time.Minute)
	seedClass(t, "Science - Grade 10", start)

	s.Sweep()

	require.Equal(t, 1, delivery.count())
	msg := delivery.calls[0].Message
	assert.Contains(t, msg, "Science - Grade 10")
	assert.Contains(t, msg, "Theory")
	assert.Contains(t, msg, start.Local().Format("15:04"))
	assert.Contains(t, msg, "Hall A")
	assert.Equal(t, "+94771234567", delivery.calls[0].Recipient)
}
