package notify

import (
	"context"
	"log"
	"os"

	"classboard/internal/models"
)

// Delivery carries one reminder to a recipient. A nil return means the
// delivery was attempted; any error is logged by the caller and the class
// is treated per the sweep's latch policy.
type Delivery interface {
	Deliver(ctx context.Context, recipient, message string, class models.ClassSession) error
}

// FromEnv picks the delivery channel from NOTIFICATION_METHOD
// (console is the default; webhook requires WEBHOOK_URL).
func FromEnv() Delivery {
	switch os.Getenv("NOTIFICATION_METHOD") {
	case "webhook":
		return NewWebhookDelivery(os.Getenv("WEBHOOK_URL"))
	case "console", "":
		return ConsoleDelivery{}
	default:
		log.Println("Unknown NOTIFICATION_METHOD, falling back to console")
		return ConsoleDelivery{}
	}
}

// ConsoleDelivery writes the reminder to the process log.
type ConsoleDelivery struct{}

func (ConsoleDelivery) Deliver(ctx context.Context, recipient, message string, class models.ClassSession) error {
	log.Printf("NOTIFICATION recipient=%s class_id=%d subject=%q time=%s location=%s message=%q",
		recipient, class.ID, class.Title, class.StartTime.Format("15:04"), class.Location, message)
	return nil
}
