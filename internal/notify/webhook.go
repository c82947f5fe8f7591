package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"classboard/internal/models"
)

// WebhookDelivery POSTs reminders as JSON to a configured URL, typically a
// chat-bot bridge that forwards them to the admin's phone.
type WebhookDelivery struct {
	URL    string
	Client *http.Client
}

func NewWebhookDelivery(url string) *WebhookDelivery {
	return &WebhookDelivery{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

type webhookPayload struct {
	Recipient string    `json:"recipient"`
	Message   string    `json:"message"`
	ClassID   uint      `json:"class_id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	Location  string    `json:"location"`
}

func (w *WebhookDelivery) Deliver(ctx context.Context, recipient, message string, class models.ClassSession) error {
	if w.URL == "" {
		return fmt.Errorf("webhook delivery: WEBHOOK_URL not configured")
	}

	body, err := json.Marshal(webhookPayload{
		Recipient: recipient,
		Message:   message,
		ClassID:   class.ID,
		Title:     class.Title,
		StartTime: class.StartTime,
		Location:  class.Location,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook delivery: unexpected status %d", resp.StatusCode)
	}
	return nil
}
