package ws

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Slow clients (full Send buffers) are evicted inside the broadcast loop while
// other goroutines call BroadcastEvent; both sides touch the client map, so
// this exercises the hub's locking under the race detector.
func TestBroadcastEvictsSlowClientsSafely(t *testing.T) {
	h := NewHub()
	go h.Run()

	// Zero-buffer Send channels with no writePump draining them: every
	// broadcast hits the eviction path.
	for i := 0; i < 64; i++ {
		h.register <- &Client{Hub: h, Send: make(chan []byte)}
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				h.BroadcastEvent("class_updated", map[string]interface{}{"n": j})
			}
		}()
	}
	wg.Wait()

	h.mu.RLock()
	remaining := len(h.clients)
	h.mu.RUnlock()
	assert.Equal(t, 0, remaining, "clients that never drain Send are evicted")
}

func TestBroadcastEventWithoutClientsIsNoop(t *testing.T) {
	h := NewHub()
	// Run is intentionally not started: with no clients registered the event
	// must be dropped instead of blocking the caller.
	h.BroadcastEvent("reminder_sent", map[string]interface{}{"class_id": 1})
}
