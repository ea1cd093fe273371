package events

import (
	"log"
	"sync"

	"upilinker/internal/application/dto"
	portsout "upilinker/internal/application/ports/out"
)

const subscriberBufferSize = 16

// Hub is an in-process broker fanning payment request events out to dashboard
// subscribers. Subscriptions are keyed by owner so one user's events never
// reach another's stream.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string]map[int]chan dto.PaymentRequestEvent
	nextID      int
	logger      *log.Logger
}

var _ portsout.PaymentRequestEventBroker = (*Hub)(nil)

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string]map[int]chan dto.PaymentRequestEvent),
		logger:      logger,
	}
}

func (h *Hub) Publish(event dto.PaymentRequestEvent) {
	if event.OwnerID == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for id, subscriber := range h.subscribers[event.OwnerID] {
		select {
		case subscriber <- event:
		default:
			// A stalled consumer drops events rather than blocking writers.
			if h.logger != nil {
				h.logger.Printf("event dropped owner=%s subscriber=%d type=%s", event.OwnerID, id, event.Type)
			}
		}
	}
}

func (h *Hub) Subscribe(ownerID string) (<-chan dto.PaymentRequestEvent, func()) {
	channel := make(chan dto.PaymentRequestEvent, subscriberBufferSize)

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	if h.subscribers[ownerID] == nil {
		h.subscribers[ownerID] = make(map[int]chan dto.PaymentRequestEvent)
	}
	h.subscribers[ownerID][id] = channel
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers[ownerID], id)
			if len(h.subscribers[ownerID]) == 0 {
				delete(h.subscribers, ownerID)
			}
			h.mu.Unlock()
			close(channel)
		})
	}

	return channel, cancel
}
