//go:build !integration

package events

import (
	"testing"

	"upilinker/internal/application/dto"
)

func TestPublishReachesOwnerSubscribers(t *testing.T) {
	hub := NewHub(nil)

	first, cancelFirst := hub.Subscribe("usr_1")
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe("usr_1")
	defer cancelSecond()

	hub.Publish(dto.PaymentRequestEvent{
		Type:     dto.PaymentRequestEventCreated,
		OwnerID:  "usr_1",
		Resource: dto.PaymentRequestResource{ID: "pr_1"},
	})

	for _, channel := range []<-chan dto.PaymentRequestEvent{first, second} {
		select {
		case event := <-channel:
			if event.Resource.ID != "pr_1" {
				t.Fatalf("expected pr_1, got %s", event.Resource.ID)
			}
		default:
			t.Fatalf("expected buffered event")
		}
	}
}

func TestPublishIsScopedToOwner(t *testing.T) {
	hub := NewHub(nil)

	foreign, cancel := hub.Subscribe("usr_2")
	defer cancel()

	hub.Publish(dto.PaymentRequestEvent{
		Type:     dto.PaymentRequestEventCreated,
		OwnerID:  "usr_1",
		Resource: dto.PaymentRequestResource{ID: "pr_1"},
	})

	select {
	case event := <-foreign:
		t.Fatalf("unexpected event for foreign owner: %v", event)
	default:
	}
}

func TestCancelClosesChannel(t *testing.T) {
	hub := NewHub(nil)

	channel, cancel := hub.Subscribe("usr_1")
	cancel()
	cancel()

	if _, open := <-channel; open {
		t.Fatalf("expected closed channel after cancel")
	}

	// Publishing after cancel must not panic on the closed channel.
	hub.Publish(dto.PaymentRequestEvent{
		Type:     dto.PaymentRequestEventDeleted,
		OwnerID:  "usr_1",
		Resource: dto.PaymentRequestResource{ID: "pr_1"},
	})
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub(nil)

	channel, cancel := hub.Subscribe("usr_1")
	defer cancel()

	for i := 0; i < subscriberBufferSize+5; i++ {
		hub.Publish(dto.PaymentRequestEvent{
			Type:     dto.PaymentRequestEventStatusChanged,
			OwnerID:  "usr_1",
			Resource: dto.PaymentRequestResource{ID: "pr_1"},
		})
	}

	if got := len(channel); got != subscriberBufferSize {
		t.Fatalf("expected full buffer %d, got %d", subscriberBufferSize, got)
	}
}
