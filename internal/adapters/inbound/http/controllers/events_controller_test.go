//go:build !integration

package controllers

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"upilinker/internal/adapters/inbound/http/middleware"
	"upilinker/internal/application/dto"
	apperrors "upilinker/internal/shared_kernel/errors"
)

func TestEventsControllerStreamsEventsUntilClose(t *testing.T) {
	events := make(chan dto.PaymentRequestEvent, 2)
	events <- dto.PaymentRequestEvent{
		Type:     dto.PaymentRequestEventCreated,
		Resource: dto.PaymentRequestResource{ID: "pr_1", Status: "pending"},
	}
	events <- dto.PaymentRequestEvent{
		Type:     dto.PaymentRequestEventStatusChanged,
		Resource: dto.PaymentRequestResource{ID: "pr_1", Status: "completed"},
	}
	close(events)

	controller := NewEventsController(&stubWatchUseCase{events: events}, log.New(io.Discard, "", 0))

	req := httptest.NewRequest(http.MethodGet, "/v1/payment-requests/events", nil)
	req = req.WithContext(middleware.WithPrincipal(req.Context(), "user-1"))
	rec := httptest.NewRecorder()

	controller.StreamPaymentRequestEvents(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Header().Get("Content-Type") != "text/event-stream" {
		t.Fatalf("expected event stream content type, got %q", rec.Header().Get("Content-Type"))
	}

	body := rec.Body.String()
	if !strings.Contains(body, "event: created\n") {
		t.Fatalf("expected created event in stream, got %q", body)
	}
	if !strings.Contains(body, "event: status_changed\n") {
		t.Fatalf("expected status_changed event in stream, got %q", body)
	}
	if !strings.Contains(body, `"id":"pr_1"`) {
		t.Fatalf("expected resource payload in stream, got %q", body)
	}
}

func TestEventsControllerUnauthenticated(t *testing.T) {
	useCase := &stubWatchUseCase{
		appErr: apperrors.NewUnauthorized("authentication_required", "authentication required", nil),
	}
	controller := NewEventsController(useCase, log.New(io.Discard, "", 0))

	req := httptest.NewRequest(http.MethodGet, "/v1/payment-requests/events", nil)
	rec := httptest.NewRecorder()

	controller.StreamPaymentRequestEvents(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestEventsControllerReleasesSubscription(t *testing.T) {
	events := make(chan dto.PaymentRequestEvent)
	close(events)
	useCase := &stubWatchUseCase{events: events}
	controller := NewEventsController(useCase, log.New(io.Discard, "", 0))

	req := httptest.NewRequest(http.MethodGet, "/v1/payment-requests/events", nil)
	req = req.WithContext(middleware.WithPrincipal(req.Context(), "user-1"))
	rec := httptest.NewRecorder()

	controller.StreamPaymentRequestEvents(rec, req)

	if !useCase.cancelled {
		t.Fatalf("expected subscription to be released")
	}
}

type stubWatchUseCase struct {
	events    chan dto.PaymentRequestEvent
	appErr    *apperrors.AppError
	cancelled bool
}

func (s *stubWatchUseCase) Execute(context.Context, dto.WatchPaymentRequestsQuery) (<-chan dto.PaymentRequestEvent, func(), *apperrors.AppError) {
	if s.appErr != nil {
		return nil, nil, s.appErr
	}

	return s.events, func() { s.cancelled = true }, nil
}
