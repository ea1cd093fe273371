package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"upilinker/internal/adapters/inbound/http/middleware"
	"upilinker/internal/application/dto"
	portsin "upilinker/internal/application/ports/in"
)

// EventsController streams dashboard updates over server-sent events, one
// subscription per connected owner.
type EventsController struct {
	useCase portsin.WatchPaymentRequestsUseCase
	logger  *log.Logger
}

func NewEventsController(useCase portsin.WatchPaymentRequestsUseCase, logger *log.Logger) *EventsController {
	return &EventsController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *EventsController) StreamPaymentRequestEvents(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.PrincipalFromContext(r.Context())

	events, cancel, appErr := c.useCase.Execute(r.Context(), dto.WatchPaymentRequestsQuery{OwnerID: ownerID})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/payment-requests/events method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}
	defer cancel()

	flusher, ok := w.(http.Flusher)
	if !ok {
		c.logger.Printf("request error path=/v1/payment-requests/events method=%s error=streaming_unsupported", r.Method)
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-events:
			if !open {
				return
			}

			payload, err := json.Marshal(event)
			if err != nil {
				c.logger.Printf("event encode error owner=%s error=%v", ownerID, err)
				continue
			}

			if _, err := w.Write([]byte("event: " + event.Type + "\ndata: " + string(payload) + "\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
