package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"upilinker/internal/adapters/inbound/http/middleware"
	"upilinker/internal/application/dto"
	portsin "upilinker/internal/application/ports/in"
	apperrors "upilinker/internal/shared_kernel/errors"
)

const (
	headerIdempotencyKey      = "Idempotency-Key"
	headerIdempotencyReplayed = "X-Idempotency-Replayed"
)

type PaymentRequestsController struct {
	createUseCase portsin.CreatePaymentRequestUseCase
	listUseCase   portsin.ListPaymentRequestsUseCase
	updateUseCase portsin.UpdatePaymentRequestStatusUseCase
	deleteUseCase portsin.DeletePaymentRequestUseCase
	logger        *log.Logger
}

type createPaymentRequestPayload struct {
	PayeeName string     `json:"payee_name"`
	UPIID     string     `json:"upi_id"`
	Amount    *float64   `json:"amount,omitempty"`
	Note      string     `json:"note,omitempty"`
	Flexible  bool       `json:"flexible,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type updatePaymentRequestStatusPayload struct {
	Status string `json:"status"`
}

func NewPaymentRequestsController(
	createUseCase portsin.CreatePaymentRequestUseCase,
	listUseCase portsin.ListPaymentRequestsUseCase,
	updateUseCase portsin.UpdatePaymentRequestStatusUseCase,
	deleteUseCase portsin.DeletePaymentRequestUseCase,
	logger *log.Logger,
) *PaymentRequestsController {
	return &PaymentRequestsController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		logger:        logger,
	}
}

func (c *PaymentRequestsController) CreatePaymentRequest(w http.ResponseWriter, r *http.Request) {
	payload, appErr := parseCreatePaymentRequestPayload(r.Body)
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}

	var ownerID *string
	principalID := "anonymous"
	if userID, ok := middleware.PrincipalFromContext(r.Context()); ok {
		ownerID = &userID
		principalID = userID
	}

	output, appErr := c.createUseCase.Execute(r.Context(), dto.CreatePaymentRequestCommand{
		IdempotencyScope: dto.IdempotencyScope{
			PrincipalID: principalID,
			HTTPMethod:  r.Method,
			HTTPPath:    "/v1/payment-requests",
		},
		IdempotencyKey: strings.TrimSpace(r.Header.Get(headerIdempotencyKey)),
		OwnerID:        ownerID,
		PayeeName:      payload.PayeeName,
		UPIID:          payload.UPIID,
		Amount:         payload.Amount,
		Note:           payload.Note,
		Flexible:       payload.Flexible,
		ExpiresAt:      payload.ExpiresAt,
		Locale:         localeFromRequest(r),
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/payment-requests method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	location := "/v1/payment-requests/" + output.Resource.ID
	w.Header().Set("Location", location)
	if output.Replayed {
		w.Header().Set(headerIdempotencyReplayed, "true")
		writeJSON(w, http.StatusOK, output.Resource)
		return
	}

	writeJSON(w, http.StatusCreated, output.Resource)
}

func (c *PaymentRequestsController) ListPaymentRequests(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.PrincipalFromContext(r.Context())

	resources, appErr := c.listUseCase.Execute(r.Context(), dto.ListPaymentRequestsQuery{OwnerID: ownerID})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/payment-requests method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	if resources == nil {
		resources = []dto.PaymentRequestResource{}
	}
	writeJSON(w, http.StatusOK, resources)
}

func (c *PaymentRequestsController) UpdatePaymentRequestStatus(w http.ResponseWriter, r *http.Request) {
	payload, appErr := parseUpdateStatusPayload(r.Body)
	if appErr != nil {
		writeAppError(w, appErr)
		return
	}

	ownerID, _ := middleware.PrincipalFromContext(r.Context())
	resource, appErr := c.updateUseCase.Execute(r.Context(), dto.UpdatePaymentRequestStatusCommand{
		OwnerID: ownerID,
		ID:      r.PathValue("id"),
		Status:  payload.Status,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/payment-requests/{id}/status method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, resource)
}

func (c *PaymentRequestsController) DeletePaymentRequest(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := middleware.PrincipalFromContext(r.Context())

	appErr := c.deleteUseCase.Execute(r.Context(), dto.DeletePaymentRequestCommand{
		OwnerID: ownerID,
		ID:      r.PathValue("id"),
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/payment-requests/{id} method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseCreatePaymentRequestPayload(body io.Reader) (createPaymentRequestPayload, *apperrors.AppError) {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	payload := createPaymentRequestPayload{}
	if err := decoder.Decode(&payload); err != nil {
		return createPaymentRequestPayload{}, apperrors.NewValidation(
			"invalid_request",
			"request body must be valid JSON",
			map[string]any{"error": err.Error()},
		)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return createPaymentRequestPayload{}, apperrors.NewValidation(
			"invalid_request",
			"request body must contain a single JSON object",
			nil,
		)
	}

	return payload, nil
}

func parseUpdateStatusPayload(body io.Reader) (updatePaymentRequestStatusPayload, *apperrors.AppError) {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	payload := updatePaymentRequestStatusPayload{}
	if err := decoder.Decode(&payload); err != nil {
		return updatePaymentRequestStatusPayload{}, apperrors.NewValidation(
			"invalid_request",
			"request body must be valid JSON",
			map[string]any{"error": err.Error()},
		)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return updatePaymentRequestStatusPayload{}, apperrors.NewValidation(
			"invalid_request",
			"request body must contain a single JSON object",
			nil,
		)
	}

	return payload, nil
}
