package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"upilinker/internal/application/dto"
	portsin "upilinker/internal/application/ports/in"
	apperrors "upilinker/internal/shared_kernel/errors"
)

// LinksController backs the embeddable widget. Nothing here touches storage;
// the widget renders whatever the builder returns.
type LinksController struct {
	useCase portsin.BuildPaymentLinkUseCase
	logger  *log.Logger
}

type buildPaymentLinkPayload struct {
	PayeeName string   `json:"payee_name"`
	UPIID     string   `json:"upi_id"`
	Amount    *float64 `json:"amount,omitempty"`
	Note      string   `json:"note,omitempty"`
}

func NewLinksController(useCase portsin.BuildPaymentLinkUseCase, logger *log.Logger) *LinksController {
	return &LinksController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *LinksController) BuildPaymentLink(w http.ResponseWriter, r *http.Request) {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	payload := buildPaymentLinkPayload{}
	if err := decoder.Decode(&payload); err != nil {
		writeAppError(w, apperrors.NewValidation(
			"invalid_request",
			"request body must be valid JSON",
			map[string]any{"error": err.Error()},
		))
		return
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		writeAppError(w, apperrors.NewValidation(
			"invalid_request",
			"request body must contain a single JSON object",
			nil,
		))
		return
	}

	output, appErr := c.useCase.Execute(r.Context(), dto.BuildPaymentLinkCommand{
		PayeeName: payload.PayeeName,
		UPIID:     payload.UPIID,
		Amount:    payload.Amount,
		Note:      payload.Note,
	})
	if appErr != nil {
		c.logger.Printf("request error path=/v1/links method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
