package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"upilinker/internal/adapters/inbound/http/i18n"
	"upilinker/internal/adapters/inbound/http/middleware"
	"upilinker/internal/application/dto"
	portsin "upilinker/internal/application/ports/in"
	portsout "upilinker/internal/application/ports/out"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type PayPageController struct {
	useCase   portsin.GetPayPageUseCase
	qrGateway portsout.QRImageGateway
	logger    *log.Logger
}

type localizedPayPage struct {
	Locale string              `json:"locale"`
	Page   dto.PayPageResource `json:"page"`
	Labels map[string]string   `json:"labels"`
}

func NewPayPageController(
	useCase portsin.GetPayPageUseCase,
	qrGateway portsout.QRImageGateway,
	logger *log.Logger,
) *PayPageController {
	return &PayPageController{
		useCase:   useCase,
		qrGateway: qrGateway,
		logger:    logger,
	}
}

// GetPayPage serves the API shape consumed by clients rendering a pay screen.
func (c *PayPageController) GetPayPage(w http.ResponseWriter, r *http.Request) {
	page, appErr := c.resolvePage(r)
	if appErr != nil {
		c.logger.Printf("request error path=/v1/pay/{id} method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// GetLocalizedPayPage serves the locale-prefixed page document: the pay page
// payload plus the display strings for the resolved locale.
func (c *PayPageController) GetLocalizedPayPage(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())

	page, appErr := c.resolvePage(r)
	if appErr != nil {
		c.logger.Printf("request error path=/{locale}/pay/{id} method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		status := http.StatusInternalServerError
		labelKey := "error_generic"
		switch appErr.Type {
		case apperrors.TypeNotFound:
			status = http.StatusNotFound
			labelKey = "error_not_found"
		case apperrors.TypeExpired:
			status = http.StatusGone
			labelKey = "error_expired"
		case apperrors.TypeValidation:
			status = http.StatusBadRequest
		}

		writeJSON(w, status, errorResponse{
			Error: errorEnvelope{
				Code:    appErr.Code,
				Message: i18n.T(locale, labelKey),
				Details: appErr.Details,
			},
		})
		return
	}

	writeJSON(w, http.StatusOK, localizedPayPage{
		Locale: locale,
		Page:   page,
		Labels: i18n.PayPageLabels(locale),
	})
}

// GetQRImage proxies the rendered QR image so pay pages never expose the
// third-party renderer to the browser.
func (c *PayPageController) GetQRImage(w http.ResponseWriter, r *http.Request) {
	page, appErr := c.resolvePage(r)
	if appErr != nil {
		c.logger.Printf("request error path=/v1/pay/{id}/qr method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	content, contentType, appErr := c.qrGateway.Fetch(r.Context(), page.UPILink)
	if appErr != nil {
		c.logger.Printf("request error path=/v1/pay/{id}/qr method=%s code=%s message=%s", r.Method, appErr.Code, appErr.Message)
		writeAppError(w, appErr)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		c.logger.Printf("response write error path=/v1/pay/{id}/qr method=%s error=%v", r.Method, err)
	}
}

func (c *PayPageController) resolvePage(r *http.Request) (dto.PayPageResource, *apperrors.AppError) {
	query := dto.GetPayPageQuery{
		ID:     r.PathValue("id"),
		Public: r.URL.Query().Get("public") == "true",
		Locale: middleware.LocaleFromContext(r.Context()),
	}

	if userID, ok := middleware.PrincipalFromContext(r.Context()); ok {
		query.CallerID = &userID
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("amount")); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return dto.PayPageResource{}, apperrors.NewValidation(
				"invalid_request",
				"amount must be a number",
				map[string]any{"field": "amount"},
			)
		}
		query.CustomAmount = &amount
	}

	return c.useCase.Execute(r.Context(), query)
}
