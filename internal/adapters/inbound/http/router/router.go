package router

import (
	"net/http"

	"upilinker/internal/adapters/inbound/http/controllers"
	"upilinker/internal/adapters/inbound/http/middleware"
	portsout "upilinker/internal/application/ports/out"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type Dependencies struct {
	HealthController          *controllers.HealthController
	SwaggerController         *controllers.SwaggerController
	AuthController            *controllers.AuthController
	PaymentRequestsController *controllers.PaymentRequestsController
	PayPageController         *controllers.PayPageController
	LinksController           *controllers.LinksController
	EventsController          *controllers.EventsController
	TokenVerifier             portsout.TokenIssuer
	DefaultLocale             string
}

// New assembles the full handler chain: mux routing inside, then bearer-token
// resolution, then the locale prefix layer on the outside so every route sees
// a locale-free path.
func New(deps Dependencies) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", deps.HealthController.GetHealth)
	mux.HandleFunc("GET /swagger", deps.SwaggerController.RedirectToIndex)
	mux.HandleFunc("GET /swagger/openapi.yaml", deps.SwaggerController.GetOpenAPISpec)
	mux.HandleFunc("GET /swagger/", deps.SwaggerController.ServeUI)

	mux.HandleFunc("POST /v1/auth/register", deps.AuthController.Register)
	mux.HandleFunc("POST /v1/auth/login", deps.AuthController.Login)

	mux.HandleFunc("POST /v1/payment-requests", deps.PaymentRequestsController.CreatePaymentRequest)
	mux.HandleFunc("GET /v1/payment-requests", deps.PaymentRequestsController.ListPaymentRequests)
	mux.HandleFunc("GET /v1/payment-requests/events", deps.EventsController.StreamPaymentRequestEvents)
	mux.HandleFunc("PATCH /v1/payment-requests/{id}/status", deps.PaymentRequestsController.UpdatePaymentRequestStatus)
	mux.HandleFunc("DELETE /v1/payment-requests/{id}", deps.PaymentRequestsController.DeletePaymentRequest)

	mux.HandleFunc("GET /v1/pay/{id}", deps.PayPageController.GetPayPage)
	mux.HandleFunc("GET /v1/pay/{id}/qr", deps.PayPageController.GetQRImage)
	mux.HandleFunc("POST /v1/links", deps.LinksController.BuildPaymentLink)

	// Locale-prefixed page route; the prefix is stripped before dispatch.
	mux.HandleFunc("GET /pay/{id}", deps.PayPageController.GetLocalizedPayPage)

	authenticated := middleware.Authenticate(deps.TokenVerifier, writeUnauthorized, mux)

	return middleware.LocalizeRoutes(deps.DefaultLocale, authenticated)
}

func writeUnauthorized(w http.ResponseWriter, appErr *apperrors.AppError) {
	controllers.WriteError(w, appErr)
}
