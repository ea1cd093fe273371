package controllers

import (
	"net/http"

	"upilinker/internal/adapters/inbound/http/middleware"
)

func localeFromRequest(r *http.Request) string {
	return middleware.LocaleFromContext(r.Context())
}
