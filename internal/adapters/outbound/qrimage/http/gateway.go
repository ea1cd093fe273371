package http

import (
	"context"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	portsout "upilinker/internal/application/ports/out"
	apperrors "upilinker/internal/shared_kernel/errors"
)

const (
	defaultHTTPTimeout = 5 * time.Second
	defaultImageSize   = "256x256"
	maxImageBytes      = 1 << 20
	maxErrorBodyBytes  = 1024
)

type Config struct {
	// BaseURL points at the rendering endpoint, e.g.
	// https://api.qrserver.com/v1/create-qr-code/.
	BaseURL string
	Size    string
	Timeout time.Duration
}

// Gateway renders QR images through an external rendering service. ImageURL
// is cheap and embedded in responses; Fetch proxies the image bytes for
// clients that cannot reach the renderer directly.
type Gateway struct {
	baseURL string
	size    string
	client  *nethttp.Client
}

var _ portsout.QRImageGateway = (*Gateway)(nil)

func NewGateway(cfg Config) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	size := strings.TrimSpace(cfg.Size)
	if size == "" {
		size = defaultImageSize
	}

	return &Gateway{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/") + "/",
		size:    size,
		client: &nethttp.Client{
			Timeout: timeout,
		},
	}
}

func (g *Gateway) ImageURL(upiLink string) string {
	query := url.Values{}
	query.Set("size", g.size)
	query.Set("data", upiLink)

	return g.baseURL + "?" + query.Encode()
}

func (g *Gateway) Fetch(ctx context.Context, upiLink string) ([]byte, string, *apperrors.AppError) {
	if g == nil || g.client == nil {
		return nil, "", apperrors.NewInternal(
			"qr_gateway_not_configured",
			"qr image gateway is not configured",
			nil,
		)
	}
	if strings.TrimSpace(upiLink) == "" {
		return nil, "", apperrors.NewValidation(
			"invalid_request",
			"upi link is required",
			map[string]any{"field": "upi_link"},
		)
	}

	request, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, g.ImageURL(upiLink), nil)
	if err != nil {
		return nil, "", apperrors.NewInternal(
			"qr_request_build_failed",
			"failed to build qr image request",
			map[string]any{"error": err.Error()},
		)
	}

	response, err := g.client.Do(request)
	if err != nil {
		return nil, "", apperrors.NewInternal(
			"qr_fetch_failed",
			"failed to fetch qr image",
			map[string]any{"error": err.Error()},
		)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		bodyPreview := ""
		raw, readErr := io.ReadAll(io.LimitReader(response.Body, maxErrorBodyBytes))
		if readErr == nil {
			bodyPreview = strings.TrimSpace(string(raw))
		}
		return nil, "", apperrors.NewInternal(
			"qr_fetch_failed",
			"qr renderer returned non-2xx status",
			map[string]any{
				"status_code": response.StatusCode,
				"body":        bodyPreview,
			},
		)
	}

	content, readErr := io.ReadAll(io.LimitReader(response.Body, maxImageBytes))
	if readErr != nil {
		return nil, "", apperrors.NewInternal(
			"qr_fetch_failed",
			"failed to read qr image body",
			map[string]any{"error": readErr.Error()},
		)
	}

	contentType := response.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	return content, contentType, nil
}
