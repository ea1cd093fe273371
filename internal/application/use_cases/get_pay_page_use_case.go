package use_cases

import (
	"context"
	"strings"

	"upilinker/internal/application/dto"
	portsin "upilinker/internal/application/ports/in"
	portsout "upilinker/internal/application/ports/out"
	"upilinker/internal/domain/policies"
	"upilinker/internal/domain/upilink"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type getPayPageUseCase struct {
	readModel portsout.PaymentRequestReadModel
	qrGateway portsout.QRImageGateway
	clock     Clock
}

func NewGetPayPageUseCase(
	readModel portsout.PaymentRequestReadModel,
	qrGateway portsout.QRImageGateway,
	clock Clock,
) portsin.GetPayPageUseCase {
	if clock == nil {
		clock = NewSystemClock()
	}

	return &getPayPageUseCase{
		readModel: readModel,
		qrGateway: qrGateway,
		clock:     clock,
	}
}

func (u *getPayPageUseCase) Execute(ctx context.Context, query dto.GetPayPageQuery) (dto.PayPageResource, *apperrors.AppError) {
	if u.readModel == nil {
		return dto.PayPageResource{}, apperrors.NewInternal(
			"payment_request_read_model_missing",
			"payment request read model is required",
			nil,
		)
	}

	id := strings.TrimSpace(query.ID)
	if id == "" {
		return dto.PayPageResource{}, apperrors.NewValidation(
			"invalid_request",
			"payment request id is required",
			map[string]any{"field": "id"},
		)
	}

	resource, found, appErr := u.resolve(ctx, id, query)
	if appErr != nil {
		return dto.PayPageResource{}, appErr
	}
	if !found {
		return dto.PayPageResource{}, apperrors.NewNotFound(
			"payment_request_not_found",
			"payment request was not found",
			map[string]any{"id": id},
		)
	}

	// Expiry wins over everything else once the document is loaded.
	if policies.IsExpired(resource.ExpiresAt, u.clock.NowUTC()) {
		return dto.PayPageResource{}, apperrors.NewExpired(
			"payment_request_expired",
			"payment request has expired",
			map[string]any{"id": id},
		)
	}

	resource.PayURL = payPageURL(query.Locale, resource.ID, query.Public)

	link := resource.UPILink
	effectiveAmount := resource.Amount
	// A flexible request lets the payer type an amount; the link and QR are
	// rebuilt on the fly, nothing is written back.
	if resource.Amount == nil && query.CustomAmount != nil && *query.CustomAmount > 0 {
		customAmount := *query.CustomAmount
		link = upilink.Build(upilink.Params{
			UPIID:     resource.UPIID,
			PayeeName: resource.PayeeName,
			Amount:    &customAmount,
			Note:      resource.Note,
		})
		effectiveAmount = &customAmount
	}

	page := dto.PayPageResource{
		Request: resource,
		UPILink: link,
		Amount:  effectiveAmount,
	}
	if u.qrGateway != nil {
		page.QRCodeURL = u.qrGateway.ImageURL(link)
	}

	return page, nil
}

func (u *getPayPageUseCase) resolve(ctx context.Context, id string, query dto.GetPayPageQuery) (dto.PaymentRequestResource, bool, *apperrors.AppError) {
	if query.Public {
		return u.readModel.GetPublic(ctx, id)
	}

	// Private lookups resolve only through the caller's own path; an absent
	// or wrong principal reads as not found, matching the single error panel
	// the original showed for both cases.
	if query.CallerID == nil {
		return dto.PaymentRequestResource{}, false, nil
	}

	return u.readModel.GetOwned(ctx, *query.CallerID, id)
}
