package use_cases

import (
	"context"
	"strings"

	"upilinker/internal/application/dto"
	portsin "upilinker/internal/application/ports/in"
	portsout "upilinker/internal/application/ports/out"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type listPaymentRequestsUseCase struct {
	readModel portsout.PaymentRequestReadModel
}

func NewListPaymentRequestsUseCase(readModel portsout.PaymentRequestReadModel) portsin.ListPaymentRequestsUseCase {
	return &listPaymentRequestsUseCase{readModel: readModel}
}

func (u *listPaymentRequestsUseCase) Execute(ctx context.Context, query dto.ListPaymentRequestsQuery) ([]dto.PaymentRequestResource, *apperrors.AppError) {
	if u.readModel == nil {
		return nil, apperrors.NewInternal(
			"payment_request_read_model_missing",
			"payment request read model is required",
			nil,
		)
	}

	ownerID := strings.TrimSpace(query.OwnerID)
	if ownerID == "" {
		return nil, apperrors.NewUnauthorized(
			"authentication_required",
			"authentication is required to list payment requests",
			nil,
		)
	}

	resources, appErr := u.readModel.ListByOwner(ctx, ownerID)
	if appErr != nil {
		return nil, appErr
	}

	for i := range resources {
		resources[i].PayURL = payPageURL("", resources[i].ID, false)
	}

	return resources, nil
}
