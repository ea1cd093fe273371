package use_cases

import (
	"context"
	"strings"

	"upilinker/internal/application/dto"
	portsin "upilinker/internal/application/ports/in"
	portsout "upilinker/internal/application/ports/out"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type deletePaymentRequestUseCase struct {
	repository portsout.PaymentRequestRepository
	broker     portsout.PaymentRequestEventBroker
}

func NewDeletePaymentRequestUseCase(
	repository portsout.PaymentRequestRepository,
	broker portsout.PaymentRequestEventBroker,
) portsin.DeletePaymentRequestUseCase {
	return &deletePaymentRequestUseCase{
		repository: repository,
		broker:     broker,
	}
}

func (u *deletePaymentRequestUseCase) Execute(ctx context.Context, command dto.DeletePaymentRequestCommand) *apperrors.AppError {
	if u.repository == nil {
		return apperrors.NewInternal(
			"payment_request_repository_missing",
			"payment request repository is required",
			nil,
		)
	}

	ownerID := strings.TrimSpace(command.OwnerID)
	if ownerID == "" {
		return apperrors.NewUnauthorized(
			"authentication_required",
			"authentication is required to delete a payment request",
			nil,
		)
	}

	id := strings.TrimSpace(command.ID)
	if id == "" {
		return apperrors.NewValidation(
			"invalid_request",
			"payment request id is required",
			map[string]any{"field": "id"},
		)
	}

	deleted, appErr := u.repository.Delete(ctx, ownerID, id)
	if appErr != nil {
		return appErr
	}
	if !deleted {
		return apperrors.NewNotFound(
			"payment_request_not_found",
			"payment request was not found",
			map[string]any{"id": id},
		)
	}

	if u.broker != nil {
		u.broker.Publish(dto.PaymentRequestEvent{
			Type:    dto.PaymentRequestEventDeleted,
			OwnerID: ownerID,
			Resource: dto.PaymentRequestResource{
				ID:      id,
				OwnerID: &ownerID,
			},
		})
	}

	return nil
}
