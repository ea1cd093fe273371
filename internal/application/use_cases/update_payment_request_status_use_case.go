package use_cases

import (
	"context"
	"strings"

	"upilinker/internal/application/dto"
	portsin "upilinker/internal/application/ports/in"
	portsout "upilinker/internal/application/ports/out"
	valueobjects "upilinker/internal/domain/value_objects"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type updatePaymentRequestStatusUseCase struct {
	repository portsout.PaymentRequestRepository
	readModel  portsout.PaymentRequestReadModel
	broker     portsout.PaymentRequestEventBroker
}

func NewUpdatePaymentRequestStatusUseCase(
	repository portsout.PaymentRequestRepository,
	readModel portsout.PaymentRequestReadModel,
	broker portsout.PaymentRequestEventBroker,
) portsin.UpdatePaymentRequestStatusUseCase {
	return &updatePaymentRequestStatusUseCase{
		repository: repository,
		readModel:  readModel,
		broker:     broker,
	}
}

func (u *updatePaymentRequestStatusUseCase) Execute(ctx context.Context, command dto.UpdatePaymentRequestStatusCommand) (dto.PaymentRequestResource, *apperrors.AppError) {
	if u.repository == nil || u.readModel == nil {
		return dto.PaymentRequestResource{}, apperrors.NewInternal(
			"payment_request_persistence_missing",
			"payment request repository and read model are required",
			nil,
		)
	}

	ownerID := strings.TrimSpace(command.OwnerID)
	if ownerID == "" {
		return dto.PaymentRequestResource{}, apperrors.NewUnauthorized(
			"authentication_required",
			"authentication is required to update a payment request",
			nil,
		)
	}

	id := strings.TrimSpace(command.ID)
	if id == "" {
		return dto.PaymentRequestResource{}, apperrors.NewValidation(
			"invalid_request",
			"payment request id is required",
			map[string]any{"field": "id"},
		)
	}

	nextStatus, appErr := valueobjects.ParsePaymentRequestStatus(command.Status)
	if appErr != nil {
		return dto.PaymentRequestResource{}, appErr
	}

	resource, found, appErr := u.readModel.GetOwned(ctx, ownerID, id)
	if appErr != nil {
		return dto.PaymentRequestResource{}, appErr
	}
	if !found {
		return dto.PaymentRequestResource{}, apperrors.NewNotFound(
			"payment_request_not_found",
			"payment request was not found",
			map[string]any{"id": id},
		)
	}

	currentStatus, appErr := valueobjects.ParsePaymentRequestStatus(resource.Status)
	if appErr != nil {
		return dto.PaymentRequestResource{}, appErr
	}
	if !currentStatus.CanTransitionTo(nextStatus) {
		return dto.PaymentRequestResource{}, apperrors.NewConflict(
			"status_transition_not_allowed",
			"payment request status cannot change from "+currentStatus.String()+" to "+nextStatus.String(),
			map[string]any{"id": id, "current_status": currentStatus.String(), "requested_status": nextStatus.String()},
		)
	}

	updated, appErr := u.repository.UpdateStatus(ctx, ownerID, id, currentStatus.String(), nextStatus.String())
	if appErr != nil {
		return dto.PaymentRequestResource{}, appErr
	}
	if !updated {
		// The row changed between read and write; the guarded update lost the
		// race, report it the same way a direct terminal transition would be.
		return dto.PaymentRequestResource{}, apperrors.NewConflict(
			"status_transition_not_allowed",
			"payment request status changed concurrently",
			map[string]any{"id": id, "requested_status": nextStatus.String()},
		)
	}

	resource.Status = nextStatus.String()
	resource.PayURL = payPageURL("", resource.ID, false)

	if u.broker != nil {
		u.broker.Publish(dto.PaymentRequestEvent{
			Type:     dto.PaymentRequestEventStatusChanged,
			OwnerID:  ownerID,
			Resource: resource,
		})
	}

	return resource, nil
}
