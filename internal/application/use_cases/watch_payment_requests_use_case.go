package use_cases

import (
	"context"
	"strings"

	"upilinker/internal/application/dto"
	portsin "upilinker/internal/application/ports/in"
	portsout "upilinker/internal/application/ports/out"
	apperrors "upilinker/internal/shared_kernel/errors"
)

type watchPaymentRequestsUseCase struct {
	broker portsout.PaymentRequestEventBroker
}

func NewWatchPaymentRequestsUseCase(broker portsout.PaymentRequestEventBroker) portsin.WatchPaymentRequestsUseCase {
	return &watchPaymentRequestsUseCase{broker: broker}
}

func (u *watchPaymentRequestsUseCase) Execute(ctx context.Context, query dto.WatchPaymentRequestsQuery) (<-chan dto.PaymentRequestEvent, func(), *apperrors.AppError) {
	if u.broker == nil {
		return nil, nil, apperrors.NewInternal(
			"event_broker_missing",
			"payment request event broker is required",
			nil,
		)
	}

	ownerID := strings.TrimSpace(query.OwnerID)
	if ownerID == "" {
		return nil, nil, apperrors.NewUnauthorized(
			"authentication_required",
			"authentication is required to watch payment requests",
			nil,
		)
	}

	events, cancel := u.broker.Subscribe(ownerID)

	return events, cancel, nil
}
