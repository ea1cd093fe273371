package use_cases

import (
	"context"
	"strings"

	"upilinker/internal/application/dto"
	portsin "upilinker/internal/application/ports/in"
	portsout "upilinker/internal/application/ports/out"
	"upilinker/internal/domain/entities"
	"upilinker/internal/domain/policies"
	valueobjects "upilinker/internal/domain/value_objects"
	apperrors "upilinker/internal/shared_kernel/errors"
)

const (
	defaultPrincipalID = "anonymous"
	defaultHTTPMethod  = "POST"
	defaultHTTPPath    = "/v1/payment-requests"

	maxNoteLength = 500
)

type createPaymentRequestUseCase struct {
	repository portsout.PaymentRequestRepository
	broker     portsout.PaymentRequestEventBroker
	clock      Clock
}

func NewCreatePaymentRequestUseCase(
	repository portsout.PaymentRequestRepository,
	broker portsout.PaymentRequestEventBroker,
	clock Clock,
) portsin.CreatePaymentRequestUseCase {
	if clock == nil {
		clock = NewSystemClock()
	}

	return &createPaymentRequestUseCase{
		repository: repository,
		broker:     broker,
		clock:      clock,
	}
}

func (u *createPaymentRequestUseCase) Execute(ctx context.Context, command dto.CreatePaymentRequestCommand) (dto.CreatePaymentRequestOutput, *apperrors.AppError) {
	if u.repository == nil {
		return dto.CreatePaymentRequestOutput{}, apperrors.NewInternal(
			"payment_request_repository_missing",
			"payment request repository is required",
			nil,
		)
	}

	payeeName, appErr := valueobjects.NormalizePayeeName(command.PayeeName)
	if appErr != nil {
		return dto.CreatePaymentRequestOutput{}, appErr
	}
	upiID, appErr := valueobjects.NormalizeUPIID(command.UPIID)
	if appErr != nil {
		return dto.CreatePaymentRequestOutput{}, appErr
	}
	amount, appErr := valueobjects.NormalizeAmount(command.Amount, command.Flexible)
	if appErr != nil {
		return dto.CreatePaymentRequestOutput{}, appErr
	}
	note := strings.TrimSpace(command.Note)
	if len(note) > maxNoteLength {
		return dto.CreatePaymentRequestOutput{}, apperrors.NewValidation(
			"invalid_request",
			"note exceeds 500 characters",
			map[string]any{"field": "note", "max_length": maxNoteLength},
		)
	}

	id, appErr := generateID("pr_")
	if appErr != nil {
		return dto.CreatePaymentRequestOutput{}, appErr
	}

	createdAt := u.clock.NowUTC()
	request, appErr := entities.NewPendingPaymentRequest(entities.NewPaymentRequestInput{
		ID:        id,
		OwnerID:   command.OwnerID,
		PayeeName: payeeName,
		UPIID:     upiID,
		Amount:    amount,
		Note:      note,
		ExpiresAt: command.ExpiresAt,
		CreatedAt: createdAt,
	})
	if appErr != nil {
		return dto.CreatePaymentRequestOutput{}, appErr
	}

	persistence := dto.CreatePaymentRequestPersistenceCommand{
		ID:        request.ID,
		OwnerID:   request.OwnerID,
		PayeeName: request.PayeeName,
		UPIID:     request.UPIID,
		Amount:    request.Amount,
		Note:      request.Note,
		Status:    request.Status.String(),
		UPILink:   request.UPILink,
		ExpiresAt: request.ExpiresAt,
		CreatedAt: request.CreatedAt,
	}

	// Without an Idempotency-Key header a double submit simply creates two
	// documents, as the original form did.
	idempotencyKey := strings.TrimSpace(command.IdempotencyKey)
	if idempotencyKey != "" {
		requestHash, hashErr := hashCreateRequest(createRequestHashInput{
			PayeeName: payeeName,
			UPIID:     upiID,
			Amount:    amount,
			Note:      note,
			Flexible:  command.Flexible,
			ExpiresAt: command.ExpiresAt,
		})
		if hashErr != nil {
			return dto.CreatePaymentRequestOutput{}, hashErr
		}

		persistence.IdempotencyScope = normalizeIdempotencyScope(command.IdempotencyScope)
		persistence.IdempotencyKey = idempotencyKey
		persistence.RequestHash = requestHash
		persistence.HashAlgorithm = hashAlgorithmSHA256
		persistence.IdempotencyExpiresAt = policies.ResolveIdempotencyExpiry(createdAt, request.ExpiresAt)
	}

	result, appErr := u.repository.Create(ctx, persistence)
	if appErr != nil {
		return dto.CreatePaymentRequestOutput{}, appErr
	}

	result.Resource.PayURL = payPageURL(command.Locale, result.Resource.ID, command.OwnerID == nil)

	if u.broker != nil && !result.Replayed && command.OwnerID != nil {
		u.broker.Publish(dto.PaymentRequestEvent{
			Type:     dto.PaymentRequestEventCreated,
			OwnerID:  *command.OwnerID,
			Resource: result.Resource,
		})
	}

	return dto.CreatePaymentRequestOutput(result), nil
}

func normalizeIdempotencyScope(scope dto.IdempotencyScope) dto.IdempotencyScope {
	principalID := strings.TrimSpace(scope.PrincipalID)
	if principalID == "" {
		principalID = defaultPrincipalID
	}

	httpMethod := strings.ToUpper(strings.TrimSpace(scope.HTTPMethod))
	if httpMethod == "" {
		httpMethod = defaultHTTPMethod
	}

	httpPath := strings.TrimSpace(scope.HTTPPath)
	if httpPath == "" {
		httpPath = defaultHTTPPath
	}

	return dto.IdempotencyScope{
		PrincipalID: principalID,
		HTTPMethod:  httpMethod,
		HTTPPath:    httpPath,
	}
}
