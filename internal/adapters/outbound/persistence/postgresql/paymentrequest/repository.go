package paymentrequest

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"log"
	"time"

	"upilinker/internal/application/dto"
	portsout "upilinker/internal/application/ports/out"
	apperrors "upilinker/internal/shared_kernel/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// Repository persists payment requests across two tables mirroring the two
// visibility scopes: owned requests live in app.payment_requests, anonymous
// ones in app.public_payment_requests.
type Repository struct {
	db     *sql.DB
	logger *log.Logger
}

var _ portsout.PaymentRequestRepository = (*Repository)(nil)

func NewRepository(db *sql.DB, logger *log.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

func (r *Repository) Create(
	ctx context.Context,
	command dto.CreatePaymentRequestPersistenceCommand,
) (result dto.CreatePaymentRequestPersistenceResult, appErr *apperrors.AppError) {
	startedAt := time.Now()
	outcome := "created"
	defer func() {
		if appErr != nil {
			outcome = appErr.Code
		}
		if r.logger != nil {
			r.logger.Printf(
				"payment request create id=%s public=%t outcome=%s latency_ms=%d",
				command.ID,
				command.OwnerID == nil,
				outcome,
				time.Since(startedAt).Milliseconds(),
			)
		}
	}()

	resource := resourceFromCommand(command)

	// The common path: no idempotency key, a plain insert into the right
	// table. Duplicate submits simply create separate rows.
	if command.IdempotencyKey == "" {
		if appErr = r.insert(ctx, r.db, command); appErr != nil {
			return result, appErr
		}

		result = dto.CreatePaymentRequestPersistenceResult{Resource: resource}
		return result, nil
	}

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		appErr = apperrors.NewInternal(
			"payment_request_tx_begin_failed",
			"failed to start payment request transaction",
			map[string]any{"error": err.Error()},
		)
		return result, appErr
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	record, found, appErr := r.findIdempotencyRecordForUpdate(ctx, tx, command.IdempotencyScope, command.IdempotencyKey)
	if appErr != nil {
		return result, appErr
	}
	if found {
		if record.RequestHash != command.RequestHash {
			appErr = apperrors.NewConflict(
				"idempotency_key_conflict",
				"Idempotency key reused with different request payload",
				map[string]any{"idempotency_key": command.IdempotencyKey},
			)
			return result, appErr
		}

		var replayed dto.PaymentRequestResource
		if unmarshalErr := json.Unmarshal(record.ResponsePayload, &replayed); unmarshalErr != nil {
			appErr = apperrors.NewInternal(
				"idempotency_payload_invalid",
				"stored idempotency payload is invalid",
				map[string]any{"error": unmarshalErr.Error(), "resource_id": record.ResourceID},
			)
			return result, appErr
		}

		if commitErr := tx.Commit(); commitErr != nil {
			appErr = apperrors.NewInternal(
				"payment_request_tx_commit_failed",
				"failed to commit idempotency replay transaction",
				map[string]any{"error": commitErr.Error()},
			)
			return result, appErr
		}
		committed = true

		outcome = "replayed"
		result = dto.CreatePaymentRequestPersistenceResult{Resource: replayed, Replayed: true}
		return result, nil
	}

	if appErr = r.insert(ctx, tx, command); appErr != nil {
		return result, appErr
	}

	responsePayload, marshalErr := json.Marshal(resource)
	if marshalErr != nil {
		appErr = apperrors.NewInternal(
			"payment_request_payload_encode_failed",
			"failed to encode payment request payload",
			map[string]any{"error": marshalErr.Error()},
		)
		return result, appErr
	}

	if appErr = r.insertIdempotencyRecord(ctx, tx, command, responsePayload); appErr != nil {
		if appErr.Code == "idempotency_key_conflict" {
			_ = tx.Rollback()
			committed = true

			replayed, replayFound, replayErr := r.loadReplayResource(ctx, command.IdempotencyScope, command.IdempotencyKey, command.RequestHash)
			if replayErr != nil {
				appErr = replayErr
				return result, appErr
			}
			if replayFound {
				outcome = "replayed_race"
				appErr = nil
				result = dto.CreatePaymentRequestPersistenceResult{Resource: replayed, Replayed: true}
				return result, nil
			}
		}

		return result, appErr
	}

	if commitErr := tx.Commit(); commitErr != nil {
		appErr = apperrors.NewInternal(
			"payment_request_tx_commit_failed",
			"failed to commit payment request transaction",
			map[string]any{"error": commitErr.Error()},
		)
		return result, appErr
	}
	committed = true

	result = dto.CreatePaymentRequestPersistenceResult{Resource: resource}
	return result, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, ownerID, id, fromStatus, toStatus string) (bool, *apperrors.AppError) {
	const query = `
UPDATE app.payment_requests
SET status = $1, updated_at = now()
WHERE id = $2
  AND owner_id = $3
  AND status = $4
`

	outcome, err := r.db.ExecContext(ctx, query, toStatus, id, ownerID, fromStatus)
	if err != nil {
		return false, apperrors.NewInternal(
			"payment_request_update_failed",
			"failed to update payment request status",
			map[string]any{"error": err.Error(), "id": id},
		)
	}

	affected, err := outcome.RowsAffected()
	if err != nil {
		return false, apperrors.NewInternal(
			"payment_request_update_failed",
			"failed to read update outcome",
			map[string]any{"error": err.Error(), "id": id},
		)
	}

	return affected == 1, nil
}

func (r *Repository) Delete(ctx context.Context, ownerID, id string) (bool, *apperrors.AppError) {
	const query = `
DELETE FROM app.payment_requests
WHERE id = $1
  AND owner_id = $2
`

	outcome, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return false, apperrors.NewInternal(
			"payment_request_delete_failed",
			"failed to delete payment request",
			map[string]any{"error": err.Error(), "id": id},
		)
	}

	affected, err := outcome.RowsAffected()
	if err != nil {
		return false, apperrors.NewInternal(
			"payment_request_delete_failed",
			"failed to read delete outcome",
			map[string]any{"error": err.Error(), "id": id},
		)
	}

	return affected == 1, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *Repository) insert(ctx context.Context, db execer, command dto.CreatePaymentRequestPersistenceCommand) *apperrors.AppError {
	const ownedSQL = `
INSERT INTO app.payment_requests (
  id, owner_id, payee_name, upi_id, amount, note, status, upi_link, expires_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
`
	const publicSQL = `
INSERT INTO app.public_payment_requests (
  id, payee_name, upi_id, amount, note, status, upi_link, expires_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
`

	var err error
	if command.OwnerID != nil {
		_, err = db.ExecContext(ctx, ownedSQL,
			command.ID,
			*command.OwnerID,
			command.PayeeName,
			command.UPIID,
			command.Amount,
			command.Note,
			command.Status,
			command.UPILink,
			command.ExpiresAt,
			command.CreatedAt,
		)
	} else {
		_, err = db.ExecContext(ctx, publicSQL,
			command.ID,
			command.PayeeName,
			command.UPIID,
			command.Amount,
			command.Note,
			command.Status,
			command.UPILink,
			command.ExpiresAt,
			command.CreatedAt,
		)
	}
	if err != nil {
		return apperrors.NewInternal(
			"payment_request_insert_failed",
			"failed to insert payment request",
			map[string]any{"error": err.Error(), "id": command.ID},
		)
	}

	return nil
}

type idempotencyRecord struct {
	RequestHash     string
	ResourceID      string
	ResponsePayload []byte
}

func (r *Repository) findIdempotencyRecordForUpdate(
	ctx context.Context,
	tx *sql.Tx,
	scope dto.IdempotencyScope,
	idempotencyKey string,
) (idempotencyRecord, bool, *apperrors.AppError) {
	const query = `
SELECT request_hash, resource_id, response_payload
FROM app.idempotency_records
WHERE scope_principal = $1
  AND scope_method = $2
  AND scope_path = $3
  AND idempotency_key = $4
FOR UPDATE
`

	record := idempotencyRecord{}
	err := tx.QueryRowContext(
		ctx,
		query,
		scope.PrincipalID,
		scope.HTTPMethod,
		scope.HTTPPath,
		idempotencyKey,
	).Scan(&record.RequestHash, &record.ResourceID, &record.ResponsePayload)
	if err == nil {
		return record, true, nil
	}
	if stderrors.Is(err, sql.ErrNoRows) {
		return idempotencyRecord{}, false, nil
	}

	return idempotencyRecord{}, false, apperrors.NewInternal(
		"idempotency_record_query_failed",
		"failed to query idempotency record",
		map[string]any{"error": err.Error()},
	)
}

func (r *Repository) insertIdempotencyRecord(
	ctx context.Context,
	tx *sql.Tx,
	command dto.CreatePaymentRequestPersistenceCommand,
	responsePayload []byte,
) *apperrors.AppError {
	const insertSQL = `
INSERT INTO app.idempotency_records (
  scope_principal, scope_method, scope_path, idempotency_key,
  request_hash, hash_algorithm, resource_id, response_payload, expires_at, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
`

	_, err := tx.ExecContext(ctx, insertSQL,
		command.IdempotencyScope.PrincipalID,
		command.IdempotencyScope.HTTPMethod,
		command.IdempotencyScope.HTTPPath,
		command.IdempotencyKey,
		command.RequestHash,
		command.HashAlgorithm,
		command.ID,
		responsePayload,
		command.IdempotencyExpiresAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return apperrors.NewConflict(
				"idempotency_key_conflict",
				"Idempotency key already recorded",
				map[string]any{"idempotency_key": command.IdempotencyKey},
			)
		}

		return apperrors.NewInternal(
			"idempotency_record_insert_failed",
			"failed to insert idempotency record",
			map[string]any{"error": err.Error()},
		)
	}

	return nil
}

func (r *Repository) loadReplayResource(
	ctx context.Context,
	scope dto.IdempotencyScope,
	idempotencyKey string,
	expectedHash string,
) (dto.PaymentRequestResource, bool, *apperrors.AppError) {
	const query = `
SELECT request_hash, resource_id, response_payload
FROM app.idempotency_records
WHERE scope_principal = $1
  AND scope_method = $2
  AND scope_path = $3
  AND idempotency_key = $4
`

	record := idempotencyRecord{}
	err := r.db.QueryRowContext(ctx, query, scope.PrincipalID, scope.HTTPMethod, scope.HTTPPath, idempotencyKey).Scan(
		&record.RequestHash,
		&record.ResourceID,
		&record.ResponsePayload,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return dto.PaymentRequestResource{}, false, nil
	}
	if err != nil {
		return dto.PaymentRequestResource{}, false, apperrors.NewInternal(
			"idempotency_record_query_failed",
			"failed to query idempotency record",
			map[string]any{"error": err.Error()},
		)
	}
	if record.RequestHash != expectedHash {
		return dto.PaymentRequestResource{}, false, apperrors.NewConflict(
			"idempotency_key_conflict",
			"Idempotency key reused with different request payload",
			map[string]any{"idempotency_key": idempotencyKey},
		)
	}

	var resource dto.PaymentRequestResource
	if unmarshalErr := json.Unmarshal(record.ResponsePayload, &resource); unmarshalErr != nil {
		return dto.PaymentRequestResource{}, false, apperrors.NewInternal(
			"idempotency_payload_invalid",
			"stored idempotency payload is invalid",
			map[string]any{"error": unmarshalErr.Error(), "resource_id": record.ResourceID},
		)
	}

	return resource, true, nil
}

func resourceFromCommand(command dto.CreatePaymentRequestPersistenceCommand) dto.PaymentRequestResource {
	return dto.PaymentRequestResource{
		ID:        command.ID,
		OwnerID:   command.OwnerID,
		Public:    command.OwnerID == nil,
		PayeeName: command.PayeeName,
		UPIID:     command.UPIID,
		Amount:    command.Amount,
		Note:      command.Note,
		Status:    command.Status,
		UPILink:   command.UPILink,
		ExpiresAt: command.ExpiresAt,
		CreatedAt: command.CreatedAt,
	}
}
