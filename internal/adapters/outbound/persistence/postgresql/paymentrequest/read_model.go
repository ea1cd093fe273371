package paymentrequest

import (
	"context"
	"database/sql"
	stderrors "errors"

	"upilinker/internal/application/dto"
	portsout "upilinker/internal/application/ports/out"
	apperrors "upilinker/internal/shared_kernel/errors"
)

// ReadModel serves payment request lookups over the same two tables the
// repository writes to.
type ReadModel struct {
	db *sql.DB
}

var _ portsout.PaymentRequestReadModel = (*ReadModel)(nil)

func NewReadModel(db *sql.DB) *ReadModel {
	return &ReadModel{db: db}
}

func (m *ReadModel) GetPublic(ctx context.Context, id string) (dto.PaymentRequestResource, bool, *apperrors.AppError) {
	const query = `
SELECT id, payee_name, upi_id, amount, note, status, upi_link, expires_at, created_at
FROM app.public_payment_requests
WHERE id = $1
`

	resource := dto.PaymentRequestResource{Public: true}
	var amount sql.NullFloat64
	var note sql.NullString
	var expiresAt sql.NullTime
	err := m.db.QueryRowContext(ctx, query, id).Scan(
		&resource.ID,
		&resource.PayeeName,
		&resource.UPIID,
		&amount,
		&note,
		&resource.Status,
		&resource.UPILink,
		&expiresAt,
		&resource.CreatedAt,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return dto.PaymentRequestResource{}, false, nil
	}
	if err != nil {
		return dto.PaymentRequestResource{}, false, queryFailure(err, id)
	}

	applyNullable(&resource, amount, note, expiresAt)
	return resource, true, nil
}

func (m *ReadModel) GetOwned(ctx context.Context, ownerID, id string) (dto.PaymentRequestResource, bool, *apperrors.AppError) {
	const query = `
SELECT id, owner_id, payee_name, upi_id, amount, note, status, upi_link, expires_at, created_at
FROM app.payment_requests
WHERE id = $1
  AND owner_id = $2
`

	resource := dto.PaymentRequestResource{}
	var owner string
	var amount sql.NullFloat64
	var note sql.NullString
	var expiresAt sql.NullTime
	err := m.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&resource.ID,
		&owner,
		&resource.PayeeName,
		&resource.UPIID,
		&amount,
		&note,
		&resource.Status,
		&resource.UPILink,
		&expiresAt,
		&resource.CreatedAt,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return dto.PaymentRequestResource{}, false, nil
	}
	if err != nil {
		return dto.PaymentRequestResource{}, false, queryFailure(err, id)
	}

	resource.OwnerID = &owner
	applyNullable(&resource, amount, note, expiresAt)
	return resource, true, nil
}

func (m *ReadModel) ListByOwner(ctx context.Context, ownerID string) ([]dto.PaymentRequestResource, *apperrors.AppError) {
	const query = `
SELECT id, owner_id, payee_name, upi_id, amount, note, status, upi_link, expires_at, created_at
FROM app.payment_requests
WHERE owner_id = $1
ORDER BY created_at DESC
`

	rows, err := m.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, queryFailure(err, "")
	}
	defer rows.Close()

	resources := make([]dto.PaymentRequestResource, 0)
	for rows.Next() {
		resource := dto.PaymentRequestResource{}
		var owner string
		var amount sql.NullFloat64
		var note sql.NullString
		var expiresAt sql.NullTime
		if scanErr := rows.Scan(
			&resource.ID,
			&owner,
			&resource.PayeeName,
			&resource.UPIID,
			&amount,
			&note,
			&resource.Status,
			&resource.UPILink,
			&expiresAt,
			&resource.CreatedAt,
		); scanErr != nil {
			return nil, queryFailure(scanErr, resource.ID)
		}

		resource.OwnerID = &owner
		applyNullable(&resource, amount, note, expiresAt)
		resources = append(resources, resource)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, queryFailure(rowsErr, "")
	}

	return resources, nil
}

func applyNullable(resource *dto.PaymentRequestResource, amount sql.NullFloat64, note sql.NullString, expiresAt sql.NullTime) {
	if amount.Valid {
		value := amount.Float64
		resource.Amount = &value
	}
	if note.Valid {
		resource.Note = note.String
	}
	if expiresAt.Valid {
		value := expiresAt.Time.UTC()
		resource.ExpiresAt = &value
	}
}

func queryFailure(err error, id string) *apperrors.AppError {
	details := map[string]any{"error": err.Error()}
	if id != "" {
		details["id"] = id
	}

	return apperrors.NewInternal(
		"payment_request_query_failed",
		"failed to query payment requests",
		details,
	)
}
