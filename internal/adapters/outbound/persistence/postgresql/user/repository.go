package user

import (
	"context"
	"database/sql"
	stderrors "errors"

	portsout "upilinker/internal/application/ports/out"
	"upilinker/internal/domain/entities"
	apperrors "upilinker/internal/shared_kernel/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db *sql.DB
}

var _ portsout.UserRepository = (*Repository)(nil)

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, user entities.User) *apperrors.AppError {
	const query = `
INSERT INTO app.users (id, name, email, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5)
`

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			// The use case checks first; this catches the concurrent register.
			return apperrors.NewConflict(
				"email_already_registered",
				"Email is already registered",
				map[string]any{"email": user.Email},
			)
		}

		return apperrors.NewInternal(
			"user_insert_failed",
			"failed to insert user",
			map[string]any{"error": err.Error()},
		)
	}

	return nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (entities.User, bool, *apperrors.AppError) {
	const query = `
SELECT id, name, email, password_hash, created_at
FROM app.users
WHERE email = $1
`

	user := entities.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entities.User{}, false, nil
	}
	if err != nil {
		return entities.User{}, false, apperrors.NewInternal(
			"user_query_failed",
			"failed to query user",
			map[string]any{"error": err.Error()},
		)
	}

	return user, true, nil
}
