package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type passwordResetRepo struct {
	db *pgxpool.Pool
}

func NewPasswordResetRepository(db *pgxpool.Pool) domain.PasswordResetRepository {
	return &passwordResetRepo{db: db}
}

func (r *passwordResetRepo) Create(ctx context.Context, token *domain.PasswordResetToken) error {
	token.CreatedAt = time.Now()
	_, err := r.db.Exec(ctx, `
		INSERT INTO password_reset_tokens (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)`,
		token.Token, token.UserID, token.ExpiresAt, token.CreatedAt,
	)
	return err
}

// GetValid only returns unused, unexpired tokens; anything else is
// indistinguishable from a missing token.
func (r *passwordResetRepo) GetValid(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	var t domain.PasswordResetToken
	err := r.db.QueryRow(ctx, `
		SELECT token, user_id, expires_at, used_at, created_at
		FROM password_reset_tokens
		WHERE token = $1 AND used_at IS NULL AND expires_at > $2`,
		token, time.Now(),
	).Scan(&t.Token, &t.UserID, &t.ExpiresAt, &t.UsedAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *passwordResetRepo) MarkUsed(ctx context.Context, token string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE password_reset_tokens SET used_at = $2 WHERE token = $1 AND used_at IS NULL`,
		token, time.Now(),
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
