package postgres

import (
	"context"
	"database/sql"
	"time"

	"conferencecentral/internal/domain"
)

type loginCodeRepository struct {
	DB *sql.DB
}

// NewLoginCodeRepository returns a domain.LoginCodeRepository implemented with Postgres.
func NewLoginCodeRepository(db *sql.DB) domain.LoginCodeRepository {
	return &loginCodeRepository{DB: db}
}

func (r *loginCodeRepository) Create(ctx context.Context, email, codeHash string, expiresAt time.Time) error {
	q := `
		INSERT INTO login_codes (email, code_hash, expires_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, q, email, codeHash, expiresAt)
	return err
}

func (r *loginCodeRepository) ListActive(ctx context.Context, email string) ([]*domain.LoginCode, error) {
	q := `
		SELECT id, email, code_hash
		FROM login_codes
		WHERE email = $1 AND expires_at > NOW()
		ORDER BY expires_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, q, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	codes := make([]*domain.LoginCode, 0)
	for rows.Next() {
		lc := &domain.LoginCode{}
		if err := rows.Scan(&lc.ID, &lc.Email, &lc.CodeHash); err != nil {
			return nil, err
		}
		codes = append(codes, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *loginCodeRepository) Consume(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM login_codes WHERE id = $1`, id)
	return err
}
