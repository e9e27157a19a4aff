package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

// uniqueViolation is the postgres error code for duplicate keys.
const uniqueViolation = "23505"

type profileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{
		DB: db,
	}
}

func (r *profileRepository) Create(ctx context.Context, p *domain.Profile) error {
	q := `
		INSERT INTO profiles (id, display_name, main_email, tee_shirt_size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, q,
		p.ID, p.DisplayName, p.MainEmail, string(p.TeeShirtSize), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	q := `
		SELECT id, display_name, main_email, tee_shirt_size, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`
	return r.get(ctx, q, id)
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	q := `
		SELECT id, display_name, main_email, tee_shirt_size, created_at, updated_at
		FROM profiles
		WHERE main_email = $1
	`
	return r.get(ctx, q, email)
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	q := `
		UPDATE profiles
		SET display_name = $2, tee_shirt_size = $3, updated_at = $4
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, q, p.ID, p.DisplayName, string(p.TeeShirtSize), p.UpdatedAt)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) get(ctx context.Context, q string, arg any) (*domain.Profile, error) {
	p := &domain.Profile{}
	var size string
	err := r.DB.QueryRowContext(ctx, q, arg).Scan(
		&p.ID, &p.DisplayName, &p.MainEmail, &size, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.TeeShirtSize = domain.TeeShirtSize(size)
	return p, nil
}
