package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"conferencecentral/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Register runs the whole read-check-write protocol in one transaction. The
// FOR UPDATE lock on the conference row serializes concurrent registrations,
// so the seat counter can never go below zero.
func (r *registrationRepository) Register(ctx context.Context, conferenceID, profileID string) (*domain.Registration, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var seats int
	err = tx.QueryRowContext(ctx,
		`SELECT seats_available FROM conferences WHERE id = $1 FOR UPDATE`,
		conferenceID,
	).Scan(&seats)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("lock conference: %w", err)
	}

	var registered bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM conference_registrations
			WHERE conference_id = $1 AND profile_id = $2
		)`,
		conferenceID, profileID,
	).Scan(&registered)
	if err != nil {
		return nil, fmt.Errorf("check registration: %w", err)
	}
	if registered {
		return nil, domain.ErrConflict
	}
	if seats <= 0 {
		return nil, domain.ErrNoSeats
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE conferences SET seats_available = seats_available - 1, updated_at = $2 WHERE id = $1`,
		conferenceID, time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("decrement seats: %w", err)
	}

	reg := &domain.Registration{
		ConferenceID: conferenceID,
		ProfileID:    profileID,
		CreatedAt:    time.Now(),
	}
	err = tx.QueryRowContext(ctx,
		`INSERT INTO conference_registrations (conference_id, profile_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`,
		reg.ConferenceID, reg.ProfileID, reg.CreatedAt,
	).Scan(&reg.ID)
	if err != nil {
		return nil, fmt.Errorf("insert registration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return reg, nil
}

// Unregister removes the registration and returns the seat in the same
// transaction. A missing conference is ErrNotFound; a missing registration
// reports false and changes nothing.
func (r *registrationRepository) Unregister(ctx context.Context, conferenceID, profileID string) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var lockedID string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM conferences WHERE id = $1 FOR UPDATE`,
		conferenceID,
	).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("lock conference: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM conference_registrations WHERE conference_id = $1 AND profile_id = $2`,
		conferenceID, profileID,
	)
	if err != nil {
		return false, fmt.Errorf("delete registration: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		if err := tx.Commit(); err != nil {
			return false, fmt.Errorf("commit: %w", err)
		}
		return false, nil
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE conferences SET seats_available = seats_available + 1, updated_at = $2 WHERE id = $1`,
		conferenceID, time.Now(),
	)
	if err != nil {
		return false, fmt.Errorf("increment seats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return true, nil
}

func (r *registrationRepository) ListByProfileID(ctx context.Context, profileID string) ([]*domain.Registration, error) {
	q := `
		SELECT id, conference_id, profile_id, created_at
		FROM conference_registrations
		WHERE profile_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, q, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.ID, &reg.ConferenceID, &reg.ProfileID, &reg.CreatedAt); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return regs, nil
}
