package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
)

type wishlistRepository struct {
	DB *sql.DB
}

func NewWishlistRepository(db *sql.DB) domain.WishlistRepository {
	return &wishlistRepository{
		DB: db,
	}
}

func (r *wishlistRepository) Add(ctx context.Context, sessionID, profileID string) error {
	q := `
		INSERT INTO session_wishlists (session_id, profile_id, created_at)
		VALUES ($1, $2, NOW())
	`
	_, err := r.DB.ExecContext(ctx, q, sessionID, profileID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *wishlistRepository) Remove(ctx context.Context, sessionID, profileID string) (bool, error) {
	q := `
		DELETE FROM session_wishlists
		WHERE session_id = $1 AND profile_id = $2
	`
	res, err := r.DB.ExecContext(ctx, q, sessionID, profileID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *wishlistRepository) ListSessionsByProfileID(ctx context.Context, profileID string) ([]*domain.Session, error) {
	q := `
		SELECT s.id, s.conference_id, s.name, s.highlights, s.speaker, s.duration,
			s.type_of_session, s.date, s.start_time, s.created_at, s.updated_at
		FROM sessions s
		JOIN session_wishlists w ON w.session_id = s.id
		WHERE w.profile_id = $1
		ORDER BY s.name ASC
	`
	rows, err := r.DB.QueryContext(ctx, q, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
