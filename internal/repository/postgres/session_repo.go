package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
	"conferencecentral/internal/query"
)

const sessionColumns = `id, conference_id, name, highlights, speaker, duration,
		type_of_session, date, start_time, created_at, updated_at`

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{
		DB: db,
	}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	q := `
		INSERT INTO sessions (conference_id, name, highlights, speaker, duration,
			type_of_session, date, start_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, q,
		s.ConferenceID, s.Name, s.Highlights, s.Speaker, nullInt(s.Duration),
		pq.Array(s.TypeOfSession), nullTime(s.Date), nullTime(s.StartTime),
		s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	q := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE id = $1
	`
	s, err := scanSession(r.DB.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	q := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE conference_id = $1
		ORDER BY name ASC
	`
	return r.list(ctx, q, conferenceID)
}

func (r *sessionRepository) ListByConferenceAndType(ctx context.Context, conferenceID, sessionType string) ([]*domain.Session, error) {
	q := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE conference_id = $1 AND $2 = ANY(type_of_session)
		ORDER BY name ASC
	`
	return r.list(ctx, q, conferenceID, sessionType)
}

func (r *sessionRepository) ListBySpeaker(ctx context.Context, speaker string) ([]*domain.Session, error) {
	q := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE speaker = $1
		ORDER BY name ASC
	`
	return r.list(ctx, q, speaker)
}

func (r *sessionRepository) ListByConferenceAndSpeaker(ctx context.Context, conferenceID, speaker string) ([]*domain.Session, error) {
	q := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE conference_id = $1 AND speaker = $2
		ORDER BY name ASC
	`
	return r.list(ctx, q, conferenceID, speaker)
}

func (r *sessionRepository) ListShort(ctx context.Context, maxMinutes int) ([]*domain.Session, error) {
	q := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE duration IS NOT NULL AND duration <= $1
		ORDER BY name ASC
	`
	return r.list(ctx, q, maxMinutes)
}

func (r *sessionRepository) ListOfInterest(ctx context.Context, excludeType, cutoff string) ([]*domain.Session, error) {
	q := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE NOT ($1 = ANY(type_of_session))
			AND start_time IS NOT NULL AND start_time <= $2
		ORDER BY name ASC
	`
	return r.list(ctx, q, excludeType, cutoff)
}

func (r *sessionRepository) Query(ctx context.Context, spec *query.Spec) ([]*domain.Session, error) {
	where, orderBy, args := renderSpec(spec, 1)
	q := `SELECT ` + sessionColumns + ` FROM sessions`
	if where != "" {
		q += " WHERE " + where
	}
	q += fmt.Sprintf(" ORDER BY %s ASC", orderBy)
	return r.list(ctx, q, args...)
}

func (r *sessionRepository) list(ctx context.Context, q string, args ...any) ([]*domain.Session, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
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

func scanSession(row rowScanner) (*domain.Session, error) {
	s := &domain.Session{}
	var types pq.StringArray
	var durationNull sql.NullInt64
	var dateNull, startNull sql.NullTime
	err := row.Scan(
		&s.ID, &s.ConferenceID, &s.Name, &s.Highlights, &s.Speaker,
		&durationNull, &types, &dateNull, &startNull, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.TypeOfSession = types
	if durationNull.Valid {
		d := int(durationNull.Int64)
		s.Duration = &d
	}
	if dateNull.Valid {
		s.Date = &dateNull.Time
	}
	if startNull.Valid {
		s.StartTime = &startNull.Time
	}
	return s, nil
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
