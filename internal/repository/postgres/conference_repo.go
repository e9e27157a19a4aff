package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"conferencecentral/internal/domain"
	"conferencecentral/internal/query"
)

const conferenceColumns = `id, organizer_id, name, description, topics, city,
		start_date, end_date, month, max_attendees, seats_available, created_at, updated_at`

type conferenceRepository struct {
	DB *sql.DB
}

func NewConferenceRepository(db *sql.DB) domain.ConferenceRepository {
	return &conferenceRepository{
		DB: db,
	}
}

func (r *conferenceRepository) Create(ctx context.Context, c *domain.Conference) error {
	q := `
		INSERT INTO conferences (organizer_id, name, description, topics, city,
			start_date, end_date, month, max_attendees, seats_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, q,
		c.OrganizerID, c.Name, c.Description, pq.Array(c.Topics), c.City,
		nullTime(c.StartDate), nullTime(c.EndDate), c.Month,
		c.MaxAttendees, c.SeatsAvailable, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
}

func (r *conferenceRepository) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	q := `
		SELECT ` + conferenceColumns + `
		FROM conferences
		WHERE id = $1
	`
	c, err := scanConference(r.DB.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *conferenceRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	q := `
		SELECT ` + conferenceColumns + `
		FROM conferences
		WHERE organizer_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, q, organizerID)
}

func (r *conferenceRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Conference, error) {
	if len(ids) == 0 {
		return []*domain.Conference{}, nil
	}
	q := `
		SELECT ` + conferenceColumns + `
		FROM conferences
		WHERE id = ANY($1)
		ORDER BY name ASC
	`
	return r.list(ctx, q, pq.Array(ids))
}

func (r *conferenceRepository) ListByName(ctx context.Context, name string) ([]*domain.Conference, error) {
	q := `
		SELECT ` + conferenceColumns + `
		FROM conferences
		WHERE name = $1
		ORDER BY name ASC
	`
	return r.list(ctx, q, name)
}

func (r *conferenceRepository) ListNearlySoldOut(ctx context.Context, maxSeats int) ([]*domain.Conference, error) {
	q := `
		SELECT ` + conferenceColumns + `
		FROM conferences
		WHERE seats_available > 0 AND seats_available <= $1
		ORDER BY name ASC
	`
	return r.list(ctx, q, maxSeats)
}

func (r *conferenceRepository) Update(ctx context.Context, c *domain.Conference) error {
	q := `
		UPDATE conferences
		SET name = $2, description = $3, topics = $4, city = $5, start_date = $6,
			end_date = $7, month = $8, max_attendees = $9, seats_available = $10,
			updated_at = $11
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, q,
		c.ID, c.Name, c.Description, pq.Array(c.Topics), c.City,
		nullTime(c.StartDate), nullTime(c.EndDate), c.Month,
		c.MaxAttendees, c.SeatsAvailable, c.UpdatedAt,
	)
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

func (r *conferenceRepository) Query(ctx context.Context, spec *query.Spec) ([]*domain.Conference, error) {
	where, orderBy, args := renderSpec(spec, 1)
	q := `SELECT ` + conferenceColumns + ` FROM conferences`
	if where != "" {
		q += " WHERE " + where
	}
	q += fmt.Sprintf(" ORDER BY %s ASC", orderBy)
	return r.list(ctx, q, args...)
}

func (r *conferenceRepository) list(ctx context.Context, q string, args ...any) ([]*domain.Conference, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	confs := make([]*domain.Conference, 0)
	for rows.Next() {
		c, err := scanConference(rows)
		if err != nil {
			return nil, err
		}
		confs = append(confs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return confs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConference(row rowScanner) (*domain.Conference, error) {
	c := &domain.Conference{}
	var topics pq.StringArray
	var startNull, endNull sql.NullTime
	err := row.Scan(
		&c.ID, &c.OrganizerID, &c.Name, &c.Description, &topics, &c.City,
		&startNull, &endNull, &c.Month, &c.MaxAttendees, &c.SeatsAvailable,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Topics = topics
	if startNull.Valid {
		c.StartDate = &startNull.Time
	}
	if endNull.Valid {
		c.EndDate = &endNull.Time
	}
	return c, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
