package domain

import (
	"context"
	"time"

	"conferencecentral/internal/query"
)

// Defaults applied when a conference is created without these fields.
var (
	DefaultCity   = "Default City"
	DefaultTopics = []string{"Default", "Topic"}
)

// Conference represents a conference owned by an organizer profile.
// swagger:model Conference
type Conference struct {
	ID             string     `json:"id"`
	OrganizerID    string     `json:"organizer_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Topics         []string   `json:"topics"`
	City           string     `json:"city"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Month          int        `json:"month"`
	MaxAttendees   int        `json:"max_attendees"`
	SeatsAvailable int        `json:"seats_available"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ConferenceInput carries the fields a caller may set on creation.
type ConferenceInput struct {
	Name         string
	Description  string
	Topics       []string
	City         string
	StartDate    *time.Time
	EndDate      *time.Time
	MaxAttendees int
}

// ConferenceUpdate carries a partial update; nil fields are left untouched.
type ConferenceUpdate struct {
	Name         *string
	Description  *string
	Topics       []string
	City         *string
	StartDate    *time.Time
	EndDate      *time.Time
	MaxAttendees *int
}

// ConferenceRepository defines the interface for conference storage.
type ConferenceRepository interface {
	Create(ctx context.Context, conf *Conference) error
	GetByID(ctx context.Context, id string) (*Conference, error)
	ListByOrganizerID(ctx context.Context, organizerID string) ([]*Conference, error)
	ListByIDs(ctx context.Context, ids []string) ([]*Conference, error)
	ListByName(ctx context.Context, name string) ([]*Conference, error)
	// ListNearlySoldOut returns conferences with 0 < seats_available <= maxSeats,
	// ordered by name.
	ListNearlySoldOut(ctx context.Context, maxSeats int) ([]*Conference, error)
	Update(ctx context.Context, conf *Conference) error
	// Query executes a validated filter spec and returns matching
	// conferences in the spec's order.
	Query(ctx context.Context, spec *query.Spec) ([]*Conference, error)
}

// ConferenceService defines the business logic for conference management.
type ConferenceService interface {
	// Create creates a conference owned by organizerID, applying defaults
	// for missing city/topics, deriving month from the start date, and
	// initializing seats from max attendees. The organizer receives a
	// confirmation email asynchronously.
	Create(ctx context.Context, organizerID string, input ConferenceInput) (*Conference, error)
	// Update applies a partial update. Only the organizer may update;
	// changing the start date re-derives month.
	Update(ctx context.Context, userID, conferenceID string, upd ConferenceUpdate) (*Conference, error)
	Get(ctx context.Context, conferenceID string) (*Conference, error)
	ListCreatedBy(ctx context.Context, organizerID string) ([]*Conference, error)
	// Query validates the clauses per the filter rules and returns matching
	// conferences.
	Query(ctx context.Context, clauses []query.Clause) ([]*Conference, error)
	ListByKeyword(ctx context.Context, name string) ([]*Conference, error)
}
