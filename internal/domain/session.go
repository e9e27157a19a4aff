package domain

import (
	"context"
	"time"

	"conferencecentral/internal/query"
)

// Session represents a conference session or talk. Speaker is a free-text
// identifier, not a foreign key.
// swagger:model Session
type Session struct {
	ID            string     `json:"id"`
	ConferenceID  string     `json:"conference_id"`
	Name          string     `json:"name"`
	Highlights    string     `json:"highlights"`
	Speaker       string     `json:"speaker"`
	Duration      *int       `json:"duration"`
	TypeOfSession []string   `json:"type_of_session"`
	Date          *time.Time `json:"date"`
	StartTime     *time.Time `json:"start_time"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// SessionInput carries the fields a caller may set when creating a session.
type SessionInput struct {
	ConferenceID  string
	Name          string
	Highlights    string
	Speaker       string
	Duration      *int
	TypeOfSession []string
	Date          time.Time
	StartTime     time.Time
}

// SessionRepository defines the interface for session storage.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	ListByConferenceID(ctx context.Context, conferenceID string) ([]*Session, error)
	ListByConferenceAndType(ctx context.Context, conferenceID, sessionType string) ([]*Session, error)
	ListBySpeaker(ctx context.Context, speaker string) ([]*Session, error)
	ListByConferenceAndSpeaker(ctx context.Context, conferenceID, speaker string) ([]*Session, error)
	// ListShort returns sessions whose duration is present and at most
	// maxMinutes.
	ListShort(ctx context.Context, maxMinutes int) ([]*Session, error)
	// ListOfInterest returns sessions carrying none of excludeType's tags
	// whose start time is present and at or before cutoff (HH:MM:SS).
	ListOfInterest(ctx context.Context, excludeType, cutoff string) ([]*Session, error)
	Query(ctx context.Context, spec *query.Spec) ([]*Session, error)
}

// SessionService defines the business logic for sessions.
type SessionService interface {
	// Create creates a session within a conference. Only the conference
	// organizer may create sessions; a featured-speaker evaluation is
	// dispatched asynchronously when the session names a speaker.
	Create(ctx context.Context, userID string, input SessionInput) (*Session, error)
	ListByConference(ctx context.Context, conferenceID string) ([]*Session, error)
	ListByConferenceAndType(ctx context.Context, conferenceID, sessionType string) ([]*Session, error)
	ListBySpeaker(ctx context.Context, speaker string) ([]*Session, error)
	ListShort(ctx context.Context) ([]*Session, error)
	ListOfInterest(ctx context.Context) ([]*Session, error)
	Query(ctx context.Context, clauses []query.Clause) ([]*Session, error)
}
