package controllers

import (
	"time"

	"conferencecentral/internal/domain"
)

// clockLayout is the wire format for session start times in responses.
// Requests accept HH:MM; responses carry seconds.
const clockLayout = "15:04:05"

// ConferenceResponse is the wire form of a conference. Dates serialize
// as YYYY-MM-DD strings; an unset date is omitted.
type ConferenceResponse struct {
	ID             string   `json:"id"`
	OrganizerID    string   `json:"organizer_id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Topics         []string `json:"topics"`
	City           string   `json:"city"`
	StartDate      string   `json:"start_date,omitempty"`
	EndDate        string   `json:"end_date,omitempty"`
	Month          int      `json:"month"`
	MaxAttendees   int      `json:"max_attendees"`
	SeatsAvailable int      `json:"seats_available"`
}

// SessionResponse is the wire form of a session. Date serializes as
// YYYY-MM-DD and start_time as HH:MM:SS; unset values are omitted.
type SessionResponse struct {
	ID            string   `json:"id"`
	ConferenceID  string   `json:"conference_id"`
	Name          string   `json:"name"`
	Highlights    string   `json:"highlights"`
	Speaker       string   `json:"speaker"`
	Duration      *int     `json:"duration"`
	TypeOfSession []string `json:"type_of_session"`
	Date          string   `json:"date,omitempty"`
	StartTime     string   `json:"start_time,omitempty"`
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(clockLayout)
}

func toConferenceResponse(conf *domain.Conference) *ConferenceResponse {
	return &ConferenceResponse{
		ID:             conf.ID,
		OrganizerID:    conf.OrganizerID,
		Name:           conf.Name,
		Description:    conf.Description,
		Topics:         conf.Topics,
		City:           conf.City,
		StartDate:      formatDate(conf.StartDate),
		EndDate:        formatDate(conf.EndDate),
		Month:          conf.Month,
		MaxAttendees:   conf.MaxAttendees,
		SeatsAvailable: conf.SeatsAvailable,
	}
}

func toConferenceResponses(confs []*domain.Conference) []*ConferenceResponse {
	out := make([]*ConferenceResponse, 0, len(confs))
	for _, conf := range confs {
		out = append(out, toConferenceResponse(conf))
	}
	return out
}

func toSessionResponse(sess *domain.Session) *SessionResponse {
	return &SessionResponse{
		ID:            sess.ID,
		ConferenceID:  sess.ConferenceID,
		Name:          sess.Name,
		Highlights:    sess.Highlights,
		Speaker:       sess.Speaker,
		Duration:      sess.Duration,
		TypeOfSession: sess.TypeOfSession,
		Date:          formatDate(sess.Date),
		StartTime:     formatClock(sess.StartTime),
	}
}

func toSessionResponses(sessions []*domain.Session) []*SessionResponse {
	out := make([]*SessionResponse, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, toSessionResponse(sess))
	}
	return out
}
