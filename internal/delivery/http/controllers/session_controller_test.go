package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"conferencecentral/internal/delivery/http/middleware"
	"conferencecentral/internal/domain"
	"conferencecentral/internal/query"
)

type mockSessionService struct {
	session  *domain.Session
	sessions []*domain.Session
	gotInput domain.SessionInput
	err      error
}

func (m *mockSessionService) Create(ctx context.Context, userID string, input domain.SessionInput) (*domain.Session, error) {
	m.gotInput = input
	if m.err != nil {
		return nil, m.err
	}
	return m.session, nil
}

func (m *mockSessionService) ListByConference(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sessions, nil
}

func (m *mockSessionService) ListByConferenceAndType(ctx context.Context, conferenceID, sessionType string) ([]*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sessions, nil
}

func (m *mockSessionService) ListBySpeaker(ctx context.Context, speaker string) ([]*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sessions, nil
}

func (m *mockSessionService) ListShort(ctx context.Context) ([]*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sessions, nil
}

func (m *mockSessionService) ListOfInterest(ctx context.Context) ([]*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sessions, nil
}

func (m *mockSessionService) Query(ctx context.Context, clauses []query.Clause) ([]*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sessions, nil
}

func TestSessionController_Create_Success(t *testing.T) {
	svc := &mockSessionService{session: &domain.Session{ID: "s1", Name: "Keynote"}}
	ctrl := NewSessionController(testLogger(), svc)

	body := `{"conference_id":"c1","name":"Keynote","speaker":"Alice","duration":45,"type_of_session":["lecture"],"date":"2026-09-01","start_time":"09:30"}`
	w := httptest.NewRecorder()
	ctrl.CreateSession(w, authedJSONRequest(http.MethodPost, "/session", body))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	if svc.gotInput.Speaker != "Alice" || svc.gotInput.ConferenceID != "c1" {
		t.Fatalf("unexpected input passed to service: %+v", svc.gotInput)
	}
	if svc.gotInput.Date.Format("2006-01-02") != "2026-09-01" {
		t.Fatalf("date not parsed: %v", svc.gotInput.Date)
	}
	if svc.gotInput.StartTime.Format("15:04") != "09:30" {
		t.Fatalf("start time not parsed: %v", svc.gotInput.StartTime)
	}
}

func TestSessionController_Create_MissingFields(t *testing.T) {
	ctrl := NewSessionController(testLogger(), &mockSessionService{})

	w := httptest.NewRecorder()
	ctrl.CreateSession(w, authedJSONRequest(http.MethodPost, "/session", `{"conference_id":"c1"}`))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestSessionController_Create_BadStartTime(t *testing.T) {
	ctrl := NewSessionController(testLogger(), &mockSessionService{})

	body := `{"conference_id":"c1","name":"Keynote","date":"2026-09-01","start_time":"9:30pm"}`
	w := httptest.NewRecorder()
	ctrl.CreateSession(w, authedJSONRequest(http.MethodPost, "/session", body))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestSessionController_Create_NotOrganizer(t *testing.T) {
	ctrl := NewSessionController(testLogger(), &mockSessionService{err: domain.ErrForbidden})

	body := `{"conference_id":"c1","name":"Keynote","date":"2026-09-01","start_time":"09:30"}`
	w := httptest.NewRecorder()
	ctrl.CreateSession(w, authedJSONRequest(http.MethodPost, "/session", body))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestSessionController_GetConferenceSessions_EmptyIsArray(t *testing.T) {
	ctrl := NewSessionController(testLogger(), &mockSessionService{})

	req := httptest.NewRequest(http.MethodGet, "/getConferenceSessions/c1", nil)
	req.SetPathValue("conferenceID", "c1")
	req = req.WithContext(middleware.SetUser(req.Context(), "u1", "u1@example.com"))
	w := httptest.NewRecorder()
	ctrl.GetConferenceSessions(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, `"data":[]`) {
		t.Fatalf("expected empty array data, got %s", body)
	}
}

func TestSessionController_QuerySessions_InvalidFilters(t *testing.T) {
	ctrl := NewSessionController(testLogger(), &mockSessionService{err: domain.ErrInvalidInput})

	body := `{"filters":[{"field":"DURATION","operator":"BETWEEN","value":"10"}]}`
	w := httptest.NewRecorder()
	ctrl.QuerySessions(w, authedJSONRequest(http.MethodPost, "/querySessions", body))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestSessionController_Create_FormatsDateAndStartTime(t *testing.T) {
	date := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	start := time.Date(0, 1, 1, 19, 0, 0, 0, time.UTC)
	duration := 45
	svc := &mockSessionService{session: &domain.Session{
		ID:           "s1",
		ConferenceID: "c1",
		Name:         "Keynote",
		Duration:     &duration,
		Date:         &date,
		StartTime:    &start,
	}}
	ctrl := NewSessionController(testLogger(), svc)

	body := `{"conference_id":"c1","name":"Keynote","duration":45,"date":"2026-06-15","start_time":"19:00"}`
	w := httptest.NewRecorder()
	ctrl.CreateSession(w, authedJSONRequest(http.MethodPost, "/session", body))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	got := w.Body.String()
	if !strings.Contains(got, `"date":"2026-06-15"`) {
		t.Fatalf("expected date as YYYY-MM-DD, got %s", got)
	}
	if !strings.Contains(got, `"start_time":"19:00:00"`) {
		t.Fatalf("expected start_time as HH:MM:SS, got %s", got)
	}
	if strings.Contains(got, "T00:00:00Z") {
		t.Fatalf("timestamp leaked into response: %s", got)
	}
}

func TestSessionController_List_OmitsUnsetDateAndStartTime(t *testing.T) {
	svc := &mockSessionService{sessions: []*domain.Session{
		{ID: "s1", ConferenceID: "c1", Name: "TBD"},
	}}
	ctrl := NewSessionController(testLogger(), svc)

	w := httptest.NewRecorder()
	ctrl.GetShortSessions(w, authedJSONRequest(http.MethodGet, "/sessions/short", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	got := w.Body.String()
	if strings.Contains(got, `"date"`) || strings.Contains(got, `"start_time"`) {
		t.Fatalf("expected unset date and start_time to be omitted, got %s", got)
	}
}
