package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"conferencecentral/internal/domain"
	"conferencecentral/internal/query"
)

func TestSessionService_Create(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		input   domain.SessionInput
		wantErr error
	}{
		{
			name:    "missing name",
			userID:  "org-1",
			input:   domain.SessionInput{ConferenceID: "c1"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "missing conference id",
			userID:  "org-1",
			input:   domain.SessionInput{Name: "Keynote"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "conference not found",
			userID:  "org-1",
			input:   domain.SessionInput{ConferenceID: "missing", Name: "Keynote"},
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "not organizer",
			userID:  "intruder",
			input:   domain.SessionInput{ConferenceID: "c1", Name: "Keynote"},
			wantErr: domain.ErrForbidden,
		},
		{
			name:   "created",
			userID: "org-1",
			input:  domain.SessionInput{ConferenceID: "c1", Name: "Keynote", Speaker: "Alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confRepo := &mockConferenceRepository{conferences: map[string]*domain.Conference{
				"c1": {ID: "c1", OrganizerID: "org-1"},
			}}
			sessRepo := &mockSessionRepository{}
			svc := NewSessionService(sessRepo, confRepo, nil, nil, nil)

			sess, err := svc.Create(context.Background(), tt.userID, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sess.ID == "" {
				t.Error("expected session id assigned")
			}
			if len(sessRepo.created) != 1 {
				t.Fatalf("expected one created session, got %d", len(sessRepo.created))
			}
		})
	}
}

func TestSessionService_Create_ZeroTimesStoredAsAbsent(t *testing.T) {
	confRepo := &mockConferenceRepository{conferences: map[string]*domain.Conference{
		"c1": {ID: "c1", OrganizerID: "org-1"},
	}}
	sessRepo := &mockSessionRepository{}
	svc := NewSessionService(sessRepo, confRepo, nil, nil, nil)

	sess, err := svc.Create(context.Background(), "org-1", domain.SessionInput{
		ConferenceID: "c1",
		Name:         "Keynote",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Date != nil || sess.StartTime != nil {
		t.Errorf("expected absent date and start time, got %v / %v", sess.Date, sess.StartTime)
	}

	when := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	start := time.Date(0, 1, 1, 10, 30, 0, 0, time.UTC)
	sess, err = svc.Create(context.Background(), "org-1", domain.SessionInput{
		ConferenceID: "c1",
		Name:         "Panel",
		Date:         when,
		StartTime:    start,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Date == nil || !sess.Date.Equal(when) {
		t.Errorf("expected date kept, got %v", sess.Date)
	}
	if sess.StartTime == nil || !sess.StartTime.Equal(start) {
		t.Errorf("expected start time kept, got %v", sess.StartTime)
	}
}

func TestSessionService_Create_DispatchesFeaturedSpeaker(t *testing.T) {
	confRepo := &mockConferenceRepository{conferences: map[string]*domain.Conference{
		"c1": {ID: "c1", OrganizerID: "org-1"},
	}}
	sessRepo := &mockSessionRepository{
		byConfAndSpeaker: map[string][]*domain.Session{
			"c1:Alice": {{Name: "Keynote"}, {Name: "Panel"}},
		},
	}
	cache := newMockCache()
	featured := NewFeaturedSpeakerService(sessRepo, cache, 2, nil)
	queue := &syncTaskQueue{}
	svc := NewSessionService(sessRepo, confRepo, featured, queue, nil)

	_, err := svc.Create(context.Background(), "org-1", domain.SessionInput{
		ConferenceID: "c1",
		Name:         "Workshop",
		Speaker:      "Alice",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queue.names) != 1 || queue.names[0] != "featured_speaker_evaluation" {
		t.Fatalf("expected one evaluation task, got %v", queue.names)
	}
	got := cache.values[domain.CacheKeyFeaturedSpeaker]
	want := "Featured Speaker is Alice presenting sessions Keynote, Panel"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSessionService_Create_NoSpeakerNoDispatch(t *testing.T) {
	confRepo := &mockConferenceRepository{conferences: map[string]*domain.Conference{
		"c1": {ID: "c1", OrganizerID: "org-1"},
	}}
	sessRepo := &mockSessionRepository{}
	queue := &syncTaskQueue{}
	featured := NewFeaturedSpeakerService(sessRepo, newMockCache(), 2, nil)
	svc := NewSessionService(sessRepo, confRepo, featured, queue, nil)

	_, err := svc.Create(context.Background(), "org-1", domain.SessionInput{
		ConferenceID: "c1",
		Name:         "Keynote",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queue.names) != 0 {
		t.Errorf("expected no tasks without a speaker, got %v", queue.names)
	}
}

func TestSessionService_ListByConference_NotFound(t *testing.T) {
	svc := NewSessionService(&mockSessionRepository{}, &mockConferenceRepository{}, nil, nil, nil)

	_, err := svc.ListByConference(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSessionService_ListByConferenceAndType_RequiresType(t *testing.T) {
	svc := NewSessionService(&mockSessionRepository{}, &mockConferenceRepository{}, nil, nil, nil)

	_, err := svc.ListByConferenceAndType(context.Background(), "c1", "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSessionService_ListBySpeaker_RequiresSpeaker(t *testing.T) {
	svc := NewSessionService(&mockSessionRepository{}, &mockConferenceRepository{}, nil, nil, nil)

	_, err := svc.ListBySpeaker(context.Background(), "  ")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSessionService_Query_InvalidFilter(t *testing.T) {
	svc := NewSessionService(&mockSessionRepository{}, &mockConferenceRepository{}, nil, nil, nil)

	clauses := []query.Clause{{Field: "NAME", Operator: "BETWEEN", Value: "x"}}
	_, err := svc.Query(context.Background(), clauses)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
