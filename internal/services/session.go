package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"conferencecentral/internal/domain"
	"conferencecentral/internal/query"
)

const (
	// shortSessionMaxMinutes bounds what counts as a short session.
	shortSessionMaxMinutes = 30
	// Sessions of interest exclude workshops and anything starting after
	// the evening cutoff.
	excludedSessionType     = "workshop"
	sessionOfInterestCutoff = "19:00:00"
)

type sessionService struct {
	sessionRepo    domain.SessionRepository
	conferenceRepo domain.ConferenceRepository
	featured       domain.FeaturedSpeakerService
	taskQueue      domain.TaskQueue
	logger         *slog.Logger
}

// NewSessionService creates a SessionService. featured and taskQueue may be
// nil in tests; the featured-speaker evaluation is then skipped.
func NewSessionService(
	sessionRepo domain.SessionRepository,
	conferenceRepo domain.ConferenceRepository,
	featured domain.FeaturedSpeakerService,
	taskQueue domain.TaskQueue,
	logger *slog.Logger,
) domain.SessionService {
	return &sessionService{
		sessionRepo:    sessionRepo,
		conferenceRepo: conferenceRepo,
		featured:       featured,
		taskQueue:      taskQueue,
		logger:         logger,
	}
}

func (s *sessionService) Create(ctx context.Context, userID string, input domain.SessionInput) (*domain.Session, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: session name is required", domain.ErrInvalidInput)
	}
	if input.ConferenceID == "" {
		return nil, fmt.Errorf("%w: conference id is required", domain.ErrInvalidInput)
	}

	conf, err := s.conferenceRepo.GetByID(ctx, input.ConferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	if conf.OrganizerID != userID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	sess := &domain.Session{
		ConferenceID:  input.ConferenceID,
		Name:          input.Name,
		Highlights:    input.Highlights,
		Speaker:       input.Speaker,
		Duration:      input.Duration,
		TypeOfSession: input.TypeOfSession,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if !input.Date.IsZero() {
		date := input.Date
		sess.Date = &date
	}
	if !input.StartTime.IsZero() {
		start := input.StartTime
		sess.StartTime = &start
	}
	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.dispatchFeaturedSpeaker(conf.ID, sess.Speaker)
	return sess, nil
}

// dispatchFeaturedSpeaker enqueues an evaluation of the session's speaker;
// the request never blocks on it.
func (s *sessionService) dispatchFeaturedSpeaker(conferenceID, speaker string) {
	if s.featured == nil || s.taskQueue == nil || speaker == "" {
		return
	}
	err := s.taskQueue.Enqueue("featured_speaker_evaluation", func(ctx context.Context) error {
		return s.featured.Evaluate(ctx, conferenceID, speaker)
	})
	if err != nil && s.logger != nil {
		s.logger.Warn("enqueue featured-speaker evaluation failed",
			"conference", conferenceID, "speaker", speaker, "err", err)
	}
}

func (s *sessionService) ListByConference(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	if _, err := s.conferenceRepo.GetByID(ctx, conferenceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	sessions, err := s.sessionRepo.ListByConferenceID(ctx, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) ListByConferenceAndType(ctx context.Context, conferenceID, sessionType string) ([]*domain.Session, error) {
	if sessionType == "" {
		return nil, fmt.Errorf("%w: session type is required", domain.ErrInvalidInput)
	}
	if _, err := s.conferenceRepo.GetByID(ctx, conferenceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	sessions, err := s.sessionRepo.ListByConferenceAndType(ctx, conferenceID, sessionType)
	if err != nil {
		return nil, fmt.Errorf("list sessions by type: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) ListBySpeaker(ctx context.Context, speaker string) ([]*domain.Session, error) {
	if strings.TrimSpace(speaker) == "" {
		return nil, fmt.Errorf("%w: speaker is required", domain.ErrInvalidInput)
	}
	sessions, err := s.sessionRepo.ListBySpeaker(ctx, speaker)
	if err != nil {
		return nil, fmt.Errorf("list sessions by speaker: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) ListShort(ctx context.Context) ([]*domain.Session, error) {
	sessions, err := s.sessionRepo.ListShort(ctx, shortSessionMaxMinutes)
	if err != nil {
		return nil, fmt.Errorf("list short sessions: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) ListOfInterest(ctx context.Context) ([]*domain.Session, error) {
	sessions, err := s.sessionRepo.ListOfInterest(ctx, excludedSessionType, sessionOfInterestCutoff)
	if err != nil {
		return nil, fmt.Errorf("list sessions of interest: %w", err)
	}
	return sessions, nil
}

func (s *sessionService) Query(ctx context.Context, clauses []query.Clause) ([]*domain.Session, error) {
	spec, err := query.Build(query.TargetSession, clauses)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	sessions, err := s.sessionRepo.Query(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	return sessions, nil
}
