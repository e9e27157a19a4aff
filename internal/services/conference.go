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

type conferenceService struct {
	conferenceRepo domain.ConferenceRepository
	profileRepo    domain.ProfileRepository
	emailService   domain.EmailService
	taskQueue      domain.TaskQueue
	logger         *slog.Logger
}

// NewConferenceService creates a ConferenceService with the given
// repositories and collaborators. emailService and taskQueue may be nil in
// tests; the confirmation email is then skipped.
func NewConferenceService(
	conferenceRepo domain.ConferenceRepository,
	profileRepo domain.ProfileRepository,
	emailService domain.EmailService,
	taskQueue domain.TaskQueue,
	logger *slog.Logger,
) domain.ConferenceService {
	return &conferenceService{
		conferenceRepo: conferenceRepo,
		profileRepo:    profileRepo,
		emailService:   emailService,
		taskQueue:      taskQueue,
		logger:         logger,
	}
}

func (s *conferenceService) Create(ctx context.Context, organizerID string, input domain.ConferenceInput) (*domain.Conference, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: conference name is required", domain.ErrInvalidInput)
	}

	now := time.Now()
	conf := &domain.Conference{
		OrganizerID:  organizerID,
		Name:         input.Name,
		Description:  input.Description,
		Topics:       input.Topics,
		City:         input.City,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		MaxAttendees: input.MaxAttendees,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if conf.City == "" {
		conf.City = domain.DefaultCity
	}
	if len(conf.Topics) == 0 {
		conf.Topics = append([]string(nil), domain.DefaultTopics...)
	}
	if conf.StartDate != nil {
		conf.Month = int(conf.StartDate.Month())
	}
	if conf.MaxAttendees > 0 {
		conf.SeatsAvailable = conf.MaxAttendees
	}

	if err := s.conferenceRepo.Create(ctx, conf); err != nil {
		return nil, fmt.Errorf("create conference: %w", err)
	}

	s.dispatchConfirmation(organizerID, conf)
	return conf, nil
}

// dispatchConfirmation enqueues the confirmation email; the request never
// blocks on delivery and a failure to enqueue is only logged.
func (s *conferenceService) dispatchConfirmation(organizerID string, conf *domain.Conference) {
	if s.emailService == nil || s.taskQueue == nil {
		return
	}
	data := &domain.ConferenceConfirmationEmailData{
		ConferenceName: conf.Name,
		City:           conf.City,
		StartDate:      formatDate(conf.StartDate),
		EndDate:        formatDate(conf.EndDate),
		MaxAttendees:   conf.MaxAttendees,
	}
	err := s.taskQueue.Enqueue("conference_confirmation_email", func(ctx context.Context) error {
		// Resolve the organizer's email at send time.
		prof, err := s.profileRepo.GetByID(ctx, organizerID)
		if err != nil {
			return fmt.Errorf("get organizer profile: %w", err)
		}
		data.Email = prof.MainEmail
		return s.emailService.SendConferenceConfirmation(ctx, data)
	})
	if err != nil && s.logger != nil {
		s.logger.Warn("enqueue confirmation email failed", "conference", conf.ID, "err", err)
	}
}

func (s *conferenceService) Update(ctx context.Context, userID, conferenceID string, upd domain.ConferenceUpdate) (*domain.Conference, error) {
	conf, err := s.conferenceRepo.GetByID(ctx, conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	if conf.OrganizerID != userID {
		return nil, domain.ErrForbidden
	}

	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return nil, fmt.Errorf("%w: conference name is required", domain.ErrInvalidInput)
		}
		conf.Name = *upd.Name
	}
	if upd.Description != nil {
		conf.Description = *upd.Description
	}
	if len(upd.Topics) > 0 {
		conf.Topics = upd.Topics
	}
	if upd.City != nil {
		conf.City = *upd.City
	}
	if upd.StartDate != nil {
		conf.StartDate = upd.StartDate
		conf.Month = int(upd.StartDate.Month())
	}
	if upd.EndDate != nil {
		conf.EndDate = upd.EndDate
	}
	if upd.MaxAttendees != nil {
		conf.MaxAttendees = *upd.MaxAttendees
	}
	conf.UpdatedAt = time.Now()

	if err := s.conferenceRepo.Update(ctx, conf); err != nil {
		return nil, fmt.Errorf("update conference: %w", err)
	}
	return conf, nil
}

func (s *conferenceService) Get(ctx context.Context, conferenceID string) (*domain.Conference, error) {
	conf, err := s.conferenceRepo.GetByID(ctx, conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	return conf, nil
}

func (s *conferenceService) ListCreatedBy(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	confs, err := s.conferenceRepo.ListByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	return confs, nil
}

func (s *conferenceService) Query(ctx context.Context, clauses []query.Clause) ([]*domain.Conference, error) {
	spec, err := query.Build(query.TargetConference, clauses)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	confs, err := s.conferenceRepo.Query(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("query conferences: %w", err)
	}
	return confs, nil
}

func (s *conferenceService) ListByKeyword(ctx context.Context, name string) ([]*domain.Conference, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: keyword is required", domain.ErrInvalidInput)
	}
	confs, err := s.conferenceRepo.ListByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list conferences by name: %w", err)
	}
	return confs, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
