package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"conferencecentral/internal/domain"
)

type featuredSpeakerService struct {
	sessionRepo domain.SessionRepository
	cache       domain.Cache
	minSessions int
	logger      *slog.Logger
}

// NewFeaturedSpeakerService creates a FeaturedSpeakerService. minSessions is
// the number of sessions a speaker needs within one conference to be
// featured; values below 1 are clamped to the default of 2.
func NewFeaturedSpeakerService(sessionRepo domain.SessionRepository, cache domain.Cache, minSessions int, logger *slog.Logger) domain.FeaturedSpeakerService {
	if minSessions < 1 {
		minSessions = 2
	}
	return &featuredSpeakerService{
		sessionRepo: sessionRepo,
		cache:       cache,
		minSessions: minSessions,
		logger:      logger,
	}
}

func (s *featuredSpeakerService) Evaluate(ctx context.Context, conferenceID, speaker string) error {
	if speaker == "" {
		return nil
	}
	sessions, err := s.sessionRepo.ListByConferenceAndSpeaker(ctx, conferenceID, speaker)
	if err != nil {
		return fmt.Errorf("list speaker sessions: %w", err)
	}
	if len(sessions) < s.minSessions {
		return nil
	}

	names := make([]string, 0, len(sessions))
	for _, sess := range sessions {
		names = append(names, sess.Name)
	}
	summary := "Featured Speaker is " + speaker + " presenting sessions " + strings.Join(names, ", ")

	// Last writer wins across conferences; a later evaluation for another
	// conference simply overwrites the slot.
	if err := s.cache.Set(ctx, domain.CacheKeyFeaturedSpeaker, summary); err != nil {
		if s.logger != nil {
			s.logger.Warn("publish featured speaker failed", "conference", conferenceID, "err", err)
		}
		return nil
	}
	return nil
}

func (s *featuredSpeakerService) FeaturedSpeaker(ctx context.Context) (string, error) {
	value, ok, err := s.cache.Get(ctx, domain.CacheKeyFeaturedSpeaker)
	if err != nil {
		return "", fmt.Errorf("get featured speaker: %w", err)
	}
	if !ok {
		return "", nil
	}
	return value, nil
}
