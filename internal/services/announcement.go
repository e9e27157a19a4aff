package services

import (
	"context"
	"fmt"
	"strings"

	"conferencecentral/internal/domain"
)

const (
	// nearlySoldOutSeats is the seat threshold below which a conference
	// makes the announcement.
	nearlySoldOutSeats = 5

	announcementTemplate = "Last chance to attend! The following conferences are nearly sold out: %s"
)

type announcementService struct {
	conferenceRepo domain.ConferenceRepository
	cache          domain.Cache
}

// NewAnnouncementService creates an AnnouncementService.
func NewAnnouncementService(conferenceRepo domain.ConferenceRepository, cache domain.Cache) domain.AnnouncementService {
	return &announcementService{
		conferenceRepo: conferenceRepo,
		cache:          cache,
	}
}

func (s *announcementService) Refresh(ctx context.Context) (string, error) {
	confs, err := s.conferenceRepo.ListNearlySoldOut(ctx, nearlySoldOutSeats)
	if err != nil {
		return "", fmt.Errorf("list nearly sold out conferences: %w", err)
	}

	if len(confs) == 0 {
		// Absence, not an empty string; reads normalize either way.
		if err := s.cache.Delete(ctx, domain.CacheKeyAnnouncement); err != nil {
			return "", fmt.Errorf("clear announcement: %w", err)
		}
		return "", nil
	}

	names := make([]string, 0, len(confs))
	for _, conf := range confs {
		names = append(names, conf.Name)
	}
	announcement := fmt.Sprintf(announcementTemplate, strings.Join(names, ", "))
	if err := s.cache.Set(ctx, domain.CacheKeyAnnouncement, announcement); err != nil {
		return "", fmt.Errorf("publish announcement: %w", err)
	}
	return announcement, nil
}

func (s *announcementService) Announcement(ctx context.Context) (string, error) {
	value, ok, err := s.cache.Get(ctx, domain.CacheKeyAnnouncement)
	if err != nil {
		return "", fmt.Errorf("get announcement: %w", err)
	}
	if !ok {
		return "", nil
	}
	return value, nil
}
