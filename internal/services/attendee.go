package services

import (
	"context"
	"errors"
	"fmt"

	"conferencecentral/internal/domain"
)

type attendeeService struct {
	conferenceRepo   domain.ConferenceRepository
	sessionRepo      domain.SessionRepository
	registrationRepo domain.RegistrationRepository
	wishlistRepo     domain.WishlistRepository
}

// NewAttendeeService creates an AttendeeService with the given repositories.
func NewAttendeeService(
	conferenceRepo domain.ConferenceRepository,
	sessionRepo domain.SessionRepository,
	registrationRepo domain.RegistrationRepository,
	wishlistRepo domain.WishlistRepository,
) domain.AttendeeService {
	return &attendeeService{
		conferenceRepo:   conferenceRepo,
		sessionRepo:      sessionRepo,
		registrationRepo: registrationRepo,
		wishlistRepo:     wishlistRepo,
	}
}

func (s *attendeeService) RegisterForConference(ctx context.Context, conferenceID, userID string) (bool, error) {
	// The repository runs the read-check-write protocol in one transaction;
	// existence, duplicate, and seat checks all happen under the row lock.
	_, err := s.registrationRepo.Register(ctx, conferenceID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound),
			errors.Is(err, domain.ErrConflict),
			errors.Is(err, domain.ErrNoSeats):
			return false, err
		}
		return false, fmt.Errorf("register for conference: %w", err)
	}
	return true, nil
}

func (s *attendeeService) UnregisterFromConference(ctx context.Context, conferenceID, userID string) (bool, error) {
	removed, err := s.registrationRepo.Unregister(ctx, conferenceID, userID)
	if err != nil {
		return false, fmt.Errorf("unregister from conference: %w", err)
	}
	return removed, nil
}

func (s *attendeeService) ListConferencesToAttend(ctx context.Context, userID string) ([]*domain.Conference, error) {
	regs, err := s.registrationRepo.ListByProfileID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if len(regs) == 0 {
		return []*domain.Conference{}, nil
	}
	ids := make([]string, 0, len(regs))
	for _, reg := range regs {
		ids = append(ids, reg.ConferenceID)
	}
	confs, err := s.conferenceRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list attended conferences: %w", err)
	}
	return confs, nil
}

func (s *attendeeService) AddSessionToWishlist(ctx context.Context, sessionID, userID string) (bool, error) {
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("get session: %w", err)
	}
	if err := s.wishlistRepo.Add(ctx, sessionID, userID); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return false, domain.ErrConflict
		}
		return false, fmt.Errorf("add session to wishlist: %w", err)
	}
	return true, nil
}

func (s *attendeeService) RemoveSessionFromWishlist(ctx context.Context, sessionID, userID string) (bool, error) {
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("get session: %w", err)
	}
	removed, err := s.wishlistRepo.Remove(ctx, sessionID, userID)
	if err != nil {
		return false, fmt.Errorf("remove session from wishlist: %w", err)
	}
	return removed, nil
}

func (s *attendeeService) ListWishlistSessions(ctx context.Context, userID string) ([]*domain.Session, error) {
	sessions, err := s.wishlistRepo.ListSessionsByProfileID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist sessions: %w", err)
	}
	return sessions, nil
}
