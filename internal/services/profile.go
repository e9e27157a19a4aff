package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

type profileService struct {
	profileRepo domain.ProfileRepository
}

// NewProfileService creates a ProfileService with the given repository.
func NewProfileService(profileRepo domain.ProfileRepository) domain.ProfileService {
	return &profileService{profileRepo: profileRepo}
}

// GetOrCreate implements the lazy profile: the first authenticated access
// creates the record with a display name derived from the email.
func (s *profileService) GetOrCreate(ctx context.Context, userID, email string) (*domain.Profile, error) {
	prof, err := s.profileRepo.GetByID(ctx, userID)
	if err == nil {
		return prof, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	prof = domain.NewProfile(userID, displayNameFromEmail(email), email, time.Now())
	if err := s.profileRepo.Create(ctx, prof); err != nil {
		// A concurrent first access may have created it already.
		if errors.Is(err, domain.ErrConflict) {
			return s.profileRepo.GetByID(ctx, userID)
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return prof, nil
}

func (s *profileService) Save(ctx context.Context, userID, email string, upd domain.ProfileUpdate) (*domain.Profile, error) {
	prof, err := s.GetOrCreate(ctx, userID, email)
	if err != nil {
		return nil, err
	}

	changed := false
	if name := strings.TrimSpace(upd.DisplayName); name != "" {
		prof.DisplayName = name
		changed = true
	}
	if upd.TeeShirtSize != "" {
		if !upd.TeeShirtSize.Valid() {
			return nil, fmt.Errorf("%w: unknown tee shirt size %q", domain.ErrInvalidInput, upd.TeeShirtSize)
		}
		prof.TeeShirtSize = upd.TeeShirtSize
		changed = true
	}
	if !changed {
		return prof, nil
	}

	prof.UpdatedAt = time.Now()
	if err := s.profileRepo.Update(ctx, prof); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return prof, nil
}

func displayNameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
