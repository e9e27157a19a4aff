package domain

import (
	"context"
	"time"
)

// Registration represents an attendee's seat at a conference.
// swagger:model Registration
type Registration struct {
	ID           string    `json:"id"`
	ConferenceID string    `json:"conference_id"`
	ProfileID    string    `json:"profile_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegistrationRepository defines storage operations for conference
// registrations. Register and Unregister span the registration row and the
// conference seat counter in a single transaction.
type RegistrationRepository interface {
	// Register records the attendance and decrements seats_available
	// atomically. Returns ErrNotFound when the conference does not exist,
	// ErrConflict when already registered, ErrNoSeats when sold out.
	Register(ctx context.Context, conferenceID, profileID string) (*Registration, error)
	// Unregister removes the attendance and increments seats_available
	// atomically. Returns false when no registration existed; that is not
	// an error and leaves the seat counter untouched.
	Unregister(ctx context.Context, conferenceID, profileID string) (bool, error)
	ListByProfileID(ctx context.Context, profileID string) ([]*Registration, error)
}

// AttendeeService defines attendee-facing operations: conference registration
// and the session wishlist.
type AttendeeService interface {
	RegisterForConference(ctx context.Context, conferenceID, userID string) (bool, error)
	UnregisterFromConference(ctx context.Context, conferenceID, userID string) (bool, error)
	ListConferencesToAttend(ctx context.Context, userID string) ([]*Conference, error)

	// AddSessionToWishlist returns ErrNotFound when the session does not
	// exist and ErrConflict when it is already wishlisted.
	AddSessionToWishlist(ctx context.Context, sessionID, userID string) (bool, error)
	// RemoveSessionFromWishlist returns false, not an error, when the
	// session was not wishlisted.
	RemoveSessionFromWishlist(ctx context.Context, sessionID, userID string) (bool, error)
	ListWishlistSessions(ctx context.Context, userID string) ([]*Session, error)
}

// WishlistRepository defines storage operations for session wishlists.
type WishlistRepository interface {
	// Add inserts the wishlist row; a duplicate maps to ErrConflict.
	Add(ctx context.Context, sessionID, profileID string) error
	// Remove deletes the wishlist row and reports whether one existed.
	Remove(ctx context.Context, sessionID, profileID string) (bool, error)
	ListSessionsByProfileID(ctx context.Context, profileID string) ([]*Session, error)
}
