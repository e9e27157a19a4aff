package domain

import (
	"context"
	"time"
)

// TeeShirtSize is a profile's shirt-size preference.
type TeeShirtSize string

// Tee-shirt sizes; the _M/_W suffix distinguishes men's and women's cuts.
const (
	TeeShirtNotSpecified TeeShirtSize = "NOT_SPECIFIED"
	TeeShirtXSM          TeeShirtSize = "XS_M"
	TeeShirtXSW          TeeShirtSize = "XS_W"
	TeeShirtSM           TeeShirtSize = "S_M"
	TeeShirtSW           TeeShirtSize = "S_W"
	TeeShirtMM           TeeShirtSize = "M_M"
	TeeShirtMW           TeeShirtSize = "M_W"
	TeeShirtLM           TeeShirtSize = "L_M"
	TeeShirtLW           TeeShirtSize = "L_W"
	TeeShirtXLM          TeeShirtSize = "XL_M"
	TeeShirtXLW          TeeShirtSize = "XL_W"
	TeeShirtXXLM         TeeShirtSize = "XXL_M"
	TeeShirtXXLW         TeeShirtSize = "XXL_W"
	TeeShirtXXXLM        TeeShirtSize = "XXXL_M"
	TeeShirtXXXLW        TeeShirtSize = "XXXL_W"
)

var teeShirtSizes = map[TeeShirtSize]struct{}{
	TeeShirtNotSpecified: {}, TeeShirtXSM: {}, TeeShirtXSW: {},
	TeeShirtSM: {}, TeeShirtSW: {}, TeeShirtMM: {}, TeeShirtMW: {},
	TeeShirtLM: {}, TeeShirtLW: {}, TeeShirtXLM: {}, TeeShirtXLW: {},
	TeeShirtXXLM: {}, TeeShirtXXLW: {}, TeeShirtXXXLM: {}, TeeShirtXXXLW: {},
}

// Valid reports whether s is a known tee-shirt size.
func (s TeeShirtSize) Valid() bool {
	_, ok := teeShirtSizes[s]
	return ok
}

// Profile represents a user profile, keyed by the verified identity id.
// Created lazily on first authenticated access.
// swagger:model Profile
type Profile struct {
	ID           string       `json:"id"`
	DisplayName  string       `json:"display_name"`
	MainEmail    string       `json:"main_email"`
	TeeShirtSize TeeShirtSize `json:"tee_shirt_size"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// NewProfile returns a new Profile with the shirt size defaulted.
func NewProfile(id, displayName, email string, now time.Time) *Profile {
	return &Profile{
		ID:           id,
		DisplayName:  displayName,
		MainEmail:    email,
		TeeShirtSize: TeeShirtNotSpecified,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ProfileUpdate carries the user-modifiable profile fields; empty values are
// left untouched.
type ProfileUpdate struct {
	DisplayName  string
	TeeShirtSize TeeShirtSize
}

// ProfileRepository defines the interface for profile storage.
type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
}

// ProfileService defines the business logic for user profiles.
type ProfileService interface {
	// GetOrCreate returns the caller's profile, creating it on first
	// authenticated access using the verified email.
	GetOrCreate(ctx context.Context, userID, email string) (*Profile, error)
	// Save updates the user-modifiable fields and returns the profile.
	Save(ctx context.Context, userID, email string, upd ProfileUpdate) (*Profile, error)
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated identity.
type TokenVerifier interface {
	Verify(token string) (userID, email string, err error)
}

// LoginCode is a stored one-time login code hash.
type LoginCode struct {
	ID       string
	Email    string
	CodeHash string
}

// LoginCodeRepository defines the interface for one-time login code storage.
// Codes are stored hashed; verification compares against the active hashes
// and consumes the matching row.
type LoginCodeRepository interface {
	Create(ctx context.Context, email, codeHash string, expiresAt time.Time) error
	// ListActive returns the unexpired codes for the email.
	ListActive(ctx context.Context, email string) ([]*LoginCode, error)
	// Consume deletes the code row so it cannot be used twice.
	Consume(ctx context.Context, id string) error
}

// AuthService defines the passwordless login flow that stands in as the
// identity provider for the rest of the API.
type AuthService interface {
	RequestLoginCode(ctx context.Context, email string) error
	// VerifyLoginCode consumes a valid code and returns a bearer token plus
	// the (lazily created) profile it authenticates.
	VerifyLoginCode(ctx context.Context, email, code string) (token string, profile *Profile, err error)
}
