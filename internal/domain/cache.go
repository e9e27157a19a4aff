package domain

import "context"

// Cache slot keys for the two published strings.
const (
	CacheKeyAnnouncement    = "RECENT_ANNOUNCEMENTS"
	CacheKeyFeaturedSpeaker = "FEATURED_SPEAKERS"
)

// Cache is a small key-value store for ephemeral published strings.
// Last-writer-wins; a missing key is not an error.
type Cache interface {
	// Get returns the value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// AnnouncementService recomputes and serves the near-sold-out announcement.
type AnnouncementService interface {
	// Refresh scans nearly-sold-out conferences and publishes the
	// announcement, or clears the slot when there are none. It returns the
	// published announcement ("" when cleared). Idempotent.
	Refresh(ctx context.Context) (string, error)
	// Announcement returns the current announcement, "" when absent.
	Announcement(ctx context.Context) (string, error)
}

// FeaturedSpeakerService evaluates and serves the featured-speaker summary.
type FeaturedSpeakerService interface {
	// Evaluate aggregates the speaker's sessions within the conference and
	// publishes a summary when the speaker has enough of them. Runs from
	// the deferred task queue after session creation.
	Evaluate(ctx context.Context, conferenceID, speaker string) error
	// FeaturedSpeaker returns the current summary, "" when absent.
	FeaturedSpeaker(ctx context.Context) (string, error)
}
