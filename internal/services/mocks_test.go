package services

import (
	"context"
	"sync"
	"time"

	"conferencecentral/internal/domain"
	"conferencecentral/internal/query"
)

type mockConferenceRepository struct {
	conferences   map[string]*domain.Conference
	nearlySoldOut []*domain.Conference
	created       []*domain.Conference
	updated       []*domain.Conference
	err           error
}

func (m *mockConferenceRepository) Create(ctx context.Context, conf *domain.Conference) error {
	if m.err != nil {
		return m.err
	}
	if conf.ID == "" {
		conf.ID = "generated-id"
	}
	m.created = append(m.created, conf)
	return nil
}

func (m *mockConferenceRepository) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	if m.err != nil {
		return nil, m.err
	}
	conf, ok := m.conferences[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return conf, nil
}

func (m *mockConferenceRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Conference
	for _, conf := range m.conferences {
		if conf.OrganizerID == organizerID {
			out = append(out, conf)
		}
	}
	return out, nil
}

func (m *mockConferenceRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Conference, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Conference
	for _, id := range ids {
		if conf, ok := m.conferences[id]; ok {
			out = append(out, conf)
		}
	}
	return out, nil
}

func (m *mockConferenceRepository) ListByName(ctx context.Context, name string) ([]*domain.Conference, error) {
	if m.err != nil {
		return nil, m.err
	}
	return nil, nil
}

func (m *mockConferenceRepository) ListNearlySoldOut(ctx context.Context, maxSeats int) ([]*domain.Conference, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.nearlySoldOut, nil
}

func (m *mockConferenceRepository) Update(ctx context.Context, conf *domain.Conference) error {
	if m.err != nil {
		return m.err
	}
	m.updated = append(m.updated, conf)
	return nil
}

func (m *mockConferenceRepository) Query(ctx context.Context, spec *query.Spec) ([]*domain.Conference, error) {
	if m.err != nil {
		return nil, m.err
	}
	return nil, nil
}

type mockSessionRepository struct {
	sessions         map[string]*domain.Session
	byConfAndSpeaker map[string][]*domain.Session
	created          []*domain.Session
	err              error
}

func (m *mockSessionRepository) Create(ctx context.Context, sess *domain.Session) error {
	if m.err != nil {
		return m.err
	}
	if sess.ID == "" {
		sess.ID = "generated-id"
	}
	m.created = append(m.created, sess)
	return nil
}

func (m *mockSessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	sess, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return sess, nil
}

func (m *mockSessionRepository) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Session
	for _, sess := range m.sessions {
		if sess.ConferenceID == conferenceID {
			out = append(out, sess)
		}
	}
	return out, nil
}

func (m *mockSessionRepository) ListByConferenceAndType(ctx context.Context, conferenceID, sessionType string) ([]*domain.Session, error) {
	return nil, m.err
}

func (m *mockSessionRepository) ListBySpeaker(ctx context.Context, speaker string) ([]*domain.Session, error) {
	return nil, m.err
}

func (m *mockSessionRepository) ListByConferenceAndSpeaker(ctx context.Context, conferenceID, speaker string) ([]*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byConfAndSpeaker[conferenceID+":"+speaker], nil
}

func (m *mockSessionRepository) ListShort(ctx context.Context, maxMinutes int) ([]*domain.Session, error) {
	return nil, m.err
}

func (m *mockSessionRepository) ListOfInterest(ctx context.Context, excludeType, cutoff string) ([]*domain.Session, error) {
	return nil, m.err
}

func (m *mockSessionRepository) Query(ctx context.Context, spec *query.Spec) ([]*domain.Session, error) {
	return nil, m.err
}

type mockProfileRepository struct {
	profiles map[string]*domain.Profile
	byEmail  map[string]*domain.Profile
	created  []*domain.Profile
	updated  []*domain.Profile
	// createErr lets tests simulate a lost create race.
	createErr error
	err       error
}

func (m *mockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.err != nil {
		return m.err
	}
	if m.profiles == nil {
		m.profiles = make(map[string]*domain.Profile)
	}
	m.profiles[profile.ID] = profile
	m.created = append(m.created, profile)
	return nil
}

func (m *mockProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	profile, ok := m.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

func (m *mockProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	profile, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

func (m *mockProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.updated = append(m.updated, profile)
	return nil
}

type mockRegistrationRepository struct {
	registrations []*domain.Registration
	unregistered  bool
	err           error
}

func (m *mockRegistrationRepository) Register(ctx context.Context, conferenceID, profileID string) (*domain.Registration, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Registration{ID: "r1", ConferenceID: conferenceID, ProfileID: profileID}, nil
}

func (m *mockRegistrationRepository) Unregister(ctx context.Context, conferenceID, profileID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.unregistered, nil
}

func (m *mockRegistrationRepository) ListByProfileID(ctx context.Context, profileID string) ([]*domain.Registration, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.registrations, nil
}

type mockWishlistRepository struct {
	sessions []*domain.Session
	removed  bool
	err      error
}

func (m *mockWishlistRepository) Add(ctx context.Context, sessionID, profileID string) error {
	return m.err
}

func (m *mockWishlistRepository) Remove(ctx context.Context, sessionID, profileID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.removed, nil
}

func (m *mockWishlistRepository) ListSessionsByProfileID(ctx context.Context, profileID string) ([]*domain.Session, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sessions, nil
}

type mockLoginCodeRepository struct {
	codes    []*domain.LoginCode
	stored   []string
	consumed []string
	err      error
}

func (m *mockLoginCodeRepository) Create(ctx context.Context, email, codeHash string, expiresAt time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.stored = append(m.stored, codeHash)
	m.codes = append(m.codes, &domain.LoginCode{ID: "lc1", Email: email, CodeHash: codeHash})
	return nil
}

func (m *mockLoginCodeRepository) ListActive(ctx context.Context, email string) ([]*domain.LoginCode, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.LoginCode
	for _, code := range m.codes {
		if code.Email == email {
			out = append(out, code)
		}
	}
	return out, nil
}

func (m *mockLoginCodeRepository) Consume(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.consumed = append(m.consumed, id)
	return nil
}

// mockCache is an in-memory Cache for service tests.
type mockCache struct {
	mu     sync.Mutex
	values map[string]string
	setErr error
}

func newMockCache() *mockCache {
	return &mockCache{values: make(map[string]string)}
}

func (m *mockCache) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockCache) Set(ctx context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// syncTaskQueue runs enqueued tasks immediately so tests see their effects.
type syncTaskQueue struct {
	names []string
	errs  []error
}

func (q *syncTaskQueue) Enqueue(name string, task domain.TaskFunc) error {
	q.names = append(q.names, name)
	q.errs = append(q.errs, task(context.Background()))
	return nil
}

type mockEmailService struct {
	confirmations []*domain.ConferenceConfirmationEmailData
	loginCodes    []*domain.LoginCodeEmailData
	err           error
}

func (m *mockEmailService) SendConferenceConfirmation(ctx context.Context, data *domain.ConferenceConfirmationEmailData) error {
	if m.err != nil {
		return m.err
	}
	m.confirmations = append(m.confirmations, data)
	return nil
}

func (m *mockEmailService) SendLoginCode(ctx context.Context, data *domain.LoginCodeEmailData) error {
	if m.err != nil {
		return m.err
	}
	m.loginCodes = append(m.loginCodes, data)
	return nil
}

type mockTokenIssuer struct {
	token string
	err   error
}

func (m *mockTokenIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}
