package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"conferencecentral/internal/domain"
)

const (
	loginCodeDigits     = 6
	loginCodeExpiryMins = 15
	loginCodeBcryptCost = 10
)

var (
	emailRegexp    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	loginCodeRegex = regexp.MustCompile(`^\d{6}$`)
)

type authService struct {
	loginCodeRepo  domain.LoginCodeRepository
	profileService domain.ProfileService
	tokenIssuer    domain.TokenIssuer
	tokenExpiry    time.Duration
	emailService   domain.EmailService
}

// NewAuthService creates the passwordless-login AuthService.
func NewAuthService(
	loginCodeRepo domain.LoginCodeRepository,
	profileService domain.ProfileService,
	tokenIssuer domain.TokenIssuer,
	tokenExpiry time.Duration,
	emailService domain.EmailService,
) domain.AuthService {
	return &authService{
		loginCodeRepo:  loginCodeRepo,
		profileService: profileService,
		tokenIssuer:    tokenIssuer,
		tokenExpiry:    tokenExpiry,
		emailService:   emailService,
	}
}

func (s *authService) RequestLoginCode(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	code, err := generateLoginCode(loginCodeDigits)
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), loginCodeBcryptCost)
	if err != nil {
		return fmt.Errorf("hash code: %w", err)
	}
	expiresAt := time.Now().Add(loginCodeExpiryMins * time.Minute)
	if err := s.loginCodeRepo.Create(ctx, email, string(codeHash), expiresAt); err != nil {
		return fmt.Errorf("store login code: %w", err)
	}
	if s.emailService != nil {
		data := &domain.LoginCodeEmailData{
			Email:            email,
			Code:             code,
			ExpiresInMinutes: loginCodeExpiryMins,
		}
		if err := s.emailService.SendLoginCode(ctx, data); err != nil {
			return fmt.Errorf("send login code email: %w", err)
		}
	}
	return nil
}

func (s *authService) VerifyLoginCode(ctx context.Context, email, code string) (string, *domain.Profile, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return "", nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	code = strings.TrimSpace(code)
	if !loginCodeRegex.MatchString(code) {
		return "", nil, fmt.Errorf("%w: invalid or expired code", domain.ErrInvalidInput)
	}

	active, err := s.loginCodeRepo.ListActive(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("list login codes: %w", err)
	}
	var matched *domain.LoginCode
	for _, lc := range active {
		if bcrypt.CompareHashAndPassword([]byte(lc.CodeHash), []byte(code)) == nil {
			matched = lc
			break
		}
	}
	if matched == nil {
		return "", nil, fmt.Errorf("%w: invalid or expired code", domain.ErrInvalidInput)
	}
	if err := s.loginCodeRepo.Consume(ctx, matched.ID); err != nil {
		return "", nil, fmt.Errorf("consume login code: %w", err)
	}

	// The verified email is the identity; the profile id derives from it so
	// the same address always maps to the same ownership subtree.
	userID := identityIDFromEmail(email)
	prof, err := s.profileService.GetOrCreate(ctx, userID, email)
	if err != nil {
		return "", nil, fmt.Errorf("get or create profile: %w", err)
	}

	token, err := s.tokenIssuer.Issue(prof.ID, email, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, prof, nil
}

// identityIDFromEmail derives a stable opaque id from a verified email.
func identityIDFromEmail(email string) string {
	sum := sha256.Sum256([]byte(email))
	return hex.EncodeToString(sum[:16])
}

func generateLoginCode(digits int) (string, error) {
	bound := big.NewInt(1)
	for i := 0; i < digits; i++ {
		bound.Mul(bound, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}
