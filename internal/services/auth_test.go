package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"conferencecentral/internal/domain"
)

func newAuthForTest(codeRepo *mockLoginCodeRepository, profileRepo *mockProfileRepository, email *mockEmailService, issuer *mockTokenIssuer) domain.AuthService {
	return NewAuthService(codeRepo, NewProfileService(profileRepo), issuer, time.Hour, email)
}

func TestAuthService_RequestLoginCode(t *testing.T) {
	codeRepo := &mockLoginCodeRepository{}
	email := &mockEmailService{}
	svc := newAuthForTest(codeRepo, &mockProfileRepository{}, email, &mockTokenIssuer{})

	err := svc.RequestLoginCode(context.Background(), "  User@Example.COM ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(email.loginCodes) != 1 {
		t.Fatalf("expected one login code email, got %d", len(email.loginCodes))
	}
	sent := email.loginCodes[0]
	if sent.Email != "user@example.com" {
		t.Errorf("expected normalized email, got %q", sent.Email)
	}
	if !regexp.MustCompile(`^\d{6}$`).MatchString(sent.Code) {
		t.Errorf("expected a six digit code, got %q", sent.Code)
	}
	if len(codeRepo.stored) != 1 {
		t.Fatalf("expected one stored hash, got %d", len(codeRepo.stored))
	}
	// The stored value is a hash of the mailed code, never the code itself.
	if codeRepo.stored[0] == sent.Code {
		t.Error("expected the code stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(codeRepo.stored[0]), []byte(sent.Code)); err != nil {
		t.Errorf("stored hash does not match mailed code: %v", err)
	}
}

func TestAuthService_RequestLoginCode_InvalidEmail(t *testing.T) {
	svc := newAuthForTest(&mockLoginCodeRepository{}, &mockProfileRepository{}, &mockEmailService{}, &mockTokenIssuer{})

	err := svc.RequestLoginCode(context.Background(), "not-an-email")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_VerifyLoginCode(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash code: %v", err)
	}
	codeRepo := &mockLoginCodeRepository{codes: []*domain.LoginCode{
		{ID: "lc1", Email: "jane@example.com", CodeHash: string(hash)},
	}}
	profileRepo := &mockProfileRepository{}
	issuer := &mockTokenIssuer{token: "signed-token"}
	svc := newAuthForTest(codeRepo, profileRepo, &mockEmailService{}, issuer)

	token, prof, err := svc.VerifyLoginCode(context.Background(), "Jane@Example.com", "123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "signed-token" {
		t.Errorf("expected issued token, got %q", token)
	}
	if prof == nil || prof.MainEmail != "jane@example.com" {
		t.Fatalf("expected profile for jane@example.com, got %+v", prof)
	}
	if prof.ID != identityIDFromEmail("jane@example.com") {
		t.Errorf("expected id derived from email, got %q", prof.ID)
	}
	if len(codeRepo.consumed) != 1 || codeRepo.consumed[0] != "lc1" {
		t.Errorf("expected code lc1 consumed, got %v", codeRepo.consumed)
	}
}

func TestAuthService_VerifyLoginCode_WrongCode(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash code: %v", err)
	}
	codeRepo := &mockLoginCodeRepository{codes: []*domain.LoginCode{
		{ID: "lc1", Email: "jane@example.com", CodeHash: string(hash)},
	}}
	svc := newAuthForTest(codeRepo, &mockProfileRepository{}, &mockEmailService{}, &mockTokenIssuer{token: "t"})

	_, _, err = svc.VerifyLoginCode(context.Background(), "jane@example.com", "654321")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(codeRepo.consumed) != 0 {
		t.Errorf("expected nothing consumed, got %v", codeRepo.consumed)
	}
}

func TestAuthService_VerifyLoginCode_MalformedCode(t *testing.T) {
	svc := newAuthForTest(&mockLoginCodeRepository{}, &mockProfileRepository{}, &mockEmailService{}, &mockTokenIssuer{})

	for _, code := range []string{"", "12345", "1234567", "abcdef"} {
		_, _, err := svc.VerifyLoginCode(context.Background(), "jane@example.com", code)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("code %q: expected ErrInvalidInput, got %v", code, err)
		}
	}
}

func TestAuthService_VerifyLoginCode_NoActiveCodes(t *testing.T) {
	svc := newAuthForTest(&mockLoginCodeRepository{}, &mockProfileRepository{}, &mockEmailService{}, &mockTokenIssuer{})

	_, _, err := svc.VerifyLoginCode(context.Background(), "jane@example.com", "123456")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestIdentityIDFromEmail_Stable(t *testing.T) {
	a := identityIDFromEmail("jane@example.com")
	b := identityIDFromEmail("jane@example.com")
	if a != b {
		t.Fatalf("expected stable ids, got %q and %q", a, b)
	}
	if len(a) != 32 {
		t.Errorf("expected 32 hex chars, got %d", len(a))
	}
	if a == identityIDFromEmail("john@example.com") {
		t.Error("expected distinct ids for distinct emails")
	}
}
