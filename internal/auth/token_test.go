package auth

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

func newTestTokenService(t *testing.T, secret string) *TokenService {
	t.Helper()
	svc, err := NewTokenService(&Config{Secret: secret})
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}
	return svc
}

func TestTokenService_IssueAndParse(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	token, err := svc.Issue(42, "ORGANIZER")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	id, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if id.SubjectID != 42 {
		t.Errorf("expected subject 42, got %d", id.SubjectID)
	}
	if id.Role != "ORGANIZER" {
		t.Errorf("expected role ORGANIZER, got %q", id.Role)
	}
}

func TestTokenService_SevenDayExpiry(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	token, err := svc.Issue(1, "STUDENT")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims := &Claims{}
	if _, err := gojwt.ParseWithClaims(token, claims, func(*gojwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}); err != nil {
		t.Fatalf("raw parse failed: %v", err)
	}

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != 7*24*time.Hour {
		t.Errorf("expected 7-day lifetime, got %s", lifetime)
	}
}

func TestTokenService_ExpiredTokenRejected(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	// Hand-sign a token whose issuance is 8 days in the past.
	past := time.Now().Add(-8 * 24 * time.Hour)
	claims := Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "7",
			IssuedAt:  gojwt.NewNumericDate(past),
			ExpiresAt: gojwt.NewNumericDate(past.Add(7 * 24 * time.Hour)),
		},
		Role: "STUDENT",
	}
	expired, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := svc.Parse(expired); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongSecretRejected(t *testing.T) {
	issuer := newTestTokenService(t, "secret-one")
	verifier := newTestTokenService(t, "secret-two")

	token, err := issuer.Issue(1, "STUDENT")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := verifier.Parse(token); !errors.Is(err, ErrTokenSignature) {
		t.Errorf("expected ErrTokenSignature, got %v", err)
	}
}

func TestTokenService_TruncatedTokenRejected(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	token, err := svc.Issue(1, "STUDENT")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := svc.Parse(token[:len(token)-1]); err == nil {
		t.Error("expected error for truncated token")
	}
}

func TestTokenService_MalformedTokenRejected(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := svc.Parse(tok); !errors.Is(err, ErrTokenMalformed) {
			t.Errorf("Parse(%q): expected ErrTokenMalformed, got %v", tok, err)
		}
	}
}

func TestTokenService_NonNumericSubjectRejected(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	now := time.Now()
	claims := Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   "not-a-number",
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(time.Hour)),
		},
		Role: "STUDENT",
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := svc.Parse(token); !errors.Is(err, ErrTokenMalformed) {
		t.Errorf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestTokenService_RoleFixedAtIssuance(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	token, err := svc.Issue(9, "STUDENT")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// A token keeps the role it was issued with, whatever the account's
	// role becomes afterwards.
	id, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if id.Role != "STUDENT" {
		t.Errorf("expected role STUDENT, got %q", id.Role)
	}
	if id.SubjectID != 9 {
		t.Errorf("expected subject 9, got %s", strconv.FormatUint(uint64(id.SubjectID), 10))
	}
}

func TestNewTokenService_EmptySecretAfterDefaultsApplied(t *testing.T) {
	// ApplyDefaults substitutes the dev fallback, so construction succeeds
	// but the config flags the hazard.
	cfg := &Config{}
	svc, err := NewTokenService(cfg)
	if err != nil {
		t.Fatalf("expected fallback secret to apply, got %v", err)
	}
	if svc == nil {
		t.Fatal("expected service")
	}
	if !cfg.UsesDevFallbackSecret() {
		t.Error("expected dev fallback secret to be flagged")
	}
}

func TestIdentityContext_RoundTrip(t *testing.T) {
	ctx := context.Background()

	if _, ok := IdentityFrom(ctx); ok {
		t.Error("empty context must not contain an identity")
	}

	ctx = WithIdentity(ctx, Identity{SubjectID: 3, Role: "ORGANIZER"})
	id, ok := IdentityFrom(ctx)
	if !ok {
		t.Fatal("expected identity in context")
	}
	if id.SubjectID != 3 || id.Role != "ORGANIZER" {
		t.Errorf("unexpected identity: %+v", id)
	}
}

func TestMustIdentity_PanicsWhenAbsent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustIdentity(context.Background())
}
