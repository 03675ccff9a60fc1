package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Typed parse failures. They exist so logs and tests can tell causes apart;
// everything outside this package collapses them into one unauthorized
// outcome so clients cannot probe which check failed.
var (
	// ErrTokenExpired indicates the token's expiry has passed.
	ErrTokenExpired = errors.New("auth: token expired")
	// ErrTokenSignature indicates the signature does not match the secret.
	ErrTokenSignature = errors.New("auth: token signature invalid")
	// ErrTokenMalformed indicates the token could not be decoded at all.
	ErrTokenMalformed = errors.New("auth: token malformed")
	// ErrTokenInvalid covers any other verification failure.
	ErrTokenInvalid = errors.New("auth: token invalid")
)

// Identity is the authenticated subject decoded from a valid session token.
// It lives for the duration of a single request and is never persisted.
type Identity struct {
	SubjectID uint
	Role      string
}

// Claims is the JWT claims layout of a session token.
type Claims struct {
	gojwt.RegisteredClaims
	Role string `json:"role"`
}

// TokenService issues and parses signed session tokens.
// The signing secret and TTL are fixed at construction and read-only after;
// a missing secret fails here, at process start, not per request.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService from configuration.
func NewTokenService(cfg *Config) (*TokenService, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &TokenService{secret: []byte(cfg.Secret), ttl: cfg.TokenTTL}, nil
}

// Issue creates a signed token for the subject. The role is captured as it
// is at issuance; later role changes do not affect already-issued tokens.
func (s *TokenService) Issue(subjectID uint, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(subjectID), 10),
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role: role,
	}
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature and expiry and returns the encoded identity.
// It does not check that the subject still exists.
func (s *TokenService) Parse(tokenString string) (Identity, error) {
	claims := &Claims{}
	token, err := gojwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, classifyParseError(err)
	}
	if !token.Valid {
		return Identity{}, ErrTokenInvalid
	}

	subjectID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return Identity{}, ErrTokenMalformed
	}
	return Identity{SubjectID: uint(subjectID), Role: claims.Role}, nil
}

// keyFunc is the jwt.Keyfunc used during token parsing.
func (s *TokenService) keyFunc(token *gojwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*gojwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("auth: unexpected signing method: %s", token.Method.Alg())
	}
	return s.secret, nil
}

// classifyParseError maps golang-jwt errors onto this package's typed set.
func classifyParseError(err error) error {
	switch {
	case errors.Is(err, gojwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
		return ErrTokenSignature
	case errors.Is(err, gojwt.ErrTokenMalformed):
		return ErrTokenMalformed
	default:
		return ErrTokenInvalid
	}
}
