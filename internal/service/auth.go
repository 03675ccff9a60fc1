// Package service implements recruitd's operations: account sign-up and
// sign-in, recruitment management, and application submission. Each
// operation validates its input, then performs a single persistence call.
package service

import (
	"context"

	"github.com/skillsenselab/recruitd/internal/auth"
	apperrors "github.com/skillsenselab/recruitd/internal/errors"
	"github.com/skillsenselab/recruitd/internal/logger"
	"github.com/skillsenselab/recruitd/internal/models"
	"github.com/skillsenselab/recruitd/internal/repository"
	"github.com/skillsenselab/recruitd/internal/validation"
)

// dummyHash is a bcrypt hash of an unguessable throwaway value. Sign-in runs
// a verification against it when the email is unknown so the response time
// does not reveal whether the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// SignUpInput is the sign-up request body.
type SignUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	// Role is free-form on the wire; anything but ORGANIZER becomes STUDENT.
	Role string `json:"role"`
}

// SignInInput is the sign-in request body.
type SignInInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserSummary is the account view returned alongside a token. It never
// includes the password hash.
type UserSummary struct {
	ID    uint        `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
}

// AuthResult bundles a freshly issued token with the account summary.
type AuthResult struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// AuthService implements sign-up and sign-in on top of the credential core.
type AuthService struct {
	users  *repository.Users
	hasher auth.Hasher
	tokens *auth.TokenService
	log    *logger.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(users *repository.Users, hasher auth.Hasher, tokens *auth.TokenService, log *logger.Logger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		log:    log.WithComponent("auth"),
	}
}

// SignUp registers a new account and issues its first session token.
// Validation runs before any hashing or persistence; a duplicate email
// surfaces as a conflict and creates nothing.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error) {
	if err := validation.Validate(&in); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := &models.User{
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         models.ParseRole(in.Role),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	s.log.Info("Account created", logger.Fields(
		logger.FieldUserID, user.ID,
		"role", user.Role,
	))

	return &AuthResult{Token: token, User: summarize(user)}, nil
}

// SignIn verifies credentials and issues a session token. Unknown email and
// wrong password produce the identical outcome; the unknown-email path still
// pays for one hash verification so the two cases also take similar time.
func (s *AuthService) SignIn(ctx context.Context, in SignInInput) (*AuthResult, error) {
	if err := validation.Validate(&in); err != nil {
		return nil, err
	}

	user, err := s.users.ByEmail(ctx, in.Email)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.ErrCodeNotFound {
			_ = s.hasher.Verify(in.Password, dummyHash)
			return nil, apperrors.InvalidCredentials()
		}
		return nil, err
	}

	if err := s.hasher.Verify(in.Password, user.PasswordHash); err != nil {
		s.log.Warn("Sign-in rejected", logger.Fields(logger.FieldUserID, user.ID))
		return nil, apperrors.InvalidCredentials()
	}

	token, err := s.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &AuthResult{Token: token, User: summarize(user)}, nil
}

func summarize(u *models.User) UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
