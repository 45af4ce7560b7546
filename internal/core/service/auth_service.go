package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/theater-demo/theater-api/internal/api/metrics"
	"github.com/theater-demo/theater-api/internal/core/domain"
	"github.com/theater-demo/theater-api/internal/core/ports"
)

// AuthService implements signup, login and the current-user lookup.
type AuthService struct {
	repo      ports.UserRepository
	hasher    domain.PasswordHasher
	jwtSecret string
	tokenTTL  time.Duration
	writes    writeRecorder
	logger    zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	hasher domain.PasswordHasher,
	jwtSecret string,
	tokenTTL time.Duration,
	audit ports.AuditPublisher,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		hasher:    hasher,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		writes:    newWriteRecorder(audit),
		logger:    logger,
	}
}

// Signup creates an account. Self-service signups are always regular users;
// the admin flag sticks only when an admin is creating the account.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	admin := input.Admin && input.GrantedByAdmin
	if input.Admin && !admin {
		s.logger.Warn().Str("username", input.Username).Msg("admin flag ignored on self-service signup")
	}
	return s.createUser(ctx, input.Name, input.Username, input.Password, admin)
}

// EnsureAdmin creates the bootstrap admin account unless the username is
// already taken. An existing account is left as it is.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("ensure admin: %w", err)
	}
	if _, err := s.createUser(ctx, "", username, password, true); err != nil && !errors.Is(err, domain.ErrUserExists) {
		return fmt.Errorf("ensure admin: %w", err)
	}
	return nil
}

func (s *AuthService) createUser(ctx context.Context, name, username, password string, admin bool) (*domain.User, error) {
	user, err := domain.NewUser(name, username, admin, s.writes.now())
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, &domain.ValidationError{Field: "password", Err: domain.ErrRequiredField}
	}

	if err := user.SetPassword(s.hasher, password); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	s.writes.recordWrite(domain.EntityUser, user.ID, domain.AuditCreated, user.Username)
	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Bool("admin", user.Admin).Msg("user signed up")
	return user, nil
}

// Login verifies the password and issues a token. An unknown username and a
// wrong password both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.Authenticate(s.hasher, password) {
		metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
		s.logger.Debug().Str("username", username).Msg("password mismatch")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()
	return token, user, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"admin":    user.Admin,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
