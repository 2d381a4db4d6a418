package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fleetledger/fleetledger/internal/api/metrics"
	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

const minSenhaLen = 6

// AuthService implements login, logout and user management.
type AuthService struct {
	repo     ports.UserRepository
	revoker  ports.TokenRevoker
	secret   string
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, revoker ports.TokenRevoker, secret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 30 * 24 * time.Hour
	}
	return &AuthService{repo: repo, revoker: revoker, secret: secret, tokenTTL: tokenTTL, logger: logger}
}

// Login verifies credentials and returns a signed bearer token. Inactive
// users are rejected with the same error as a wrong password so the response
// does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, senha string) (string, error) {
	if email == "" || senha == "" {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return "", domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(senha)) != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", domain.ErrInvalidCredentials
	}

	if !user.Ativo {
		metrics.LoginsTotal.WithLabelValues("inactive").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("email", user.Email).Msg("login")
	return token, nil
}

// Logout revokes the token identified by jti until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}
	if err := s.revoker.Revoke(ctx, jti, ttl); err != nil {
		return err
	}
	metrics.TokenRevocationsTotal.Inc()
	return nil
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Nome == "" || input.Email == "" || len(input.Senha) < minSenhaLen {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Nome:      input.Nome,
		Email:     input.Email,
		SenhaHash: string(hash),
		Ativo:     true,
		IsAdmin:   input.IsAdmin,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("usuarios", "create").Inc()
	s.logger.Info().Str("email", created.Email).Msg("user registered")
	return created, nil
}

func (s *AuthService) ListUsers(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.List(ctx, skip, limit)
}

// UpdateUser applies a partial update. A nil Senha leaves the stored password
// untouched; a provided one is re-hashed. Email changes re-check uniqueness.
func (s *AuthService) UpdateUser(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != current.Email {
		if other, err := s.repo.FindByEmail(ctx, *input.Email); err == nil && other.ID != id {
			return nil, domain.ErrEmailTaken
		} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	upd := ports.UserUpdate{
		Nome:    input.Nome,
		Email:   input.Email,
		Ativo:   input.Ativo,
		IsAdmin: input.IsAdmin,
	}

	if input.Senha != nil {
		if len(*input.Senha) < minSenhaLen {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		upd.SenhaHash = &h
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	metrics.EntityWritesTotal.WithLabelValues("usuarios", "update").Inc()
	return updated, nil
}

// DeactivateUser soft-deletes a user. The caller may not deactivate their own
// account; the client blocks this too, the server check is the real boundary.
func (s *AuthService) DeactivateUser(ctx context.Context, id, callerID string) error {
	if id == callerID {
		return domain.ErrSelfDelete
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	inativo := false
	if _, err := s.repo.Update(ctx, id, ports.UserUpdate{Ativo: &inativo}); err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("usuarios", "deactivate").Inc()
	s.logger.Info().Str("user_id", id).Msg("user deactivated")
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.Email,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}
