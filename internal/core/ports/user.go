package ports

import (
	"context"
	"time"

	"github.com/fleetledger/fleetledger/internal/core/domain"
)

// UserRepository defines persistence operations for back-office users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
	// Update applies the non-nil fields of upd and returns the updated user.
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
}

// UserUpdate is a partial update: nil means "leave unchanged".
type UserUpdate struct {
	Nome      *string
	Email     *string
	SenhaHash *string
	Ativo     *bool
	IsAdmin   *bool
}

// RegisterInput carries the data for creating a user account.
type RegisterInput struct {
	Nome    string
	Email   string
	Senha   string
	IsAdmin bool
}

// UpdateUserInput is the partial user update accepted by the service.
// A nil Senha leaves the stored password untouched.
type UpdateUserInput struct {
	Nome    *string
	Email   *string
	Senha   *string
	Ativo   *bool
	IsAdmin *bool
}

// TokenRevoker stores revoked token IDs until their natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthService defines authentication and user-management use cases.
type AuthService interface {
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, email, senha string) (string, error)
	// Logout revokes the token identified by jti until expiresAt.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	ListUsers(ctx context.Context, skip, limit int) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	// DeactivateUser soft-deletes a user. callerID guards self-deactivation.
	DeactivateUser(ctx context.Context, id, callerID string) error
}
