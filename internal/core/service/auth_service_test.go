package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

type stubUserRepo struct {
	createFn      func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	findByIDFn    func(ctx context.Context, id string) (*domain.User, error)
	listFn        func(ctx context.Context, skip, limit int) ([]*domain.User, error)
	updateFn      func(ctx context.Context, id string, upd ports.UserUpdate) (*domain.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubUserRepo) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	return s.listFn(ctx, skip, limit)
}

func (s *stubUserRepo) Update(ctx context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
	return s.updateFn(ctx, id, upd)
}

type stubRevoker struct {
	revoked map[string]time.Duration
}

func (s *stubRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if s.revoked == nil {
		s.revoked = make(map[string]time.Duration)
	}
	s.revoked[jti] = ttl
	return nil
}

func (s *stubRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	_, ok := s.revoked[jti]
	return ok, nil
}

func hashSenha(t *testing.T, senha string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(hash)
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{
				ID:        "u1",
				Email:     email,
				SenhaHash: hashSenha(t, "segredo1"),
				Ativo:     true,
			}, nil
		},
	}
	svc := NewAuthService(repo, &stubRevoker{}, "test-secret", time.Hour, zerolog.Nop())

	token, err := svc.Login(context.Background(), "admin@empresa.com", "segredo1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(tkn *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("returned token does not parse: %v", err)
	}
	if claims.Subject != "admin@empresa.com" {
		t.Fatalf("expected subject to be the email, got %q", claims.Subject)
	}
	if claims.ID == "" {
		t.Fatal("expected a jti so the token can be revoked")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{Email: email, SenhaHash: hashSenha(t, "correta1"), Ativo: true}, nil
		},
	}
	svc := NewAuthService(repo, &stubRevoker{}, "test-secret", time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "a@b.com", "errada99"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveUserSameError(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{Email: email, SenhaHash: hashSenha(t, "segredo1"), Ativo: false}, nil
		},
	}
	svc := NewAuthService(repo, &stubRevoker{}, "test-secret", time.Hour, zerolog.Nop())

	// Inactive accounts fail with the same error as a bad password.
	if _, err := svc.Login(context.Background(), "a@b.com", "segredo1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	svc := NewAuthService(repo, &stubRevoker{}, "test-secret", time.Hour, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "quem@b.com", "segredo1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout_RevokesUntilExpiry(t *testing.T) {
	revoker := &stubRevoker{}
	svc := NewAuthService(&stubUserRepo{}, revoker, "test-secret", time.Hour, zerolog.Nop())

	if err := svc.Logout(context.Background(), "jti-1", time.Now().Add(30*time.Minute)); err != nil {
		t.Fatalf("logout: %v", err)
	}

	ttl, ok := revoker.revoked["jti-1"]
	if !ok {
		t.Fatal("expected jti to be revoked")
	}
	if ttl <= 0 || ttl > 30*time.Minute {
		t.Fatalf("unexpected revocation ttl: %v", ttl)
	}
}

func TestAuthService_Logout_ExpiredTokenIsNoop(t *testing.T) {
	revoker := &stubRevoker{}
	svc := NewAuthService(&stubUserRepo{}, revoker, "test-secret", time.Hour, zerolog.Nop())

	if err := svc.Logout(context.Background(), "jti-2", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(revoker.revoked) != 0 {
		t.Fatal("expired token should not be stored in the denylist")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "u1", Email: email}, nil
		},
	}
	svc := NewAuthService(repo, &stubRevoker{}, "test-secret", time.Hour, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterInput{Nome: "Ana", Email: "ana@b.com", Senha: "segredo1"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, &stubRevoker{}, "test-secret", time.Hour, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterInput{Nome: "Ana", Email: "ana@b.com", Senha: "12345"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	var stored *domain.User
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			stored = user
			user.ID = "u1"
			return user, nil
		},
	}
	svc := NewAuthService(repo, &stubRevoker{}, "test-secret", time.Hour, zerolog.Nop())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Nome: "Ana", Email: "ana@b.com", Senha: "segredo1"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if stored == nil {
		t.Fatal("expected user to be created")
	}
	if stored.SenhaHash == "segredo1" {
		t.Fatal("password must not be stored in clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.SenhaHash), []byte("segredo1")) != nil {
		t.Fatal("stored hash does not match the password")
	}
	if !stored.Ativo {
		t.Fatal("new users start active")
	}
}

func TestAuthService_UpdateUser_NilSenhaLeavesHashUntouched(t *testing.T) {
	var gotUpd ports.UserUpdate
	repo := &stubUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Email: "ana@b.com"}, nil
		},
		updateFn: func(ctx context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
			gotUpd = upd
			return &domain.User{ID: id}, nil
		},
	}
	svc := NewAuthService(repo, &stubRevoker{}, "test-secret", time.Hour, zerolog.Nop())

	nome := "Ana Maria"
	if _, err := svc.UpdateUser(context.Background(), "u1", ports.UpdateUserInput{Nome: &nome}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if gotUpd.SenhaHash != nil {
		t.Fatal("omitted senha must not touch the stored hash")
	}
	if gotUpd.Nome == nil || *gotUpd.Nome != "Ana Maria" {
		t.Fatalf("expected nome update, got %+v", gotUpd)
	}
}

func TestAuthService_UpdateUser_RehashesProvidedSenha(t *testing.T) {
	var gotUpd ports.UserUpdate
	repo := &stubUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Email: "ana@b.com"}, nil
		},
		updateFn: func(ctx context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
			gotUpd = upd
			return &domain.User{ID: id}, nil
		},
	}
	svc := NewAuthService(repo, &stubRevoker{}, "test-secret", time.Hour, zerolog.Nop())

	senha := "novasenha"
	if _, err := svc.UpdateUser(context.Background(), "u1", ports.UpdateUserInput{Senha: &senha}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if gotUpd.SenhaHash == nil {
		t.Fatal("expected a new hash")
	}
	if bcrypt.CompareHashAndPassword([]byte(*gotUpd.SenhaHash), []byte("novasenha")) != nil {
		t.Fatal("new hash does not match the provided senha")
	}
}

func TestAuthService_UpdateUser_EmailTakenByOther(t *testing.T) {
	repo := &stubUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Email: "ana@b.com"}, nil
		},
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "outro", Email: email}, nil
		},
	}
	svc := NewAuthService(repo, &stubRevoker{}, "test-secret", time.Hour, zerolog.Nop())

	email := "ocupado@b.com"
	if _, err := svc.UpdateUser(context.Background(), "u1", ports.UpdateUserInput{Email: &email}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_DeactivateUser_SelfDeleteBlocked(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, &stubRevoker{}, "test-secret", time.Hour, zerolog.Nop())

	if err := svc.DeactivateUser(context.Background(), "u1", "u1"); !errors.Is(err, domain.ErrSelfDelete) {
		t.Fatalf("expected ErrSelfDelete, got %v", err)
	}
}

func TestAuthService_DeactivateUser_SetsAtivoFalse(t *testing.T) {
	var gotUpd ports.UserUpdate
	repo := &stubUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Ativo: true}, nil
		},
		updateFn: func(ctx context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
			gotUpd = upd
			return &domain.User{ID: id, Ativo: false}, nil
		},
	}
	svc := NewAuthService(repo, &stubRevoker{}, "test-secret", time.Hour, zerolog.Nop())

	if err := svc.DeactivateUser(context.Background(), "u2", "u1"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if gotUpd.Ativo == nil || *gotUpd.Ativo {
		t.Fatal("expected ativo=false update")
	}
}
