package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

const testSecret = "test-secret"

type stubUserRepo struct {
	users map[string]*domain.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if user, ok := s.users[email]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Update(ctx context.Context, id string, upd ports.UserUpdate) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

type stubRevoker struct {
	revoked map[string]bool
}

func (s *stubRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if s.revoked == nil {
		s.revoked = make(map[string]bool)
	}
	s.revoked[jti] = true
	return nil
}

func (s *stubRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.revoked[jti], nil
}

func signToken(t *testing.T, subject, jti string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := mw(next)(c)
	return rec, c, err
}

func TestAuth_ValidTokenInjectsUser(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"ana@b.com": {ID: "u1", Email: "ana@b.com", Ativo: true},
	}}
	mw := Auth(testSecret, repo, &stubRevoker{})

	token := signToken(t, "ana@b.com", "jti-1", time.Hour)
	rec, c, err := invoke(t, mw, "Bearer "+token)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	user, ok := c.Get(CtxUser).(*domain.User)
	if !ok || user.ID != "u1" {
		t.Fatalf("expected user in context, got %#v", c.Get(CtxUser))
	}
	if jti, _ := c.Get(CtxTokenJTI).(string); jti != "jti-1" {
		t.Fatalf("expected jti in context, got %q", jti)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	mw := Auth(testSecret, &stubUserRepo{}, &stubRevoker{})

	_, _, err := invoke(t, mw, "")
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	mw := Auth(testSecret, &stubUserRepo{}, &stubRevoker{})

	_, _, err := invoke(t, mw, "Token abc")
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"ana@b.com": {ID: "u1", Email: "ana@b.com", Ativo: true},
	}}
	mw := Auth(testSecret, repo, &stubRevoker{})

	token := signToken(t, "ana@b.com", "jti-1", -time.Minute)
	_, _, err := invoke(t, mw, "Bearer "+token)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"ana@b.com": {ID: "u1", Email: "ana@b.com", Ativo: true},
	}}
	revoker := &stubRevoker{revoked: map[string]bool{"jti-1": true}}
	mw := Auth(testSecret, repo, revoker)

	token := signToken(t, "ana@b.com", "jti-1", time.Hour)
	_, _, err := invoke(t, mw, "Bearer "+token)
	if !errors.Is(err, domain.ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked, got %v", err)
	}
}

func TestAuth_InactiveUser(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"ana@b.com": {ID: "u1", Email: "ana@b.com", Ativo: false},
	}}
	mw := Auth(testSecret, repo, &stubRevoker{})

	token := signToken(t, "ana@b.com", "jti-1", time.Hour)
	_, _, err := invoke(t, mw, "Bearer "+token)
	if !errors.Is(err, domain.ErrUserInactive) {
		t.Fatalf("expected ErrUserInactive, got %v", err)
	}
}

func TestAuth_UnknownSubject(t *testing.T) {
	mw := Auth(testSecret, &stubUserRepo{}, &stubRevoker{})

	token := signToken(t, "quem@b.com", "jti-1", time.Hour)
	_, _, err := invoke(t, mw, "Bearer "+token)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

// Business resources are open to any active authenticated user; only the
// user-management routes stack AdminOnly on top.
func TestAuth_NonAdminUserReachesBusinessRoutes(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"operador@b.com": {ID: "u2", Email: "operador@b.com", Ativo: true, IsAdmin: false},
	}}
	mw := Auth(testSecret, repo, &stubRevoker{})

	token := signToken(t, "operador@b.com", "jti-op", time.Hour)
	rec, c, err := invoke(t, mw, "Bearer "+token)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	user, _ := c.Get(CtxUser).(*domain.User)
	if user == nil || user.IsAdmin {
		t.Fatalf("expected non-admin user in context, got %#v", user)
	}
}

func TestAdminOnly_RejectsNonAdmin(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set(CtxUser, &domain.User{ID: "u1", IsAdmin: false})

	err := AdminOnly()(func(c echo.Context) error { return nil })(c)
	if !errors.Is(err, domain.ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxUser, &domain.User{ID: "u1", IsAdmin: true})

	called := false
	err := AdminOnly()(func(c echo.Context) error { called = true; return c.NoContent(http.StatusOK) })(c)
	if err != nil || !called {
		t.Fatalf("expected handler to run, err=%v called=%v", err, called)
	}
}
