package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetledger/fleetledger/internal/api/middleware"
	"github.com/fleetledger/fleetledger/internal/core/domain"
	"github.com/fleetledger/fleetledger/internal/core/ports"
)

type stubAuthService struct {
	loginFn      func(ctx context.Context, email, senha string) (string, error)
	logoutFn     func(ctx context.Context, jti string, expiresAt time.Time) error
	registerFn   func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	listFn       func(ctx context.Context, skip, limit int) ([]*domain.User, error)
	updateFn     func(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error)
	deactivateFn func(ctx context.Context, id, callerID string) error
}

func (s *stubAuthService) Login(ctx context.Context, email, senha string) (string, error) {
	return s.loginFn(ctx, email, senha)
}

func (s *stubAuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	return s.logoutFn(ctx, jti, expiresAt)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) ListUsers(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	return s.listFn(ctx, skip, limit)
}

func (s *stubAuthService) UpdateUser(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubAuthService) DeactivateUser(ctx context.Context, id, callerID string) error {
	return s.deactivateFn(ctx, id, callerID)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, senha string) (string, error) {
			if email != "ana@b.com" || senha != "segredo1" {
				t.Fatalf("unexpected credentials: %s %s", email, senha)
			}
			return "tok-123", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"ana@b.com","senha":"segredo1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "tok-123" || resp["token_type"] != "bearer" {
		t.Fatalf("unexpected payload: %v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentialsBubble(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, senha string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"ana@b.com","senha":"errada99"}`)
	err := h.Login(c)
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected the domain error to bubble to the error handler, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"ana@b.com"}`)
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Logout_UsesTokenClaims(t *testing.T) {
	var gotJTI string
	var gotExp time.Time
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, jti string, expiresAt time.Time) error {
			gotJTI = jti
			gotExp = expiresAt
			return nil
		},
	}
	h := NewAuthHandler(stub)

	exp := time.Now().Add(time.Hour)
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/logout", "")
	c.Set(middleware.CtxTokenJTI, "jti-1")
	c.Set(middleware.CtxTokenExp, exp)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotJTI != "jti-1" || !gotExp.Equal(exp) {
		t.Fatalf("unexpected claims: %s %v", gotJTI, gotExp)
	}
}

func TestAuthHandler_Register_Created(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			return &domain.User{ID: "u9", Nome: input.Nome, Email: input.Email, Ativo: true, IsAdmin: input.IsAdmin}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"nome":"Ana","email":"ana@b.com","senha":"segredo1","is_admin":true}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var user map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user["id"] != "u9" || user["is_admin"] != true {
		t.Fatalf("unexpected user payload: %v", user)
	}
	if _, leaked := user["senha_hash"]; leaked {
		t.Fatal("password hash must never be serialised")
	}
}

func TestAuthHandler_Register_ShortSenha(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"nome":"Ana","email":"ana@b.com","senha":"123"}`)
	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_UpdateUser_OmittedSenhaStaysNil(t *testing.T) {
	var gotInput ports.UpdateUserInput
	stub := &stubAuthService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
			gotInput = input
			return &domain.User{ID: id}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/api/auth/users/u1", `{"nome":"Novo Nome"}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.UpdateUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotInput.Senha != nil {
		t.Fatal("senha absent from the payload must stay nil (password unchanged)")
	}
	if gotInput.Nome == nil || *gotInput.Nome != "Novo Nome" {
		t.Fatalf("expected nome update, got %+v", gotInput)
	}
}

func TestAuthHandler_DeleteUser_PassesCallerID(t *testing.T) {
	var gotID, gotCaller string
	stub := &stubAuthService{
		deactivateFn: func(ctx context.Context, id, callerID string) error {
			gotID, gotCaller = id, callerID
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/api/auth/users/u2", "")
	c.SetParamNames("id")
	c.SetParamValues("u2")
	c.Set(middleware.CtxUser, &domain.User{ID: "u1", IsAdmin: true})

	if err := h.DeleteUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "u2" || gotCaller != "u1" {
		t.Fatalf("unexpected args: id=%s caller=%s", gotID, gotCaller)
	}
}

func TestAuthHandler_DeleteUser_SelfDeleteBubbles(t *testing.T) {
	stub := &stubAuthService{
		deactivateFn: func(ctx context.Context, id, callerID string) error {
			return domain.ErrSelfDelete
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/api/auth/users/u1", "")
	c.SetParamNames("id")
	c.SetParamValues("u1")
	c.Set(middleware.CtxUser, &domain.User{ID: "u1", IsAdmin: true})

	if err := h.DeleteUser(c); err != domain.ErrSelfDelete {
		t.Fatalf("expected ErrSelfDelete to bubble, got %v", err)
	}
}
