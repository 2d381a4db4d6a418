package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

// newAuthServer fakes the auth endpoints: one valid credential pair, one
// valid token.
func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email string `json:"email"`
			Senha string `json:"senha"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Email != "ana@b.com" || body.Senha != "segredo1" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Email ou senha incorretos"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-1", "token_type": "bearer"})
	})

	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Não foi possível validar as credenciais"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "u1", "nome": "Ana", "email": "ana@b.com", "ativo": true})
	})

	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Logout realizado com sucesso"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestAuthController_Login_Success(t *testing.T) {
	server := newAuthServer(t)
	c := New(server.URL)
	store := NewMemoryTokenStore()
	auth := NewAuthController(c, store)

	if err := auth.Login(context.Background(), "ana@b.com", "segredo1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if !auth.IsAuthenticated() {
		t.Fatal("expected authenticated session")
	}
	if user := auth.CurrentUser(); user == nil || user.ID != "u1" {
		t.Fatalf("expected resolved profile, got %+v", user)
	}
	if c.Token() != "tok-1" {
		t.Fatal("token must be installed on the network client")
	}
	if persisted, _ := store.Load(); persisted != "tok-1" {
		t.Fatal("token must be persisted in the store")
	}
}

func TestAuthController_Login_BackendDetailSurfaced(t *testing.T) {
	server := newAuthServer(t)
	c := New(server.URL)
	auth := NewAuthController(c, NewMemoryTokenStore())

	err := auth.Login(context.Background(), "ana@b.com", "errada99")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Email ou senha incorretos" {
		t.Fatalf("expected backend detail verbatim, got %q", err.Error())
	}
	if auth.IsAuthenticated() {
		t.Fatal("failed login must not authenticate")
	}
}

func TestAuthController_Login_NetworkFailureFallbackMessage(t *testing.T) {
	c := New("http://127.0.0.1:0") // nothing listens here
	auth := NewAuthController(c, NewMemoryTokenStore())

	err := auth.Login(context.Background(), "ana@b.com", "segredo1")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Erro ao fazer login" {
		t.Fatalf("expected generic fallback, got %q", err.Error())
	}
}

func TestAuthController_Logout_ClearsEverything(t *testing.T) {
	server := newAuthServer(t)
	c := New(server.URL)
	store := NewMemoryTokenStore()
	auth := NewAuthController(c, store)

	if err := auth.Login(context.Background(), "ana@b.com", "segredo1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	auth.Logout(context.Background())

	if auth.IsAuthenticated() {
		t.Fatal("expected anonymous session after logout")
	}
	if c.Token() != "" {
		t.Fatal("token must be removed from the network client")
	}
	if persisted, _ := store.Load(); persisted != "" {
		t.Fatal("token must be removed from the store")
	}
	if auth.CurrentUser() != nil {
		t.Fatal("profile must be cleared")
	}
}

func TestAuthController_ResolveCurrentUser_RestoresSession(t *testing.T) {
	server := newAuthServer(t)
	c := New(server.URL)
	store := NewMemoryTokenStore()
	_ = store.Save("tok-1")
	auth := NewAuthController(c, store)

	if err := auth.ResolveCurrentUser(context.Background()); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !auth.IsAuthenticated() {
		t.Fatal("expected restored session")
	}
}

func TestAuthController_ResolveCurrentUser_StaleTokenVoidsSession(t *testing.T) {
	server := newAuthServer(t)
	c := New(server.URL)
	store := NewMemoryTokenStore()
	_ = store.Save("tok-velho")
	auth := NewAuthController(c, store)

	if err := auth.ResolveCurrentUser(context.Background()); err == nil {
		t.Fatal("expected resolution to fail for a stale token")
	}
	if auth.IsAuthenticated() {
		t.Fatal("stale token must not authenticate")
	}
	if c.Token() != "" {
		t.Fatal("stale token must be cleared from the client")
	}
	if persisted, _ := store.Load(); persisted != "" {
		t.Fatal("stale token must be cleared from the store")
	}
}

func TestAuthController_ResolveCurrentUser_NoTokenIsAnonymous(t *testing.T) {
	server := newAuthServer(t)
	auth := NewAuthController(New(server.URL), NewMemoryTokenStore())

	if err := auth.ResolveCurrentUser(context.Background()); err != nil {
		t.Fatalf("no persisted token should resolve cleanly to anonymous: %v", err)
	}
	if auth.IsAuthenticated() {
		t.Fatal("expected anonymous session")
	}
}

func TestGuard_States(t *testing.T) {
	server := newAuthServer(t)
	c := New(server.URL)
	store := NewMemoryTokenStore()
	_ = store.Save("tok-1")
	auth := NewAuthController(c, store)
	guard := NewGuard(auth)

	if guard.State() != GuardPending {
		t.Fatalf("expected pending before resolution, got %v", guard.State())
	}

	guard.Resolve(context.Background())
	if guard.State() != GuardAuthenticated {
		t.Fatalf("expected authenticated, got %v", guard.State())
	}

	auth.Logout(context.Background())
	if guard.State() != GuardAnonymous {
		t.Fatalf("expected anonymous after logout, got %v", guard.State())
	}
}

func TestFileTokenStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "token")
	store := NewFileTokenStore(path)

	if token, err := store.Load(); err != nil || token != "" {
		t.Fatalf("missing file means logged out, got %q %v", token, err)
	}

	if err := store.Save("tok-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if token, _ := store.Load(); token != "tok-1" {
		t.Fatalf("expected persisted token, got %q", token)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if token, _ := store.Load(); token != "" {
		t.Fatal("cleared store must read as logged out")
	}
	// Clearing twice is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}
