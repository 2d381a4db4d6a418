package client

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

// Fallback messages shown when the backend does not provide a detail.
const (
	msgLoginFailed = "Erro ao fazer login"
)

type loginPayload struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthController owns the session: token plus resolved profile. A session
// counts as authenticated only when both are present.
type AuthController struct {
	client *Client
	store  TokenStore
	log    zerolog.Logger

	mu   sync.RWMutex
	user *User
}

func NewAuthController(client *Client, store TokenStore) *AuthController {
	return &AuthController{
		client: client,
		store:  store,
		log:    client.log,
	}
}

// Login exchanges credentials for a token, installs it everywhere (client
// header, persisted store, memory) and resolves the profile. On failure the
// previous session, if any, is left untouched and the backend's detail is
// surfaced; without one the generic fallback is returned.
func (a *AuthController) Login(ctx context.Context, email, senha string) error {
	var result loginResult
	err := a.client.post(ctx, "/api/auth/login", loginPayload{Email: email, Senha: senha}, &result)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			return err
		}
		a.log.Warn().Err(err).Msg("login request failed")
		return errors.New(msgLoginFailed)
	}

	a.client.SetToken(result.AccessToken)
	if err := a.store.Save(result.AccessToken); err != nil {
		a.log.Warn().Err(err).Msg("token persist failed")
	}

	user, err := a.fetchProfile(ctx)
	if err != nil {
		// A token without a resolvable profile is not a session.
		a.voidSession()
		return errors.New(msgLoginFailed)
	}

	a.mu.Lock()
	a.user = user
	a.mu.Unlock()

	return nil
}

// Logout revokes the token server-side on a best-effort basis, then clears
// the session. After Logout returns no request can carry the old token.
func (a *AuthController) Logout(ctx context.Context) {
	if a.client.Token() != "" {
		if err := a.client.post(ctx, "/api/auth/logout", nil, nil); err != nil {
			a.log.Warn().Err(err).Msg("logout request failed, clearing session anyway")
		}
	}
	a.voidSession()
}

// ResolveCurrentUser restores a persisted session at startup: loads the
// stored token, attaches it and fetches the profile. Any failure voids the
// session; there is no retry loop here.
func (a *AuthController) ResolveCurrentUser(ctx context.Context) error {
	token, err := a.store.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	a.client.SetToken(token)
	user, err := a.fetchProfile(ctx)
	if err != nil {
		a.voidSession()
		return err
	}

	a.mu.Lock()
	a.user = user
	a.mu.Unlock()

	return nil
}

// IsAuthenticated reports whether a token is installed AND the profile has
// been resolved. Both are required.
func (a *AuthController) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.client.Token() != "" && a.user != nil
}

// CurrentUser returns the resolved profile, nil when logged out.
func (a *AuthController) CurrentUser() *User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

func (a *AuthController) fetchProfile(ctx context.Context) (*User, error) {
	var user User
	if err := a.client.get(ctx, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *AuthController) voidSession() {
	a.client.ClearToken()
	if err := a.store.Clear(); err != nil {
		a.log.Warn().Err(err).Msg("token store clear failed")
	}
	a.mu.Lock()
	a.user = nil
	a.mu.Unlock()
}
