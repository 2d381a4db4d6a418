package client

import (
	"context"
	"sync"
)

// GuardState is the route guard's observable state.
type GuardState int

const (
	// GuardPending means session resolution is still in flight. Callers
	// render a loading surface and never redirect prematurely.
	GuardPending GuardState = iota
	// GuardAuthenticated means token and profile are both present.
	GuardAuthenticated
	// GuardAnonymous means there is no session; redirect to login.
	GuardAnonymous
)

func (s GuardState) String() string {
	switch s {
	case GuardPending:
		return "pending"
	case GuardAuthenticated:
		return "authenticated"
	case GuardAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Guard gates protected surfaces on the auth controller's session state.
type Guard struct {
	auth *AuthController

	mu       sync.RWMutex
	resolved bool
}

func NewGuard(auth *AuthController) *Guard {
	return &Guard{auth: auth}
}

// Resolve runs startup session resolution exactly once per call and flips
// the guard out of the pending state regardless of the outcome.
func (g *Guard) Resolve(ctx context.Context) {
	// Resolution failure leaves an anonymous session; it is not fatal.
	_ = g.auth.ResolveCurrentUser(ctx)

	g.mu.Lock()
	g.resolved = true
	g.mu.Unlock()
}

// State returns the current guard state.
func (g *Guard) State() GuardState {
	g.mu.RLock()
	resolved := g.resolved
	g.mu.RUnlock()

	if !resolved {
		return GuardPending
	}
	if g.auth.IsAuthenticated() {
		return GuardAuthenticated
	}
	return GuardAnonymous
}
