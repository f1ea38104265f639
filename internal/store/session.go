package store

import (
	"context"
	"log/slog"
	"sync"

	"research-agent/client/internal/interfaces"
	"research-agent/client/internal/model"
)

// SessionStore holds the authenticated user and drives the session
// lifecycle. The user reference is replaced wholesale on login, logout and
// session checks; other stores never mutate it.
type SessionStore struct {
	mu       sync.RWMutex
	backend  interfaces.AuthAPI
	user     *model.User
	loading  bool
	lastErr  error
	onLogout []func()
}

func NewSessionStore(backend interfaces.AuthAPI) *SessionStore {
	return &SessionStore{backend: backend}
}

// CheckAuth primes the anti-forgery cookie and fetches the session user.
// Failures are swallowed: the session simply stays anonymous.
func (s *SessionStore) CheckAuth(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()

	var user *model.User
	err := s.backend.PrimeCSRF(ctx)
	if err == nil {
		user, err = s.backend.CurrentUser(ctx)
	}
	if err != nil {
		slog.Debug("Session check failed, treating session as anonymous", "error", err)
		user = nil
	}

	s.mu.Lock()
	s.user = user
	s.loading = false
	s.mu.Unlock()
}

func (s *SessionStore) Login(ctx context.Context, username, password string) error {
	user, err := s.backend.Login(ctx, username, password)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return err
	}
	s.lastErr = nil
	s.user = user
	return nil
}

func (s *SessionStore) Register(ctx context.Context, username, email, password string) error {
	user, err := s.backend.Register(ctx, username, email, password)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return err
	}
	s.lastErr = nil
	s.user = user
	return nil
}

// Logout ends the server session, clears the user and fires the registered
// logout observers so dependent stores can reset themselves.
func (s *SessionStore) Logout(ctx context.Context) error {
	if err := s.backend.Logout(ctx); err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.user = nil
	s.lastErr = nil
	observers := make([]func(), len(s.onLogout))
	copy(observers, s.onLogout)
	s.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
	return nil
}

// SaveAPIKey stores the model-provider key server-side and updates the
// user's key flags from the server's response.
func (s *SessionStore) SaveAPIKey(ctx context.Context, apiKey string) error {
	preview, err := s.backend.SaveAPIKey(ctx, apiKey)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return err
	}
	s.lastErr = nil
	if s.user != nil {
		s.user.HasAPIKey = true
		s.user.APIKeyPreview = preview
	}
	return nil
}

func (s *SessionStore) DeleteAPIKey(ctx context.Context) error {
	if err := s.backend.DeleteAPIKey(ctx); err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = nil
	if s.user != nil {
		s.user.HasAPIKey = false
		s.user.APIKeyPreview = ""
	}
	return nil
}

// OnLogout registers an observer invoked after a successful logout.
func (s *SessionStore) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = append(s.onLogout, fn)
}

// User returns a copy of the session user, or nil for anonymous sessions.
func (s *SessionStore) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *SessionStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *SessionStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
