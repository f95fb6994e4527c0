// Package session tracks whether the current run is authenticated and as
// whom. It is the sole gate between the login screen and the board.
package session

import (
	"log/slog"
	"time"

	"github.com/demoapps/taskboard/internal/domain"
	"github.com/demoapps/taskboard/internal/storage"
)

// The fixed demo credential. This is a demo app, not a security boundary.
const (
	demoEmail    = "intern@demo.com"
	demoPassword = "intern123"
)

// Service manages authentication state and its persisted flags
type Service struct {
	store  storage.Store
	logger *slog.Logger

	// delay is a cosmetic pause before login results, simulating network
	// latency. It has no cancellation semantics.
	delay time.Duration

	authenticated bool
	email         string
}

// NewService creates a session service. delay is applied before every
// login result; pass 0 to disable.
func NewService(store storage.Store, logger *slog.Logger, delay time.Duration) *Service {
	return &Service{
		store:  store,
		logger: logger,
		delay:  delay,
	}
}

// Login checks the credential pair. On success it sets authenticated state
// and persists the auth flag; the remember flag is set or cleared per the
// argument. On failure it returns ErrInvalidCredentials and leaves all
// persisted flags untouched. The error is deliberately uniform: it does
// not reveal whether the email or the password was wrong.
func (s *Service) Login(email, password string, remember bool) error {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	if email != demoEmail || password != demoPassword {
		s.logger.Debug("login rejected")
		return domain.ErrInvalidCredentials
	}

	s.authenticated = true
	s.email = email

	if err := s.store.Set(storage.KeyAuth, []byte("true")); err != nil {
		s.logger.Error("failed to persist auth flag", "error", &domain.StorageError{Op: "save", Key: storage.KeyAuth, Err: err})
	}
	if remember {
		if err := s.store.Set(storage.KeyRemember, []byte("true")); err != nil {
			s.logger.Error("failed to persist remember flag", "error", &domain.StorageError{Op: "save", Key: storage.KeyRemember, Err: err})
		}
	} else {
		if err := s.store.Delete(storage.KeyRemember); err != nil {
			s.logger.Error("failed to clear remember flag", "error", &domain.StorageError{Op: "delete", Key: storage.KeyRemember, Err: err})
		}
	}

	s.logger.Debug("login accepted", "remember", remember)
	return nil
}

// Logout clears authenticated state and removes both persisted flags
func (s *Service) Logout() {
	s.authenticated = false
	s.email = ""

	if err := s.store.Delete(storage.KeyAuth); err != nil {
		s.logger.Error("failed to clear auth flag", "error", &domain.StorageError{Op: "delete", Key: storage.KeyAuth, Err: err})
	}
	if err := s.store.Delete(storage.KeyRemember); err != nil {
		s.logger.Error("failed to clear remember flag", "error", &domain.StorageError{Op: "delete", Key: storage.KeyRemember, Err: err})
	}

	s.logger.Debug("logged out")
}

// Restore recovers authenticated state from storage. It succeeds only when
// both the auth flag AND the remember flag are present and true; a
// lingering auth flag without remember starts the run logged out.
func (s *Service) Restore() {
	auth, err := s.store.Get(storage.KeyAuth)
	if err != nil {
		return
	}
	remember, err := s.store.Get(storage.KeyRemember)
	if err != nil {
		return
	}

	if string(auth) == "true" && string(remember) == "true" {
		s.authenticated = true
		s.email = demoEmail
		s.logger.Debug("session restored")
	}
}

// Authenticated reports whether the session is logged in
func (s *Service) Authenticated() bool {
	return s.authenticated
}

// Email returns the active user's email, or "" when logged out
func (s *Service) Email() string {
	return s.email
}
