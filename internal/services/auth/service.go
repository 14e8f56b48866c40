// Package auth guards the write endpoints. The tool has exactly one
// operator, so there are no accounts: a single admin password unlocks a
// bearer token. In trusted mode (desktop build, localhost development)
// the password check is skipped entirely, matching how the tool behaves
// when it runs next to its own data.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mvukas/rostertag/internal/dependencies/clock"
)

// Errors
var (
	ErrInvalidPassword = errors.New("incorrect password")
	ErrInvalidSession  = errors.New("invalid or expired session")
)

// Session represents an authenticated operator session
type Session struct {
	Token     string
	Trusted   bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Config holds configuration for the auth service
type Config struct {
	// AdminPassword is the plaintext admin password; it is hashed at
	// startup and never kept around.
	AdminPassword string
	// TrustedMode skips the password check (desktop / localhost use)
	TrustedMode     bool
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 7 * 24 * time.Hour,
	}
}

// Service handles admin login and session validation
type Service struct {
	clock  clock.Clock
	logger *slog.Logger

	passwordHash    []byte
	trustedMode     bool
	sessionDuration time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

// New creates a new auth service
func New(clk clock.Clock, cfg Config, logger *slog.Logger) (*Service, error) {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}

	var hash []byte
	if cfg.AdminPassword != "" {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
	}

	return &Service{
		clock:           clk,
		logger:          logger,
		passwordHash:    hash,
		trustedMode:     cfg.TrustedMode || hash == nil,
		sessionDuration: cfg.SessionDuration,
		sessions:        make(map[string]*Session),
	}, nil
}

// TrustedMode reports whether the password check is bypassed
func (s *Service) TrustedMode() bool {
	return s.trustedMode
}

// Login checks the admin password and issues a session. In trusted mode
// any password (including none) is accepted.
func (s *Service) Login(password string) (*Session, error) {
	if s.trustedMode {
		s.logger.Info("trusted mode login")
		return s.createSession(true), nil
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}
	return s.createSession(false), nil
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// InvalidateSession removes a session
func (s *Service) InvalidateSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// CleanExpiredSessions removes expired sessions (call periodically)
func (s *Service) CleanExpiredSessions() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}

// createSession creates and stores a new session
func (s *Service) createSession(trusted bool) *Session {
	now := s.clock.Now()
	session := &Session{
		Token:     generateToken(),
		Trusted:   trusted,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session
}

// generateToken generates a random session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
