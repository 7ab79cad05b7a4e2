// Package auth is the username/password gate in front of the game.
// Passwords are stored as hex-encoded SHA-256 digests in a RecordStore;
// records are only ever added.
package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var (
	ErrAlreadyExists    = errors.New("auth: username already exists")
	ErrNotFound         = errors.New("auth: username not found")
	ErrMismatch         = errors.New("auth: wrong password")
	ErrEmptyCredentials = errors.New("auth: username and password are required")
)

// RecordStore persists username -> password digest records.
type RecordStore interface {
	// Lookup returns the digest for username or ErrNotFound.
	Lookup(ctx context.Context, username string) (string, error)
	// Insert adds a record or returns ErrAlreadyExists. Existing records are
	// never overwritten.
	Insert(ctx context.Context, username, digest string) error
	// Close releases store resources.
	Close() error
}

// Hash returns the lowercase hex SHA-256 digest of password.
func Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Session is issued on a successful login.
type Session struct {
	Token    string
	Username string
	IssuedAt time.Time
}

// Service implements register, verify and login over a RecordStore.
type Service struct {
	store  RecordStore
	logger *log.Logger
	now    func() time.Time
}

// NewService creates a service. A nil logger uses the default logger.
func NewService(store RecordStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// normalize trims surrounding spaces from the username. Passwords are used
// as typed.
func normalize(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrEmptyCredentials
	}
	return username, nil
}

// Register adds a new user.
func (s *Service) Register(ctx context.Context, username, password string) error {
	username, err := normalize(username, password)
	if err != nil {
		return err
	}

	if err := s.store.Insert(ctx, username, Hash(password)); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			s.logger.Info("register rejected", "user", username, "reason", "exists")
			return err
		}
		return fmt.Errorf("auth: register %q: %w", username, err)
	}

	s.logger.Info("user registered", "user", username)
	return nil
}

// Verify checks a username and password against the stored digest.
func (s *Service) Verify(ctx context.Context, username, password string) error {
	username, err := normalize(username, password)
	if err != nil {
		return err
	}

	stored, err := s.store.Lookup(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.Warn("login failed", "user", username, "reason", "unknown user")
			return err
		}
		return fmt.Errorf("auth: lookup %q: %w", username, err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(Hash(password))) != 1 {
		s.logger.Warn("login failed", "user", username, "reason", "wrong password")
		return ErrMismatch
	}
	return nil
}

// Login verifies the credentials and issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	if err := s.Verify(ctx, username, password); err != nil {
		return Session{}, err
	}

	sess := Session{
		Token:    uuid.New().String(),
		Username: strings.TrimSpace(username),
		IssuedAt: s.now(),
	}
	s.logger.Info("user logged in", "user", sess.Username)
	return sess, nil
}

// Close closes the underlying store.
func (s *Service) Close() error {
	return s.store.Close()
}
