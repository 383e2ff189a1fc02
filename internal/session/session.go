// Package session persists the identity of the signed-in user between runs.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// Key is the slot name holding the saved identity.
const Key = "authUser"

// ErrNotFound is returned by a Slot when the key holds no value.
var ErrNotFound = errors.New("session slot: key not found")

// SavedIdentity is the minimal record kept in the slot.
type SavedIdentity struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Slot is a durable key-value location. Implementations must replace a value
// atomically: a reader sees either the previous or the new record.
type Slot interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Store reads and writes the saved identity. A Store without a slot behaves as
// if no persistent storage exists: writes are dropped and reads find nothing.
type Store struct {
	slot   Slot
	key    string
	logger *zap.Logger
}

func New(slot Slot, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Store{
		slot:   slot,
		key:    Key,
		logger: logger,
	}
}

// Available reports whether the store is backed by a slot.
func (s *Store) Available() bool {
	return s != nil && s.slot != nil
}

// Save overwrites the slot with identity.
func (s *Store) Save(ctx context.Context, identity SavedIdentity) error {
	if !s.Available() {
		return nil
	}

	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	return s.slot.Set(ctx, s.key, string(data))
}

// Clear removes the saved identity. Missing records are not an error.
func (s *Store) Clear(ctx context.Context) error {
	if !s.Available() {
		return nil
	}

	if err := s.slot.Delete(ctx, s.key); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	return nil
}

// Has reports whether the slot holds a non-empty value. The value is not parsed.
func (s *Store) Has(ctx context.Context) bool {
	raw, ok := s.raw(ctx)
	return ok && raw != ""
}

// Read returns the saved identity or nil when the slot is absent, unreadable
// or holds something that is not a usable identity.
func (s *Store) Read(ctx context.Context) *SavedIdentity {
	raw, ok := s.raw(ctx)
	if !ok || raw == "" {
		return nil
	}

	var identity *SavedIdentity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		s.logger.Debug("ignoring malformed saved identity", zap.Error(err))
		return nil
	}

	if identity == nil || strings.TrimSpace(identity.Email) == "" {
		return nil
	}

	return identity
}

func (s *Store) raw(ctx context.Context) (string, bool) {
	if !s.Available() {
		return "", false
	}

	raw, err := s.slot.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("reading session slot", zap.String("key", s.key), zap.Error(err))
		}
		return "", false
	}

	return strings.TrimSpace(raw), true
}
