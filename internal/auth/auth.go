// Package auth holds the authentication state of the running client: who is
// signed in, restored from the session slot and enriched from the backend.
package auth

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/spigell/interview-panel/internal/platform"
	"github.com/spigell/interview-panel/internal/session"
)

type UserType string

const (
	Recruiter UserType = "reclutador"
	Applicant UserType = "postulante"
)

// recruiterMarker is looked up case-insensitively in saved roles such as "ROLE_RECLUTADOR".
const recruiterMarker = "reclutador"

type UserProfile struct {
	ID       string
	Email    string
	Name     string
	LastName string
	Type     UserType
}

type LoginArgs struct {
	Email string
	Role  string
}

// UserFinder looks up a full profile by email.
type UserFinder interface {
	FindUserByEmail(ctx context.Context, email string) (*platform.UserRecord, error)
}

// State is the authentication state of one client. It is created once,
// initialized with Init and torn down with Logout.
type State struct {
	store  *session.Store
	users  UserFinder
	logger *zap.Logger

	mu              sync.RWMutex
	user            *UserProfile
	initializing    bool
	loadingUserData int
}

func New(store *session.Store, users UserFinder, logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &State{
		store:        store,
		users:        users,
		logger:       logger,
		initializing: true,
	}
}

// TypeForRole derives the user type from a saved role string.
func TypeForRole(role string) UserType {
	if strings.Contains(strings.ToLower(role), recruiterMarker) {
		return Recruiter
	}
	return Applicant
}

// Init restores the session saved by a previous run.
func (s *State) Init(ctx context.Context) *UserProfile {
	s.logger.Debug("initializing authentication")

	user := s.restore(ctx)

	s.mu.Lock()
	s.user = user
	s.initializing = false
	s.mu.Unlock()

	if user == nil {
		s.logger.Debug("no saved user")
	} else {
		s.logger.Debug("user restored", zap.String("email", user.Email), zap.String("type", string(user.Type)))
	}

	return copyProfile(user)
}

// Sync reloads the profile after the slot was changed by another process.
func (s *State) Sync(ctx context.Context) *UserProfile {
	user := s.restore(ctx)

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	return copyProfile(user)
}

// Login persists the identity and loads the matching profile.
func (s *State) Login(ctx context.Context, args LoginArgs) (*UserProfile, error) {
	email := strings.TrimSpace(args.Email)
	if email == "" {
		return nil, &platform.ValidationError{Message: "email is required", Fields: []string{"email"}}
	}

	if err := s.store.Save(ctx, session.SavedIdentity{Email: email, Role: strings.TrimSpace(args.Role)}); err != nil {
		return nil, err
	}

	user := s.Enrich(ctx, email)

	s.mu.Lock()
	s.user = user
	s.initializing = false
	s.mu.Unlock()

	s.logger.Info("signed in", zap.String("email", user.Email), zap.String("type", string(user.Type)))

	return copyProfile(user), nil
}

// Logout forgets the saved identity and the in-memory profile.
func (s *State) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	return nil
}

func (s *State) User() *UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProfile(s.user)
}

// IsAuthenticated reports whether a session record exists in the slot.
func (s *State) IsAuthenticated(ctx context.Context) bool {
	return s.store.Has(ctx)
}

func (s *State) IsInitializing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initializing
}

func (s *State) IsLoadingUserData() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadingUserData > 0
}

func (s *State) IsRecruiter() bool {
	return s.hasType(Recruiter)
}

func (s *State) IsApplicant() bool {
	return s.hasType(Applicant)
}

// HasRole compares role with the saved role, ignoring case.
func (s *State) HasRole(ctx context.Context, role string) bool {
	saved := s.store.Read(ctx)
	return saved != nil && saved.Role != "" && strings.EqualFold(saved.Role, role)
}

func (s *State) hasType(t UserType) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Type == t
}

func (s *State) restore(ctx context.Context) *UserProfile {
	saved := s.store.Read(ctx)
	if saved == nil {
		return nil
	}
	return s.Enrich(ctx, saved.Email)
}

func copyProfile(u *UserProfile) *UserProfile {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
