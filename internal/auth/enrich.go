package auth

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Enrich resolves the full profile for email. It never fails: when the lookup
// errors or returns an incomplete record, the email doubles as id and name.
// The user type always comes from the saved role.
func (s *State) Enrich(ctx context.Context, email string) *UserProfile {
	s.mu.Lock()
	s.loadingUserData++
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loadingUserData--
		s.mu.Unlock()
	}()

	userType := Applicant
	if saved := s.store.Read(ctx); saved != nil {
		userType = TypeForRole(saved.Role)
	}

	fallback := &UserProfile{
		ID:    email,
		Email: email,
		Name:  email,
		Type:  userType,
	}

	if s.users == nil {
		return fallback
	}

	record, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("loading user profile failed, using email as name",
			zap.String("email", email),
			zap.Error(err),
		)
		return fallback
	}

	if record == nil || strings.TrimSpace(record.Email) == "" || strings.TrimSpace(record.Name) == "" {
		s.logger.Warn("user profile is incomplete, using email as name", zap.String("email", email))
		return fallback
	}

	return &UserProfile{
		ID:       record.ID,
		Email:    record.Email,
		Name:     record.Name,
		LastName: record.LastName,
		Type:     userType,
	}
}
