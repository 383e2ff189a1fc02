// Package recruiter holds the logic behind the recruiter dashboard: the
// participant filter pipeline, statistics, form validation and result ranking.
package recruiter

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/interview-panel/internal/platform"
)

// Filter represents a single step applied to the participant list.
type Filter interface {
	Name() string
	Apply(ctx context.Context, participants []*platform.Participant) ([]*platform.Participant, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Run executes the supplied filters sequentially and returns the remaining participants.
// The input slice is never modified.
func Run(ctx context.Context, logger *zap.Logger, steps []Filter, participants []*platform.Participant) ([]*platform.Participant, error) {
	current := append([]*platform.Participant(nil), participants...)

	for _, step := range steps {
		next, info, err := step.Apply(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if logger != nil {
			logger.Debug("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		current = next
	}

	return current, nil
}

// Criteria is what the recruiter picked in the participants tab.
type Criteria struct {
	Search string
	Status string
	SortBy string
}

func (c Criteria) Steps() []Filter {
	return []Filter{NewSearch(c.Search), NewStatus(c.Status), NewSort(c.SortBy)}
}

// FilterAndSort applies the search term, the status filter and the ordering.
func FilterAndSort(ctx context.Context, logger *zap.Logger, participants []*platform.Participant, c Criteria) ([]*platform.Participant, error) {
	return Run(ctx, logger, c.Steps(), participants)
}
