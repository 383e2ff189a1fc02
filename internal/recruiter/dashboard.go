package recruiter

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/interview-panel/internal/platform"
)

// Tab selects what the dashboard loads.
type Tab string

const (
	TabParticipants Tab = "participants"
	TabInterviews   Tab = "interviews"
	TabResults      Tab = "results"
	TabAll          Tab = "all"
)

// Backend is the part of the platform client the dashboard reads from.
type Backend interface {
	ListParticipants(ctx context.Context) ([]*platform.Participant, error)
	ListInterviews(ctx context.Context) ([]*platform.Interview, error)
	ListCompletedInterviews(ctx context.Context) ([]*platform.CompletedInterview, error)
}

type Dashboard struct {
	backend Backend
	logger  *zap.Logger
}

// Snapshot is everything one dashboard load fetched.
type Snapshot struct {
	Participants []*platform.Participant
	Interviews   []*platform.Interview
	Completed    []*platform.CompletedInterview
	Stats        Stats
}

func NewDashboard(backend Backend, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{backend: backend, logger: logger}
}

// Load fetches the data of tab concurrently. The first failure cancels the rest.
func (d *Dashboard) Load(ctx context.Context, tab Tab) (*Snapshot, error) {
	switch tab {
	case TabAll, TabParticipants, TabInterviews, TabResults:
	default:
		return nil, fmt.Errorf("unknown dashboard tab %q", tab)
	}

	snap := &Snapshot{}
	g, ctx := errgroup.WithContext(ctx)

	if tab == TabAll || tab == TabParticipants {
		g.Go(func() error {
			participants, err := d.backend.ListParticipants(ctx)
			if err != nil {
				return fmt.Errorf("loading participants: %w", err)
			}
			snap.Participants = participants
			return nil
		})
	}

	if tab == TabAll || tab == TabParticipants || tab == TabInterviews {
		g.Go(func() error {
			interviews, err := d.backend.ListInterviews(ctx)
			if err != nil {
				return fmt.Errorf("loading interviews: %w", err)
			}
			snap.Interviews = interviews
			return nil
		})
	}

	if tab == TabAll || tab == TabResults {
		g.Go(func() error {
			completed, err := d.backend.ListCompletedInterviews(ctx)
			if err != nil {
				return fmt.Errorf("loading completed interviews: %w", err)
			}
			snap.Completed = completed
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.Stats = ComputeStats(snap.Participants)

	d.logger.Debug("dashboard loaded",
		zap.String("tab", string(tab)),
		zap.Int("participants", len(snap.Participants)),
		zap.Int("interviews", len(snap.Interviews)),
		zap.Int("completed", len(snap.Completed)),
	)

	return snap, nil
}
