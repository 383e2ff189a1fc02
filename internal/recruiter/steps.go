package recruiter

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spigell/interview-panel/internal/platform"
)

const (
	StatusAll = "all"

	SortByName   = "name"
	SortByDate   = "date"
	SortByStatus = "status"
)

type searchFilter struct {
	term string
}

// NewSearch keeps participants whose name or email contains term, ignoring case.
func NewSearch(term string) Filter {
	return &searchFilter{term: strings.ToLower(strings.TrimSpace(term))}
}

func (f *searchFilter) Name() string { return "search" }

func (f *searchFilter) Apply(_ context.Context, participants []*platform.Participant) ([]*platform.Participant, Step, error) {
	initial := len(participants)
	if f.term == "" {
		return participants, Step{Initial: initial, Left: initial}, nil
	}

	kept := participants[:0:0]
	for _, p := range participants {
		if strings.Contains(strings.ToLower(p.Name), f.term) || strings.Contains(strings.ToLower(p.Email), f.term) {
			kept = append(kept, p)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

type statusFilter struct {
	status string
}

// NewStatus keeps participants with the given status. Empty or "all" keeps everyone.
func NewStatus(status string) Filter {
	return &statusFilter{status: strings.TrimSpace(status)}
}

func (f *statusFilter) Name() string { return "status" }

func (f *statusFilter) Apply(_ context.Context, participants []*platform.Participant) ([]*platform.Participant, Step, error) {
	initial := len(participants)
	if f.status == "" || strings.EqualFold(f.status, StatusAll) {
		return participants, Step{Initial: initial, Left: initial}, nil
	}

	kept := participants[:0:0]
	for _, p := range participants {
		if strings.EqualFold(p.Status, f.status) {
			kept = append(kept, p)
		}
	}

	return kept, Step{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

type sortStep struct {
	by string
}

// NewSort orders participants by name, by date (newest first) or by status.
// An empty key keeps the backend order.
func NewSort(by string) Filter {
	return &sortStep{by: strings.ToLower(strings.TrimSpace(by))}
}

func (f *sortStep) Name() string { return "sort" }

func (f *sortStep) Apply(_ context.Context, participants []*platform.Participant) ([]*platform.Participant, Step, error) {
	n := len(participants)
	step := Step{Initial: n, Left: n}

	var less func(a, b *platform.Participant) bool
	switch f.by {
	case "":
		return participants, step, nil
	case SortByName:
		less = func(a, b *platform.Participant) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortByDate:
		less = func(a, b *platform.Participant) bool {
			return a.CreatedAt.After(b.CreatedAt)
		}
	case SortByStatus:
		less = func(a, b *platform.Participant) bool {
			return a.Status < b.Status
		}
	default:
		return nil, Step{}, fmt.Errorf("unknown sort key %q", f.by)
	}

	sorted := append([]*platform.Participant(nil), participants...)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	return sorted, step, nil
}
