package recruiter

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/interview-panel/internal/platform"
)

type fakeBackend struct {
	participantsErr error
	calls           atomic.Int32
}

func (f *fakeBackend) ListParticipants(context.Context) ([]*platform.Participant, error) {
	f.calls.Add(1)
	if f.participantsErr != nil {
		return nil, f.participantsErr
	}
	return sampleParticipants(), nil
}

func (f *fakeBackend) ListInterviews(context.Context) ([]*platform.Interview, error) {
	f.calls.Add(1)
	return []*platform.Interview{{ID: "i1", Title: "Go"}}, nil
}

func (f *fakeBackend) ListCompletedInterviews(context.Context) ([]*platform.CompletedInterview, error) {
	f.calls.Add(1)
	return []*platform.CompletedInterview{result("c1", "Go", 88)}, nil
}

func TestDashboardLoadAll(t *testing.T) {
	backend := &fakeBackend{}

	snap, err := NewDashboard(backend, nil).Load(context.Background(), TabAll)
	require.NoError(t, err)
	assert.Len(t, snap.Participants, 4)
	assert.Len(t, snap.Interviews, 1)
	assert.Len(t, snap.Completed, 1)
	assert.Equal(t, 2, snap.Stats.Pending)
	assert.EqualValues(t, 3, backend.calls.Load())
}

func TestDashboardLoadOnlyResults(t *testing.T) {
	backend := &fakeBackend{}

	snap, err := NewDashboard(backend, nil).Load(context.Background(), TabResults)
	require.NoError(t, err)
	assert.Nil(t, snap.Participants)
	assert.Len(t, snap.Completed, 1)
	assert.EqualValues(t, 1, backend.calls.Load())
}

func TestDashboardLoadError(t *testing.T) {
	backend := &fakeBackend{participantsErr: &platform.HTTPError{Status: 500, Message: "Server problem. Try again later."}}

	_, err := NewDashboard(backend, nil).Load(context.Background(), TabParticipants)
	require.Error(t, err)
	assert.Equal(t, 500, platform.StatusCode(err))
	assert.Contains(t, err.Error(), "loading participants")
}

func TestDashboardUnknownTab(t *testing.T) {
	_, err := NewDashboard(&fakeBackend{}, nil).Load(context.Background(), Tab("settings"))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, context.Canceled))
}
