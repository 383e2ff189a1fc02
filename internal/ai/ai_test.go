package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/interview-panel/internal/platform"
)

type stubGenerator struct {
	questions []platform.Question
	err       error
	counts    []int
}

func (s *stubGenerator) Generate(_ context.Context, _ Draft, count int) ([]platform.Question, error) {
	s.counts = append(s.counts, count)
	if s.err != nil {
		return nil, s.err
	}
	if count < len(s.questions) {
		return s.questions[:count], nil
	}
	return s.questions, nil
}

func questions(texts ...string) []platform.Question {
	out := make([]platform.Question, len(texts))
	for i, text := range texts {
		out[i] = platform.Question{Text: text, Points: 10, Time: 120}
	}
	return out
}

func TestDraftValidate(t *testing.T) {
	require.NoError(t, Draft{Title: "Go", Description: "Backend"}.Validate())
	require.NoError(t, Draft{Title: "Go", Description: "Backend", Status: platform.InterviewActive}.Validate())

	err := Draft{Title: " ", Status: "Cerrada"}.Validate()
	var vErr *platform.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"title", "description", "status"}, vErr.Fields)
}

func TestDraftInterviewDefaultsStatus(t *testing.T) {
	in := Draft{Title: " Go ", Description: "Backend"}.Interview(questions("a"))
	assert.Equal(t, platform.InterviewDraft, in.Status)
	assert.Equal(t, "Go", in.Title)
	assert.Len(t, in.Questions, 1)
}

func TestReviewToggleAndApproved(t *testing.T) {
	r := NewReview(Draft{}, questions("a", "b", "c"))

	require.NoError(t, r.Toggle(1))
	assert.Equal(t, 1, r.NeedsRegeneration())
	assert.Equal(t, questions("a", "c"), r.Approved())

	require.NoError(t, r.Toggle(1))
	assert.Equal(t, 0, r.NeedsRegeneration())
	assert.Error(t, r.Toggle(3))
}

func TestReviewEdit(t *testing.T) {
	r := NewReview(Draft{}, questions("a"))

	require.NoError(t, r.Edit(0, "  What is a goroutine?  "))
	assert.Equal(t, "What is a goroutine?", r.Items[0].Question.Text)
	assert.True(t, platform.IsValidationError(r.Edit(0, "")))
	assert.Error(t, r.Edit(-1, "x"))
}

func TestRegenerateMarkedReplacesOnlyMarked(t *testing.T) {
	gen := &stubGenerator{questions: questions("x", "y")}
	r := NewReview(Draft{Title: "Go"}, questions("a", "b", "c", "d"))
	require.NoError(t, r.Toggle(1))
	require.NoError(t, r.Toggle(3))

	n, err := r.RegenerateMarked(context.Background(), gen)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{2}, gen.counts)
	assert.Equal(t, questions("a", "x", "c", "y"), r.Approved())
}

func TestRegenerateMarkedShortAnswerKeepsMarks(t *testing.T) {
	gen := &stubGenerator{questions: questions("x")}
	r := NewReview(Draft{}, questions("a", "b", "c"))
	require.NoError(t, r.Toggle(0))
	require.NoError(t, r.Toggle(2))

	n, err := r.RegenerateMarked(context.Background(), gen)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, r.NeedsRegeneration())
	assert.Equal(t, StatusRegenerate, r.Items[2].Status)
}

func TestRegenerateMarkedNothingMarked(t *testing.T) {
	gen := &stubGenerator{}
	r := NewReview(Draft{}, questions("a"))

	n, err := r.RegenerateMarked(context.Background(), gen)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, gen.counts)
}

func TestRegenerateMarkedError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota")}
	r := NewReview(Draft{}, questions("a"))
	require.NoError(t, r.Toggle(0))

	_, err := r.RegenerateMarked(context.Background(), gen)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota")
	assert.Equal(t, StatusRegenerate, r.Items[0].Status)
}
