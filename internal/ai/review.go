package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/spigell/interview-panel/internal/platform"
)

type ReviewStatus string

const (
	StatusApproved   ReviewStatus = "approved"
	StatusRegenerate ReviewStatus = "regenerate"
)

type ReviewItem struct {
	Question platform.Question
	Status   ReviewStatus
}

// Review tracks generated questions while the recruiter approves, edits or
// marks them for regeneration. Every question starts approved.
type Review struct {
	Draft Draft
	Items []ReviewItem
}

func NewReview(draft Draft, questions []platform.Question) *Review {
	items := make([]ReviewItem, len(questions))
	for i, q := range questions {
		items[i] = ReviewItem{Question: q, Status: StatusApproved}
	}
	return &Review{Draft: draft, Items: items}
}

// Toggle flips question i between approved and regenerate.
func (r *Review) Toggle(i int) error {
	if err := r.check(i); err != nil {
		return err
	}

	if r.Items[i].Status == StatusApproved {
		r.Items[i].Status = StatusRegenerate
	} else {
		r.Items[i].Status = StatusApproved
	}
	return nil
}

func (r *Review) Edit(i int, text string) error {
	if err := r.check(i); err != nil {
		return err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return &platform.ValidationError{Message: "question text is required", Fields: []string{"text"}}
	}
	r.Items[i].Question.Text = text
	return nil
}

func (r *Review) NeedsRegeneration() int {
	n := 0
	for _, item := range r.Items {
		if item.Status == StatusRegenerate {
			n++
		}
	}
	return n
}

// RegenerateMarked asks gen for replacements of the marked questions only.
// Replacements keep their position and come back approved. When gen returns
// fewer questions than requested the remaining ones stay marked.
func (r *Review) RegenerateMarked(ctx context.Context, gen QuestionGenerator) (int, error) {
	marked := r.NeedsRegeneration()
	if marked == 0 {
		return 0, nil
	}

	fresh, err := gen.Generate(ctx, r.Draft, marked)
	if err != nil {
		return 0, fmt.Errorf("regenerating questions: %w", err)
	}

	replaced := 0
	for i := range r.Items {
		if replaced == len(fresh) {
			break
		}
		if r.Items[i].Status != StatusRegenerate {
			continue
		}
		r.Items[i] = ReviewItem{Question: fresh[replaced], Status: StatusApproved}
		replaced++
	}

	return replaced, nil
}

func (r *Review) Approved() []platform.Question {
	var out []platform.Question
	for _, item := range r.Items {
		if item.Status == StatusApproved {
			out = append(out, item.Question)
		}
	}
	return out
}

func (r *Review) check(i int) error {
	if i < 0 || i >= len(r.Items) {
		return fmt.Errorf("question %d is out of range (have %d)", i+1, len(r.Items))
	}
	return nil
}
