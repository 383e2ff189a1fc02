package platform

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

const completedPath = "/api/interviews/completed"

type Answer struct {
	QuestionText string  `json:"questionText"`
	ResponseText string  `json:"responseText"`
	Points       float64 `json:"points"`
	Description  string  `json:"description"`
}

// CompletedInterview is an interview a candidate finished. Duration is in seconds.
type CompletedInterview struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	UserName       string    `json:"userName"`
	InterviewTitle string    `json:"interviewTitle"`
	Date           time.Time `json:"date"`
	Score          float64   `json:"score"`
	Duration       int       `json:"duration"`
	Answers        []Answer  `json:"answers"`
}

func (c *Client) ListCompletedInterviews(ctx context.Context) ([]*CompletedInterview, error) {
	return c.completed(ctx, completedPath)
}

// CompletedInterviewsByUser returns the finished interviews of one candidate.
func (c *Client) CompletedInterviewsByUser(ctx context.Context, userID string) ([]*CompletedInterview, error) {
	return c.completed(ctx, fmt.Sprintf("%s/user/%s", completedPath, url.PathEscape(userID)))
}

func (c *Client) completed(ctx context.Context, path string) ([]*CompletedInterview, error) {
	items, err := c.getItems(ctx, path, "interviews")
	if err != nil {
		return nil, err
	}

	var completed []*CompletedInterview
	if err := decodeItems(items, &completed); err != nil {
		return nil, err
	}

	return completed, nil
}
