package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const interviewsPath = "/api/interviews"

const (
	InterviewDraft  = "Borrador"
	InterviewActive = "Activa"
)

// Question is an interview question. Time is the expected answer time in seconds.
type Question struct {
	Text   string  `json:"text"`
	Points float64 `json:"points"`
	Time   int     `json:"time"`
}

type Interview struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	Questions   []Question `json:"questions"`
}

type NewInterview struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Questions   []Question `json:"questions"`
}

func (c *Client) ListInterviews(ctx context.Context) ([]*Interview, error) {
	items, err := c.getItems(ctx, interviewsPath, "interviews")
	if err != nil {
		return nil, err
	}

	var interviews []*Interview
	if err := decodeItems(items, &interviews); err != nil {
		return nil, err
	}

	return interviews, nil
}

func (c *Client) CreateInterview(ctx context.Context, in NewInterview) (*Interview, error) {
	var raw map[string]any
	if err := c.sendJSON(ctx, http.MethodPost, interviewsPath, in, &raw); err != nil {
		return nil, err
	}

	created := &Interview{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Questions:   in.Questions,
	}
	if raw != nil {
		if err := decodeItems(raw, created); err != nil {
			return nil, err
		}
	}

	return created, nil
}

func (c *Client) DeleteInterview(ctx context.Context, id string) error {
	path := fmt.Sprintf("%s/%s", interviewsPath, url.PathEscape(id))
	return c.sendJSON(ctx, http.MethodDelete, path, nil, nil)
}

// FinishInterview submits the answers and recordings of a finished interview.
func (c *Client) FinishInterview(ctx context.Context, id string, body *MultipartBody) error {
	if body == nil {
		return fmt.Errorf("interview submission is empty")
	}

	path := fmt.Sprintf("%s/%s/finishInterview", interviewsPath, url.PathEscape(id))
	resp, err := c.Do(ctx, path, &Request{Method: http.MethodPost, Body: body})
	if err != nil {
		return err
	}

	return decodeJSON(resp, nil)
}
