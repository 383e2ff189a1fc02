package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const participantsPath = "/api/participants"

const (
	ParticipantPending   = "Pendiente"
	ParticipantAssigned  = "Asignado"
	ParticipantCompleted = "Completado"
)

type Participant struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	InterviewIDs []string  `json:"interviewIds,omitempty"`
}

type NewParticipant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

func (c *Client) ListParticipants(ctx context.Context) ([]*Participant, error) {
	items, err := c.getItems(ctx, participantsPath, "participants")
	if err != nil {
		return nil, err
	}

	var participants []*Participant
	if err := decodeItems(items, &participants); err != nil {
		return nil, err
	}

	return participants, nil
}

func (c *Client) CreateParticipant(ctx context.Context, p NewParticipant) (*Participant, error) {
	var raw map[string]any
	if err := c.sendJSON(ctx, http.MethodPost, participantsPath, p, &raw); err != nil {
		return nil, err
	}

	created := &Participant{Name: p.Name, Email: p.Email, Phone: p.Phone, Status: ParticipantPending}
	if raw != nil {
		if err := decodeItems(raw, created); err != nil {
			return nil, err
		}
	}

	return created, nil
}

// AssignInterview links an interview to a participant.
func (c *Client) AssignInterview(ctx context.Context, participantID, interviewID string) error {
	path := fmt.Sprintf("%s/%s/interviews", participantsPath, url.PathEscape(participantID))
	payload := map[string]string{"interviewId": interviewID}

	return c.sendJSON(ctx, http.MethodPost, path, payload, nil)
}
