package platform

import (
	"context"
	"net/url"
)

const findByEmailPath = "/api/user/findByEmail"

type UserRecord struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
}

// FindUserByEmail looks up the profile registered for email.
func (c *Client) FindUserByEmail(ctx context.Context, email string) (*UserRecord, error) {
	path := findByEmailPath + "?" + url.Values{"email": []string{email}}.Encode()

	var raw map[string]any
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return nil, err
	}

	var user UserRecord
	if err := decodeItems(raw, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
