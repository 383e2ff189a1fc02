package platform

import (
	"context"
	"net/http"
	"strings"
)

const loginPath = "/auth/login"

type LoginResult struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks the credentials against the auth service. The service does not
// issue a token: the returned identity is what the client keeps.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.sendJSON(ctx, http.MethodPost, joinURL(c.AuthURL, loginPath), credentials{
		Email:    strings.TrimSpace(email),
		Password: strings.TrimSpace(password),
	}, &result)
	if err != nil {
		return nil, err
	}

	result.Email = strings.TrimSpace(result.Email)
	if result.Email == "" {
		return nil, ErrInvalidLoginResponse
	}

	return &result, nil
}
