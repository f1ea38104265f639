package api

import (
	"context"
	"net/http"

	"research-agent/client/internal/model"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type apiKeyRequest struct {
	APIKey string `json:"api_key" validate:"required"`
}

// userEnvelope matches the server's `{"user": {...}}` wrapper. The user is
// null for anonymous sessions.
type userEnvelope struct {
	User *model.User `json:"user"`
}

type apiKeyResponse struct {
	Detail        string `json:"detail"`
	HasAPIKey     bool   `json:"has_api_key"`
	APIKeyPreview string `json:"api_key_preview"`
}

// CurrentUser fetches the session user. A nil user with a nil error means
// the session is anonymous.
func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/auth/user/", nil, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*model.User, error) {
	payload := loginRequest{Username: username, Password: password}
	if err := validateRequest(payload); err != nil {
		return nil, err
	}
	var env userEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/auth/login/", payload, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	payload := registerRequest{Username: username, Email: email, Password: password}
	if err := validateRequest(payload); err != nil {
		return nil, err
	}
	var env userEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/auth/register/", payload, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout/", nil, nil)
}

// SaveAPIKey stores the user's model-provider key server-side and returns
// the masked preview the server echoes back.
func (c *Client) SaveAPIKey(ctx context.Context, apiKey string) (string, error) {
	payload := apiKeyRequest{APIKey: apiKey}
	if err := validateRequest(payload); err != nil {
		return "", err
	}
	var resp apiKeyResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/api-key/", payload, &resp); err != nil {
		return "", err
	}
	return resp.APIKeyPreview, nil
}

func (c *Client) DeleteAPIKey(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/auth/api-key/delete/", nil, nil)
}
