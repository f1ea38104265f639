package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	apperrors "research-agent/client/internal/errors"
)

const (
	csrfCookieName = "csrftoken"
	csrfHeader     = "X-CSRFToken"

	// genericFailure is used when the server's error body carries no message.
	genericFailure = "Request failed"
)

// APIError is a non-2xx response from the server. Message is the
// server-supplied `error` field when present, else a generic fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// Unwrap maps well-known HTTP statuses to the client's sentinel errors so
// callers can use errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	case http.StatusBadRequest:
		return apperrors.ErrValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.ErrUnauthorized
	}
	return nil
}

// Client talks to the research-assistant REST API. All requests are
// credentialed through the cookie jar; every mutating request echoes the
// anti-forgery token read from the csrftoken cookie.
type Client struct {
	http    *http.Client
	baseURL *url.URL
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("could not create cookie jar: %w", err)
	}
	return &Client{
		http:    &http.Client{Jar: jar, Timeout: timeout},
		baseURL: u,
	}, nil
}

// CSRFToken returns the current value of the anti-forgery cookie, or an
// empty string when the cookie has not been primed yet.
func (c *Client) CSRFToken() string {
	for _, cookie := range c.http.Jar.Cookies(c.baseURL) {
		if cookie.Name == csrfCookieName {
			return cookie.Value
		}
	}
	return ""
}

// PrimeCSRF asks the server to set the anti-forgery cookie. It must run
// before the first mutating request of a session.
func (c *Client) PrimeCSRF(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/auth/csrf/", nil, nil)
}

// do issues a JSON request and decodes the response into out (when non-nil).
// A 204 response carries no body and leaves out untouched. Any non-2xx
// response is returned as an *APIError.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return fmt.Errorf("could not create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if method != http.MethodGet {
		if token := c.CSRFToken(); token != "" {
			req.Header.Set(csrfHeader, token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	return nil
}

func decodeError(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	message := genericFailure
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		message = payload.Error
	}
	return &APIError{StatusCode: status, Message: message}
}
