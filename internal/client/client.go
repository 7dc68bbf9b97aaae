// Package client is the HTTP API client used by the terminal frontend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const defaultRequestTimeout = 15 * time.Second

// RegisterRequest mirrors the registration body of the API.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// LoginRequest mirrors the login body of the API.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the client-safe user projection returned by the API.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type messageBody struct {
	Message string `json:"message"`
}

type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type loginBody struct {
	AccessToken string `json:"accessToken"`
}

type usersBody struct {
	Message string  `json:"message"`
	Users   []*User `json:"users"`
}

// APIError is a failure reported by the server rather than the transport.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the passport HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates an API client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}
}

// Register creates a new account and returns the server acknowledgment.
func (c *Client) Register(ctx context.Context, req *RegisterRequest) (string, error) {
	var body messageBody
	if err := c.do(ctx, http.MethodPost, "/users/register", "", req, &body); err != nil {
		return "", err
	}

	return body.Message, nil
}

// Login verifies credentials and returns the issued session token.
func (c *Client) Login(ctx context.Context, req *LoginRequest) (string, error) {
	var body loginBody
	if err := c.do(ctx, http.MethodPost, "/users/login", "", req, &body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", errors.New("server returned an empty access token")
	}

	return body.AccessToken, nil
}

// ListUsers fetches all registered users.
func (c *Client) ListUsers(ctx context.Context) ([]*User, error) {
	var body usersBody
	if err := c.do(ctx, http.MethodGet, "/users/", "", nil, &body); err != nil {
		return nil, err
	}

	return body.Users, nil
}

// Me fetches the identity behind the given token, verified server-side.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var body User
	if err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &body); err != nil {
		return nil, err
	}

	return &body, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var body errorBody
		if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
			apiErr.Message = body.Message
			apiErr.Fields = body.Errors
		}

		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "failed to decode response body")
	}

	return nil
}
