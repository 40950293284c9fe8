// Package directus implements the typed client for the Directus backend
// that owns users, roles and feedback records. Every operation is a single
// HTTPS round trip; no retries, no local state. Authenticated calls take the
// access token explicitly so the client can be shared across requests.
package directus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
	"github.com/feedbackhub/feedback-portal/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// userFields is the projection requested for the current user.
const userFields = "id,email,first_name,last_name,role"

type Client struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

var _ ports.BackendClient = (*Client)(nil)

// NewClient creates a client for the Directus instance at baseURL.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
		log:     log,
	}
}

// envelope is the Directus response wrapper: a data payload on success, a
// message list on failure.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// do performs a request against the backend and decodes the data payload
// into out when provided. The returned status is valid whenever the request
// reached the backend, including on error responses.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		// Error bodies are decoded too; ignore malformed ones so a bad
		// payload never masks the status code.
		_ = json.NewDecoder(resp.Body).Decode(&env)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		msgs := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			msgs = append(msgs, e.Message)
		}
		return resp.StatusCode, &domain.RemoteError{StatusCode: resp.StatusCode, Messages: msgs}
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	var pair domain.TokenPair
	status, err := c.do(ctx, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
		"mode":     "json",
	}, &pair)
	if err != nil {
		if status == http.StatusUnauthorized {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if pair.AccessToken == "" {
		return nil, domain.ErrInvalidCredentials
	}
	return &pair, nil
}

// Refresh rotates a token pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	var pair domain.TokenPair
	status, err := c.do(ctx, http.MethodPost, "/auth/refresh", "", map[string]string{
		"refresh_token": refreshToken,
		"mode":          "json",
	}, &pair)
	if err != nil {
		if status == http.StatusUnauthorized || status == http.StatusBadRequest {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	if pair.AccessToken == "" {
		return nil, domain.ErrInvalidToken
	}
	return &pair, nil
}

// Register creates a user. Status is forced to "active" regardless of input.
func (c *Client) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	payload := map[string]string{
		"email":      input.Email,
		"password":   input.Password,
		"first_name": input.FirstName,
		"last_name":  input.LastName,
		"status":     "active",
	}
	if input.RoleID != "" {
		payload["role"] = input.RoleID
	}

	var user domain.User
	if _, err := c.do(ctx, http.MethodPost, "/users", "", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser resolves the user behind an access token. An unauthorized
// response means "not authenticated", not a failure, and yields (nil, nil).
func (c *Client) CurrentUser(ctx context.Context, accessToken string) (*domain.User, error) {
	var user domain.User
	status, err := c.do(ctx, http.MethodGet, "/users/me?fields="+userFields, accessToken, nil, &user)
	if err != nil {
		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// ListFeedback returns all feedback items with the created_by author
// expanded to first/last name.
func (c *Client) ListFeedback(ctx context.Context, accessToken string) ([]domain.Feedback, error) {
	var items []domain.Feedback
	if _, err := c.do(ctx, http.MethodGet, "/items/feedbacks?fields=*.*", accessToken, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateFeedback stores a new item with status forced to "draft".
func (c *Client) CreateFeedback(ctx context.Context, accessToken string, input ports.CreateFeedbackInput) (*domain.Feedback, error) {
	payload := map[string]string{
		"title":       input.Title,
		"description": input.Description,
		"category":    string(input.Category),
		"status":      string(domain.StatusDraft),
	}

	var item domain.Feedback
	if _, err := c.do(ctx, http.MethodPost, "/items/feedbacks", accessToken, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateFeedbackStatus patches the status of one item.
func (c *Client) UpdateFeedbackStatus(ctx context.Context, accessToken, id string, status domain.Status) (*domain.Feedback, error) {
	var item domain.Feedback
	path := "/items/feedbacks/" + url.PathEscape(id)
	if _, err := c.do(ctx, http.MethodPatch, path, accessToken, map[string]string{"status": string(status)}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteFeedback removes one item.
func (c *Client) DeleteFeedback(ctx context.Context, accessToken, id string) error {
	path := "/items/feedbacks/" + url.PathEscape(id)
	_, err := c.do(ctx, http.MethodDelete, path, accessToken, nil, nil)
	return err
}

// ListRoles returns the registration role choices.
func (c *Client) ListRoles(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	if _, err := c.do(ctx, http.MethodGet, "/roles?fields=id,name", "", nil, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// Ping checks backend reachability for the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/server/ping", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend ping: status %d", resp.StatusCode)
	}
	return nil
}
