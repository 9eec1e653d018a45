package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"taskhub/internal/client/models"
	"taskhub/internal/common"
)

// HTTPClient talks JSON over HTTP to the server.
type HTTPClient struct {
	baseURL string
	session TokenStore
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client rooted at baseURL, reading credentials
// from the given session store.
func NewHTTPClient(baseURL string, session TokenStore) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		session: session,
		http:    &http.Client{},
	}
}

type tokenResponse struct {
	Token string `json:"token"`
}

type msgResponse struct {
	Msg string `json:"msg"`
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (string, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var resp tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", body, &resp, false); err != nil {
		return "", err
	}
	if err := c.session.SetToken(ctx, resp.Token); err != nil {
		return "", fmt.Errorf("saving session: %w", err)
	}
	return resp.Token, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &resp, false); err != nil {
		return "", err
	}
	if err := c.session.SetToken(ctx, resp.Token); err != nil {
		return "", fmt.Errorf("saving session: %w", err)
	}
	return resp.Token, nil
}

func (c *HTTPClient) ListTasks(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	if err := c.doJSON(ctx, http.MethodGet, "/tasks", nil, &tasks, true); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, title, description string, priority models.Priority) (*models.Task, error) {
	body := map[string]any{"title": title, "description": description, "priority": priority}
	var task models.Task
	if err := c.doJSON(ctx, http.MethodPost, "/tasks", body, &task, true); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, id string, upd TaskUpdate) (*models.Task, error) {
	var task models.Task
	if err := c.doJSON(ctx, http.MethodPut, "/tasks/"+id, upd, &task, true); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/tasks/"+id, nil, nil, true)
}

func (c *HTTPClient) ClearCompleted(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodDelete, "/tasks/clear", nil, nil, true)
}

// doJSON performs one request. When authed is set, the session token is
// attached and a 401 answer wipes the session before returning
// common.ErrorUnauthorized.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, err := c.session.Token(ctx)
		if err != nil {
			return fmt.Errorf("reading session: %w", err)
		}
		if token == "" {
			return common.ErrorUnauthorized
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.apiError(ctx, resp, authed)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *HTTPClient) apiError(ctx context.Context, resp *http.Response, authed bool) error {
	var msg msgResponse
	_ = json.NewDecoder(resp.Body).Decode(&msg)

	if resp.StatusCode == http.StatusUnauthorized && authed {
		_ = c.session.Clear(ctx)
		if msg.Msg != "" {
			return fmt.Errorf("%w: %s", common.ErrorUnauthorized, msg.Msg)
		}
		return common.ErrorUnauthorized
	}
	if msg.Msg != "" {
		return errors.New(msg.Msg)
	}
	return fmt.Errorf("server returned %s", resp.Status)
}
