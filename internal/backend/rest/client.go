// Package rest implements the service.Service interface over the todo REST API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"google.golang.org/api/googleapi"

	"tasksync/internal/config"
	"tasksync/internal/service"
)

// Endpoint paths, relative to the base URL.
const (
	listPath          = "get_todos/"
	createPath        = "create_todo/"
	updatePath        = "update_todo/{id}/"
	partialUpdatePath = "partial_update_todo/{id}/"
	deletePath        = "delete_todo/{id}/"

	contentType = "application/json"
)

// Client implements service.Service against a remote todo store.
type Client struct {
	baseURL string
	hc      *http.Client
	timeout time.Duration
	log     *slog.Logger
}

// New creates a client for the store at cfg.BaseURL.
func New(cfg *config.Config) *Client {
	return NewWithHTTPClient(cfg, http.DefaultClient)
}

// NewWithHTTPClient creates a client with a custom HTTP client (for testing).
func NewWithHTTPClient(cfg *config.Config, hc *http.Client) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		hc:      hc,
		timeout: cfg.Timeout,
		log:     cfg.Logger(),
	}
}

// ListTasks returns every task in store order.
func (c *Client) ListTasks(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.do(ctx, http.MethodGet, listPath, 0, nil, &tasks); err != nil {
		return nil, &service.TransportError{Op: "list", Err: err}
	}
	if tasks == nil {
		tasks = []service.Task{}
	}
	return tasks, nil
}

// CreateTask creates a task and returns the stored record.
func (c *Client) CreateTask(ctx context.Context, title string, completed bool) (service.Task, error) {
	body := struct {
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
	}{title, completed}

	var task service.Task
	if err := c.do(ctx, http.MethodPost, createPath, 0, body, &task); err != nil {
		return service.Task{}, &service.TransportError{Op: "create", Err: err}
	}
	return task, nil
}

// UpdateTask replaces the given fields of a task.
func (c *Client) UpdateTask(ctx context.Context, id int64, fields service.TaskFields) (service.Task, error) {
	var task service.Task
	if err := c.do(ctx, http.MethodPut, updatePath, id, fields, &task); err != nil {
		return service.Task{}, &service.TransportError{Op: "update", Err: err}
	}
	return task, nil
}

// ToggleCompleted sets the completed flag of a task.
func (c *Client) ToggleCompleted(ctx context.Context, id int64, completed bool) (service.Task, error) {
	body := service.TaskFields{Completed: &completed}

	var task service.Task
	if err := c.do(ctx, http.MethodPatch, partialUpdatePath, id, body, &task); err != nil {
		return service.Task{}, &service.TransportError{Op: "toggle", Err: err}
	}
	return task, nil
}

// DeleteTask deletes a task. The response body is ignored.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, deletePath, id, nil, nil); err != nil {
		return &service.TransportError{Op: "delete", Err: err}
	}
	return nil
}

// do performs one round trip. in is JSON-encoded when non-nil; out is
// decoded from the response when non-nil.
func (c *Client) do(ctx context.Context, method, path string, id int64, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	urls := googleapi.ResolveRelative(c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, method, urls, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	googleapi.Expand(req.URL, map[string]string{
		"id": strconv.FormatInt(id, 10),
	})
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentType)

	res, err := c.hc.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", method, "url", req.URL.String(), "error", err)
		return err
	}
	defer res.Body.Close()

	c.log.Debug("request", "method", method, "url", req.URL.String(), "status", res.StatusCode)

	if err := googleapi.CheckResponse(res); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
