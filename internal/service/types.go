// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"fmt"
	"time"
)

// Task represents a single to-do record as held by the remote store.
type Task struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// TaskFields is a partial Task. Only non-nil fields are sent.
type TaskFields struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// TransportError is returned by every Service operation that fails,
// whether the cause is the network, a non-success status or a malformed
// response body.
type TransportError struct {
	Op  string // "list", "create", "update", "toggle" or "delete"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
