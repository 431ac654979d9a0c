// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// Each method performs exactly one round trip to the remote store
// and never retries.
type Service interface {
	// ListTasks returns every task in store order.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task and returns the stored record,
	// including its server-assigned ID. The title is not validated.
	CreateTask(ctx context.Context, title string, completed bool) (Task, error)

	// UpdateTask replaces the given fields of a task and returns
	// the full updated record.
	UpdateTask(ctx context.Context, id int64, fields TaskFields) (Task, error)

	// ToggleCompleted sets the completed flag of a task and returns
	// the full updated record.
	ToggleCompleted(ctx context.Context, id int64, completed bool) (Task, error)

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, id int64) error
}
