// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"sync"

	"tasksync/internal/service"
)

// ErrNotFound is returned when a task does not exist.
var ErrNotFound = errors.New("not found")

// FakeService is an in-memory implementation of service.Service for testing.
// IDs are assigned sequentially starting at 1 unless SetNextID is called.
type FakeService struct {
	mu     sync.RWMutex
	tasks  []service.Task
	nextID int64
	calls  int

	// Error injection for testing
	ListTasksErr       error
	CreateTaskErr      error
	UpdateTaskErr      error
	ToggleCompletedErr error
	DeleteTaskErr      error

	// Block, when non-nil, is received from before each operation
	// returns. Tests use it to hold calls in flight.
	Block chan struct{}
}

// NewFakeService creates a new empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// SetNextID sets the ID assigned to the next created task.
func (f *FakeService) SetNextID(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID = id
}

// AddTask seeds a task directly, bypassing error injection.
func (f *FakeService) AddTask(id int64, title string, completed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{ID: id, Title: title, Completed: completed})
	if id >= f.nextID {
		f.nextID = id + 1
	}
}

// Stored returns a copy of the tasks held by the fake store.
func (f *FakeService) Stored() []service.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result
}

// Calls returns how many operations have reached the fake.
func (f *FakeService) Calls() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.calls
}

func (f *FakeService) enter(ctx context.Context) error {
	f.mu.Lock()
	f.calls++
	block := f.Block
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	if err := f.enter(ctx); err != nil {
		return nil, err
	}
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	return f.Stored(), nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, title string, completed bool) (service.Task, error) {
	if err := f.enter(ctx); err != nil {
		return service.Task{}, err
	}
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	task := service.Task{ID: f.nextID, Title: title, Completed: completed}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id int64, fields service.TaskFields) (service.Task, error) {
	if err := f.enter(ctx); err != nil {
		return service.Task{}, err
	}
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	return f.patch(id, fields)
}

// ToggleCompleted implements service.Service.
func (f *FakeService) ToggleCompleted(ctx context.Context, id int64, completed bool) (service.Task, error) {
	if err := f.enter(ctx); err != nil {
		return service.Task{}, err
	}
	if f.ToggleCompletedErr != nil {
		return service.Task{}, f.ToggleCompletedErr
	}
	return f.patch(id, service.TaskFields{Completed: &completed})
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int64) error {
	if err := f.enter(ctx); err != nil {
		return err
	}
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *FakeService) patch(id int64, fields service.TaskFields) (service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID != id {
			continue
		}
		if fields.Title != nil {
			t.Title = *fields.Title
		}
		if fields.Completed != nil {
			t.Completed = *fields.Completed
		}
		f.tasks[i] = t
		return t, nil
	}
	return service.Task{}, ErrNotFound
}
