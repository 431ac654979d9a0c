// Package session owns the in-memory task collection of one client session
// and keeps it consistent with the remote store.
//
// Every mutation is applied locally only after the store confirms it.
// Failures never touch the collection; they set LastError to one of four
// fixed messages instead.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"tasksync/internal/service"
)

// User-facing failure messages. LastError always holds one of these.
var (
	ErrLoad   = errors.New("failed to load")
	ErrCreate = errors.New("failed to create")
	ErrUpdate = errors.New("failed to update")
	ErrDelete = errors.New("failed to delete")
)

var (
	// ErrBlankTitle is returned by SubmitNewTask for empty or whitespace titles.
	ErrBlankTitle = errors.New("title required")

	// ErrInFlight is returned when a task already has an operation pending.
	ErrInFlight = errors.New("operation already in progress for task")
)

// Snapshot is a point-in-time copy of the session state.
type Snapshot struct {
	Tasks     []service.Task
	Loading   bool
	LastError string
}

// Session is the task state container. Create one per session with New
// and pass it explicitly; it is safe for concurrent use.
type Session struct {
	svc service.Service
	log *slog.Logger
	id  string

	mu        sync.Mutex
	tasks     []service.Task
	loading   bool
	lastError string
	inFlight  map[int64]struct{}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for failure details.
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates an empty session backed by svc.
func New(svc service.Service, opts ...Option) *Session {
	s := &Session{
		svc:      svc,
		log:      slog.New(slog.DiscardHandler),
		id:       uuid.NewString(),
		tasks:    []service.Task{},
		inFlight: make(map[int64]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("session", s.id)
	return s
}

// ID returns the session identifier used in log records.
func (s *Session) ID() string {
	return s.id
}

// Tasks returns a copy of the current collection.
func (s *Session) Tasks() []service.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyTasks()
}

// Loading reports whether Initialize is in progress.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the most recent failure message, or "".
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Snapshot returns the whole state under one lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Tasks:     s.copyTasks(),
		Loading:   s.loading,
		LastError: s.lastError,
	}
}

// Initialize loads the full collection from the store, replacing the
// local one in store order. On failure the collection is left as it was.
func (s *Session) Initialize(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	tasks, err := s.svc.ListTasks(ctx)
	if err != nil {
		return s.fail(ErrLoad, err)
	}

	s.mu.Lock()
	s.tasks = append(make([]service.Task, 0, len(tasks)), tasks...)
	s.mu.Unlock()

	s.log.Debug("tasks loaded", "count", len(tasks))
	return nil
}

// AddTask creates a task in the store and prepends it locally.
func (s *Session) AddTask(ctx context.Context, title string) error {
	task, err := s.svc.CreateTask(ctx, title, false)
	if err != nil {
		return s.fail(ErrCreate, err)
	}

	s.mu.Lock()
	s.tasks = append([]service.Task{task}, s.tasks...)
	s.mu.Unlock()

	s.log.Debug("task added", "id", task.ID)
	return nil
}

// ToggleTask flips the completed flag of task id, given its current value,
// and replaces the first local record with that id in place.
func (s *Session) ToggleTask(ctx context.Context, id int64, currentCompleted bool) error {
	if err := s.acquire(id); err != nil {
		return err
	}
	defer s.release(id)

	task, err := s.svc.ToggleCompleted(ctx, id, !currentCompleted)
	if err != nil {
		return s.fail(ErrUpdate, err)
	}

	s.mu.Lock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = task
			break
		}
	}
	s.mu.Unlock()

	s.log.Debug("task toggled", "id", id, "completed", task.Completed)
	return nil
}

// DeleteTask deletes task id from the store and removes every local
// record with that id.
func (s *Session) DeleteTask(ctx context.Context, id int64) error {
	if err := s.acquire(id); err != nil {
		return err
	}
	defer s.release(id)

	if err := s.svc.DeleteTask(ctx, id); err != nil {
		return s.fail(ErrDelete, err)
	}

	s.mu.Lock()
	kept := s.tasks[:0:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.mu.Unlock()

	s.log.Debug("task deleted", "id", id)
	return nil
}

// SubmitNewTask is the presentation intent for adding a task. Blank
// titles are rejected without contacting the store.
func (s *Session) SubmitNewTask(ctx context.Context, title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrBlankTitle
	}
	return s.AddTask(ctx, title)
}

// RequestToggle is the presentation intent for toggling a task.
func (s *Session) RequestToggle(ctx context.Context, id int64, currentCompleted bool) error {
	return s.ToggleTask(ctx, id, currentCompleted)
}

// RequestDelete is the presentation intent for deleting a task.
func (s *Session) RequestDelete(ctx context.Context, id int64) error {
	return s.DeleteTask(ctx, id)
}

// fail records the user-facing message and logs the underlying error.
func (s *Session) fail(userErr, err error) error {
	s.mu.Lock()
	s.lastError = userErr.Error()
	s.mu.Unlock()

	s.log.Debug(userErr.Error(), "error", err)
	return fmt.Errorf("%w: %w", userErr, err)
}

func (s *Session) acquire(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[id]; busy {
		return fmt.Errorf("%w %d", ErrInFlight, id)
	}
	s.inFlight[id] = struct{}{}
	return nil
}

func (s *Session) release(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, id)
}

// copyTasks must be called with mu held.
func (s *Session) copyTasks() []service.Task {
	result := make([]service.Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}
