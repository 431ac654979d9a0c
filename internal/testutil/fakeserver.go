package testutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"tasksync/internal/service"
)

// Request records one call received by a FakeServer.
type Request struct {
	Method      string
	Path        string
	ContentType string
	Body        []byte
}

// FakeServer serves the todo REST API on top of a FakeService.
type FakeServer struct {
	*httptest.Server
	Svc *FakeService

	mu             sync.Mutex
	requests       []Request
	statusOverride int
	rawResponse    []byte
}

// NewFakeServer starts a FakeServer. The API is mounted under /api/,
// so clients should use BaseURL().
func NewFakeServer(svc *FakeService) *FakeServer {
	s := &FakeServer{Svc: svc}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Route("/api", func(r chi.Router) {
		r.Get("/get_todos/", s.handleList)
		r.Post("/create_todo/", s.handleCreate)
		r.Put("/update_todo/{id}/", s.handleUpdate)
		r.Patch("/partial_update_todo/{id}/", s.handleUpdate)
		r.Delete("/delete_todo/{id}/", s.handleDelete)
	})

	s.Server = httptest.NewServer(r)
	return s
}

// BaseURL returns the API base address, ending with "/".
func (s *FakeServer) BaseURL() string {
	return s.URL + "/api/"
}

// FailWith makes every following request return status without
// reaching the FakeService. Zero restores normal handling.
func (s *FakeServer) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusOverride = status
}

// RespondRaw makes every following request return body verbatim with
// status 200. Nil restores normal handling.
func (s *FakeServer) RespondRaw(body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rawResponse = body
}

// Requests returns the requests received so far.
func (s *FakeServer) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]Request, len(s.requests))
	copy(result, s.requests)
	return result
}

func (s *FakeServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body.Close()
		}
		if len(body) == 0 {
			body = nil
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			Body:        body,
		})
		override, raw := s.statusOverride, s.rawResponse
		s.mu.Unlock()

		if override != 0 {
			writeJSON(w, override, map[string]string{"error": http.StatusText(override)})
			return
		}
		if raw != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(raw)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func (s *FakeServer) handleList(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.Svc.ListTasks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *FakeServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Title     string `json:"title"`
		Completed bool   `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	task, err := s.Svc.CreateTask(r.Context(), in.Title, in.Completed)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *FakeServer) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var fields service.TaskFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	task, err := s.Svc.UpdateTask(r.Context(), id, fields)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *FakeServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := s.Svc.DeleteTask(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
