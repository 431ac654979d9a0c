package commands

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"tasksync/internal/exitcode"
	"tasksync/internal/session"
	"tasksync/internal/testutil"
)

func TestReportBackend_PrefersLastError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListTasksErr = errors.New("connection refused")
	sess := session.New(svc)
	err := sess.Initialize(context.Background())

	var buf bytes.Buffer
	code := reportBackend(&buf, sess, err)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if buf.String() != "error: failed to load\n" {
		t.Errorf("expected load message, got %q", buf.String())
	}
}

func TestReportBackend_InFlightFallsBackToErr(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(1, "Buy milk", false)
	svc.Block = make(chan struct{})
	sess := session.New(svc)

	done := make(chan error, 1)
	go func() {
		done <- sess.RequestToggle(context.Background(), 1, false)
	}()

	deadline := time.Now().Add(time.Second)
	for svc.Calls() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("toggle never reached the store")
		}
		time.Sleep(time.Millisecond)
	}

	err := sess.RequestDelete(context.Background(), 1)
	if !errors.Is(err, session.ErrInFlight) {
		t.Fatalf("expected ErrInFlight, got %v", err)
	}

	var buf bytes.Buffer
	reportBackend(&buf, sess, err)

	expected := "error: operation already in progress for task 1\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}

	close(svc.Block)
	if err := <-done; err != nil {
		t.Errorf("expected toggle to succeed, got %v", err)
	}
}
