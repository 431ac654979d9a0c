package commands

import (
	"context"
	"fmt"
	"io"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/service"
	"tasksync/internal/session"
)

// openSession creates the session for one invocation and loads it.
// On failure the error has been reported and the exit code is non-zero.
func openSession(ctx context.Context, cfg *config.Config, svc service.Service, errOut io.Writer) (*session.Session, int) {
	sess := session.New(svc, session.WithLogger(cfg.Logger()))
	if err := sess.Initialize(ctx); err != nil {
		return nil, reportBackend(errOut, sess, err)
	}
	return sess, exitcode.Success
}

// resolveTask loads the session and finds the task named by args[0].
func resolveTask(ctx context.Context, cfg *config.Config, svc service.Service, args []string, errOut io.Writer) (*session.Session, service.Task, int) {
	ref, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, service.Task{}, exitcode.UserError
	}

	sess, code := openSession(ctx, cfg, svc, errOut)
	if code != exitcode.Success {
		return nil, service.Task{}, code
	}

	task, err := ref.Resolve(sess.Tasks())
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, service.Task{}, exitcode.UserError
	}
	return sess, task, exitcode.Success
}

// reportBackend prints the session's last error message. Failures that
// never reached the store, such as ErrInFlight, leave it empty; err is
// printed instead.
func reportBackend(errOut io.Writer, sess *session.Session, err error) int {
	msg := sess.LastError()
	if msg == "" {
		msg = err.Error()
	}
	fmt.Fprintf(errOut, "error: %s\n", msg)
	return exitcode.BackendError
}

func printOK(cfg *config.Config, out io.Writer) {
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
}
