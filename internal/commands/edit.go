package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/service"
	"tasksync/internal/session"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. It renames a task with a full
// update rather than going through the session, which has no rename
// operation.
type EditCmd struct{}

func (c *EditCmd) Name() string       { return "edit" }
func (c *EditCmd) Aliases() []string  { return []string{"rename"} }
func (c *EditCmd) Synopsis() string   { return "Change a task title" }
func (c *EditCmd) Usage() string      { return "tasksync edit <ref> <title...>" }
func (c *EditCmd) NeedsBackend() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task reference required")
		return exitcode.UserError
	}
	title := strings.Join(args[1:], " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	_, task, code := resolveTask(ctx, cfg, svc, args[:1], errOut)
	if code != exitcode.Success {
		return code
	}

	completed := task.Completed
	if _, err := svc.UpdateTask(ctx, task.ID, service.TaskFields{
		Title:     &title,
		Completed: &completed,
	}); err != nil {
		cfg.Logger().Debug("update failed", slog.Int64("id", task.ID), "error", err)
		fmt.Fprintf(errOut, "error: %v\n", session.ErrUpdate)
		return exitcode.BackendError
	}

	printOK(cfg, out)
	return exitcode.Success
}
