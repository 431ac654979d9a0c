package commands

import (
	"context"
	"flag"
	"io"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/service"
)

func init() {
	Register(&ToggleCmd{})
}

// ToggleCmd implements the toggle command. Completed tasks are reopened.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string       { return "toggle" }
func (c *ToggleCmd) Aliases() []string  { return []string{"done"} }
func (c *ToggleCmd) Synopsis() string   { return "Mark a task completed or open" }
func (c *ToggleCmd) Usage() string      { return "tasksync toggle <ref>" }
func (c *ToggleCmd) NeedsBackend() bool { return true }

func (c *ToggleCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	sess, task, code := resolveTask(ctx, cfg, svc, args, errOut)
	if code != exitcode.Success {
		return code
	}

	if err := sess.RequestToggle(ctx, task.ID, task.Completed); err != nil {
		return reportBackend(errOut, sess, err)
	}

	printOK(cfg, out)
	return exitcode.Success
}
