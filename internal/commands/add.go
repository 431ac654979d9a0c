package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/service"
	"tasksync/internal/session"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) Usage() string      { return "tasksync add <title...>" }
func (c *AddCmd) NeedsBackend() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	title := strings.Join(args, " ")

	// Adding does not need the current list.
	sess := session.New(svc, session.WithLogger(cfg.Logger()))
	if err := sess.SubmitNewTask(ctx, title); err != nil {
		if errors.Is(err, session.ErrBlankTitle) {
			fmt.Fprintln(errOut, "error: title required")
			return exitcode.UserError
		}
		return reportBackend(errOut, sess, err)
	}

	printOK(cfg, out)
	return exitcode.Success
}
