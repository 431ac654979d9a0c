package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasksync/internal/config"
	"tasksync/internal/exitcode"
	"tasksync/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "tasksync help" }
func (c *HelpCmd) NeedsBackend() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tasksync                                  List all tasks
  tasksync list [common flags] [--open]     List tasks, optionally open ones only
  tasksync add [common flags] <title...>    Create a task (alias: create)
  tasksync toggle [common flags] <ref>      Complete or reopen a task (alias: done)
  tasksync edit [common flags] <ref> <title...>
  tasksync show [common flags] <ref>
  tasksync rm [common flags] <ref>          Delete a task (alias: delete)
  tasksync help
  tasksync version

A <ref> is a task number as printed by list, or #<id> for a store ID.

Common flags:
  --config <dir>     Override config directory
  --base-url <url>   Override the remote store address
  --quiet            Suppress informational output
  --debug            Print debug logs to stderr
`
