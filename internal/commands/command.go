// Package commands implements the tasksync subcommands. Each file registers
// one command with DefaultRegistry from init.
package commands

import (
	"context"
	"flag"
	"io"

	"tasksync/internal/config"
	"tasksync/internal/service"
)

// Command is one tasksync subcommand.
type Command interface {
	Name() string
	Aliases() []string

	// Synopsis and Usage feed the help listing.
	Synopsis() string
	Usage() string

	// NeedsBackend reports whether Run reads or writes the todo store.
	// When false the dispatcher never builds a client and svc is nil.
	NeedsBackend() bool

	// RegisterFlags adds flags beyond --config, --base-url, --quiet and --debug.
	RegisterFlags(fs *flag.FlagSet)

	// Run receives the positional args left after flag parsing and
	// returns a code from package exitcode.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int
}
