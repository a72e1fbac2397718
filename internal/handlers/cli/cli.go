package cli

import (
	"context"
	"os"

	"github.com/gabapcia/mempoolwatch/internal/config"
	"github.com/gabapcia/mempoolwatch/internal/txtrack"

	"github.com/urfave/cli/v3"
)

type (
	// ConfigLoader reads and validates the configuration. It must not perform any
	// network I/O.
	ConfigLoader func(envFiles ...string) (config.Config, error)

	// TrackerFactory builds the tracking service for a validated configuration. The
	// returned cleanup function releases every connection the factory opened.
	TrackerFactory func(ctx context.Context, cfg config.Config) (svc txtrack.Service, cleanup func(), err error)
)

// newApp assembles the command tree.
func newApp(load ConfigLoader, newTracker TrackerFactory) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "mempoolwatch",
		Description:           "Watches the pending transaction pool of an Ethereum node for transactions sent to a contract.",
		Usage:                 "mempoolwatch [command] [flags]",
		Commands: []*cli.Command{
			trackCommand(load, newTracker),
			decodeCommand(),
		},
	}
}

// Run initializes and executes the mempoolwatch CLI application.
//
// It registers all available commands:
//
//   - `track`: Collects pending transactions sent to the target contract and prints them.
//   - `decode`: Decodes ERC-20 transfer call data.
//
// The configuration is only loaded by commands that need it, and the factory is only
// called after the configuration is valid, so a bad configuration never reaches the node.
func Run(ctx context.Context, load ConfigLoader, newTracker TrackerFactory) error {
	return newApp(load, newTracker).Run(ctx, os.Args)
}
