// Package cli implements markerctl, a command-line companion to the radius marker.
//
// # Commands
//
//   - rings: print the offsets of every ring as text, JSON or TOML
//   - check: verify ring sizes and layout distances for a set of parameters
//
// All commands accept --verbose (-v) for debug-level logging. The logger is
// passed through the command context.
package cli

import (
	"context"
	"io"
	"os"

	"go-range-marker/internal/logging"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs markerctl with os.Args.
func Execute() error {
	return newRootCmd(os.Stderr).ExecuteContext(context.Background())
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "markerctl",
		Short:        "Inspect radius marker ring layouts",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), logging.New(logOut, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRingsCmd())
	root.AddCommand(newCheckCmd())
	return root
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to log.Default() when no logger is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}
