// Package app holds the plumbing shared by the command binaries: running a
// cobra root with injected streams and mapping errors to exit codes.
package app

import (
	"context"
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"io"
	"tagkit/internal/domain/config"
	domainerr "tagkit/internal/domain/errors"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	// ExitConfig is used when the configuration file fails validation.
	ExitConfig = 2
)

// ErrSilent marks an error whose message was already shown to the user.
var ErrSilent = errors.New("silent failure")

// Streams bundles the standard streams so commands can be driven from tests.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Execute runs root with args and returns the process exit code.
func Execute(ctx context.Context, root *cobra.Command, args []string, s Streams) int {
	root.SetArgs(args)
	root.SetIn(s.In)
	root.SetOut(s.Out)
	root.SetErr(s.Err)
	root.SilenceUsage = true
	root.SilenceErrors = true

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	if !errors.Is(err, ErrSilent) {
		fmt.Fprintln(s.Err, "error:", err)
	}
	return ExitCode(err)
}

func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domainerr.ErrInvalid):
		return ExitConfig
	default:
		return ExitFailure
	}
}

// LoadConfig reads path when set, otherwise returns validated defaults.
func LoadConfig(path string) (config.Config, error) {
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
