package cli

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/ytget/cm-util/internal/model"
)

// Exit codes not carried by model.Error
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130
)

// Execute runs the command line and returns the process exit code
func Execute(ctx context.Context, version string) int {
	return run(ctx, version, DefaultDeps(), nil)
}

// run executes args (os.Args when nil) against a fresh command tree
func run(ctx context.Context, version string, deps Deps, args []string) int {
	root, a := newRoot(version, deps)
	if args != nil {
		root.SetArgs(args)
	}

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	logger := a.logger
	if logger == nil {
		logger = log.NewWithOptions(deps.Err, log.Options{})
	}

	code := exitCode(ctx, err)
	if code == ExitInterrupted {
		logger.Warn("Interrupted")
	} else {
		logger.Error("Command failed", "error", err)
	}
	return code
}

func exitCode(ctx context.Context, err error) int {
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return ExitInterrupted
	}
	var kindErr *model.Error
	if errors.As(err, &kindErr) {
		return kindErr.ExitCode()
	}
	return ExitFailure
}
