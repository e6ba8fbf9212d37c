package platform

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// Command constants
const (
	OpenCommand  = "open"
	AppBundleExt = ".app"
)

// CommandRunner executes an external command
type CommandRunner func(ctx context.Context, name string, args ...string) error

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// AppLauncher opens macOS application bundles
type AppLauncher struct {
	run    CommandRunner
	goos   string
	dryRun bool
}

// NewAppLauncher creates a launcher. In dry-run mode nothing is executed.
func NewAppLauncher(dryRun bool) *AppLauncher {
	return &AppLauncher{run: runCommand, goos: runtime.GOOS, dryRun: dryRun}
}

// OpenApps runs `open <dir>/<app>.app` for every app. A failing app is
// logged and the rest are still opened; the joined failures are returned.
func (l *AppLauncher) OpenApps(ctx context.Context, dir string, apps []string) ([]string, error) {
	logger := log.FromContext(ctx).WithPrefix("apps")

	if !l.dryRun && l.goos != OSDarwin {
		return nil, fmt.Errorf("opening applications is only supported on macOS, not %s", l.goos)
	}

	opened := make([]string, 0, len(apps))
	var errs []error
	for _, app := range apps {
		bundle := filepath.Join(dir, app+AppBundleExt)
		if l.dryRun {
			logger.Info("[DRY RUN] Would open", "app", bundle)
			opened = append(opened, bundle)
			continue
		}

		logger.Info("Opening", "app", app)
		if err := l.run(ctx, OpenCommand, bundle); err != nil {
			logger.Error("Failed to open app", "app", bundle, "error", err)
			errs = append(errs, fmt.Errorf("open %s: %w", bundle, err))
			continue
		}
		opened = append(opened, bundle)
	}
	return opened, errors.Join(errs...)
}
