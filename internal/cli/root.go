package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ytget/cm-util/internal/config"
	"github.com/ytget/cm-util/internal/download"
	"github.com/ytget/cm-util/internal/history"
	"github.com/ytget/cm-util/internal/model"
	"github.com/ytget/cm-util/internal/platform"
)

// AppName is the command name
const AppName = "cm-util"

// PlaylistParser enumerates the entries of a playlist URL
type PlaylistParser interface {
	ParsePlaylist(ctx context.Context, url string) (*model.Playlist, error)
}

// AppOpener opens applications from a folder
type AppOpener interface {
	OpenApps(ctx context.Context, dir string, apps []string) ([]string, error)
}

// Deps are the collaborators the commands use
type Deps struct {
	Out       io.Writer
	Err       io.Writer
	Extractor download.Extractor
	Playlists PlaylistParser
	Launcher  func(dryRun bool) AppOpener
}

// DefaultDeps returns the production collaborators
func DefaultDeps() Deps {
	return Deps{
		Out:       os.Stdout,
		Err:       os.Stderr,
		Extractor: download.NewYTDLPExtractor(),
		Playlists: platform.NewPlaylistParser(),
		Launcher: func(dryRun bool) AppOpener {
			return platform.NewAppLauncher(dryRun)
		},
	}
}

// app is the state of one invocation, built in PersistentPreRunE
type app struct {
	deps     Deps
	opts     config.RunOptions
	paths    config.Paths
	config   *config.Store
	history  *history.Store
	settings config.Settings
	logger   *log.Logger
}

// NewRootCommand builds the command tree
func NewRootCommand(version string, deps Deps) *cobra.Command {
	root, _ := newRoot(version, deps)
	return root
}

func newRoot(version string, deps Deps) (*cobra.Command, *app) {
	a := &app{deps: deps}

	root := &cobra.Command{
		Use:           AppName,
		Short:         "Download music and videos, open apps and tidy folders",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(deps.Out)
	root.SetErr(deps.Err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return model.NewError(model.KindValidation, "parse flags", err)
	})

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.opts.Verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVarP(&a.opts.Quiet, "quiet", "q", false, "only log errors")
	flags.BoolVar(&a.opts.DryRun, "dry-run", false, "show what would be done without doing it")
	flags.StringVar(&a.opts.OutputDir, "output-dir", "", "override the destination folder for downloads")
	flags.BoolVar(&a.opts.Force, "force", false, "download even if the URL is already in history")

	root.AddCommand(
		a.openAppsCommand(),
		a.songCommand(),
		a.videoCommand(),
		a.playlistCommand(),
		a.likesCommand(),
		a.orderFilesCommand(),
		a.configCommand(),
		a.historyCommand(),
	)
	return root, a
}

func (a *app) init(cmd *cobra.Command) error {
	paths, err := config.ResolvePaths()
	if err != nil {
		return err
	}
	a.paths = paths
	a.config = config.NewStore(paths.Config)
	a.history = history.NewStore(paths.History)

	// Config problems are reported once the logger exists
	settings, settingsErr := a.config.Settings(log.WithContext(cmd.Context(), log.New(io.Discard)))
	a.settings = settings

	a.logger = log.NewWithOptions(a.deps.Err, log.Options{
		Level:           a.opts.LogLevel(settings.LogLevel),
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	if settingsErr != nil {
		a.logger.Warn("Invalid config values, using defaults", "path", paths.Config, "error", settingsErr)
	}
	if a.opts.OutputDir != "" {
		if a.opts.OutputDir, err = platform.ExpandHome(a.opts.OutputDir); err != nil {
			return err
		}
	}

	cmd.SetContext(log.WithContext(cmd.Context(), a.logger))
	a.logger.Debug("Starting", "command", cmd.CommandPath(), "app_dir", paths.AppDir)
	return nil
}

// requireFlag rejects an empty flag value
func requireFlag(name, value string) error {
	if value == "" {
		return model.Validationf("parse flags", "required flag --%s not set", name)
	}
	return nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.deps.Out, format, args...)
}
