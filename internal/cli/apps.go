package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ytget/cm-util/internal/config"
	"github.com/ytget/cm-util/internal/platform"
)

func (a *app) openAppsCommand() *cobra.Command {
	var appType string
	cmd := &cobra.Command{
		Use:   "open-apps",
		Short: "Open a group of macOS applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.settings.AppsConfig
			if path != "" {
				var err error
				if path, err = platform.ExpandHome(path); err != nil {
					return err
				}
			}

			list, source, err := config.LoadAppList(path)
			if err != nil {
				return err
			}
			a.logger.Debug("Loaded app list", "source", source)

			groups, err := list.Resolve(appType)
			if err != nil {
				return err
			}

			launcher := a.deps.Launcher(a.opts.DryRun)
			var errs []error
			for _, group := range groups {
				opened, err := launcher.OpenApps(cmd.Context(), group.Path, group.Apps)
				for _, bundle := range opened {
					a.printf("%s\n", bundle)
				}
				if err != nil {
					errs = append(errs, err)
				}
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().StringVarP(&appType, "type", "t", config.GroupDefault, "app group: default, installed, system or music")
	return cmd
}
