package cli

import (
	"github.com/spf13/cobra"

	"github.com/ytget/cm-util/internal/config"
)

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := "exists"
			if !a.config.Exists() {
				state = "not created yet, showing defaults"
			}
			a.printf("Config file: %s (%s)\n", a.config.Path(), state)

			values := a.config.Values(cmd.Context())
			for _, key := range config.SortedKeys(values) {
				value, ok := values[key]
				if !ok || value == nil {
					a.printf("  %s: (not set)\n", key)
					continue
				}
				a.printf("  %s: %v\n", key, value)
			}
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], config.ParseValue(args[1])
			if a.opts.DryRun {
				a.logger.Info("[DRY RUN] Would set config value", "key", key, "value", value)
				return nil
			}
			if err := a.config.Set(cmd.Context(), key, value); err != nil {
				return err
			}
			a.printf("%s = %v\n", key, value)
			return nil
		},
	}

	cmd.AddCommand(show, set)
	return cmd
}
