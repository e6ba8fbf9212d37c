package cli

import (
	"github.com/spf13/cobra"

	"github.com/ytget/cm-util/internal/model"
)

// DefaultHistoryLimit is how many records history show prints
const DefaultHistoryLimit = 10

func (a *app) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear the download history",
	}

	var limit int
	show := &cobra.Command{
		Use:   "show",
		Short: "Print recent downloads, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records := a.history.List(cmd.Context(), limit)
			if len(records) == 0 {
				a.printf("No download history\n")
				return nil
			}

			a.printf("Download history (%d):\n", len(records))
			for i, record := range records {
				a.printf("%d. %s\n", i+1, model.DisplayValue(record.Title))
				a.printf("   URL: %s\n", record.URL)
				a.printf("   Type: %s | Date: %s\n", model.DisplayValue(string(record.MediaType)), model.DisplayValue(record.Timestamp))
				if record.FilePath != "" {
					a.printf("   File: %s\n", record.FilePath)
				}
			}
			return nil
		},
	}
	show.Flags().IntVarP(&limit, "limit", "l", DefaultHistoryLimit, "number of records to show, 0 for all")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every history record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.opts.DryRun {
				a.logger.Info("[DRY RUN] Would clear download history", "path", a.history.Path())
				return nil
			}
			return a.history.Clear(cmd.Context())
		},
	}

	cmd.AddCommand(show, clearCmd)
	return cmd
}
