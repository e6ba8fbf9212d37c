package cli

import (
	"github.com/spf13/cobra"

	"github.com/ytget/cm-util/internal/platform"
)

func (a *app) orderFilesCommand() *cobra.Command {
	var path, fileType, orderBy string
	cmd := &cobra.Command{
		Use:   "order-files",
		Short: "List the files of a folder sorted by name or creation date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlag("path", path); err != nil {
				return err
			}
			folder, err := platform.ExpandHome(path)
			if err != nil {
				return err
			}

			names, err := platform.SortFilesBy(folder, fileType, orderBy)
			if err != nil {
				return err
			}
			if len(names) == 0 {
				a.logger.Warn("No matching files", "folder", folder, "type", fileType)
			}
			for _, name := range names {
				a.printf("%s\n", name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "path", "p", "", "folder to sort")
	cmd.Flags().StringVarP(&fileType, "file-type", "f", platform.FileTypeAll, "extension to include, or all")
	cmd.Flags().StringVarP(&orderBy, "order-by", "o", platform.OrderByName, "sort key: name or date")
	return cmd
}
