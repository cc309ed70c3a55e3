package cmd

import (
	"fmt"

	"content-validator/feature/content"
	"content-validator/feature/registry"

	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	snapshotOut   string
	snapshotLimit int
)

// snapshotCmd exports local content for use with --local_folder.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot <post|taxonomy|user|all>",
	Short: "Export source content to JSON files",
	Long: `Writes counts, the first --limit records and post term relations to
<out>/<kind>.json. Point --local_folder at the folder to validate from the
snapshot instead of the database.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := registry.Resolve(args[0])
		if err != nil {
			return err
		}

		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		store, closeDB, err := rt.openStore()
		if err != nil {
			return err
		}
		defer closeDB()

		fs := afero.NewOsFs()
		for _, name := range names {
			path, err := content.ExportSnapshot(cmd.Context(), store, fs, snapshotOut, content.Kind(name), snapshotLimit)
			if err != nil {
				return fmt.Errorf("failed to export %s: %w", name, err)
			}
			rt.logger.Info("Snapshot written", zap.String("kind", name), zap.String("file", path))
			pterm.Success.Printfln("%s snapshot written to %s", name, path)
		}
		return nil
	},
}

func init() {
	snapshotCmd.Flags().StringVar(&snapshotOut, "out", "snapshot", "Output folder")
	snapshotCmd.Flags().IntVar(&snapshotLimit, "limit", 500, "Maximum records per kind")
	RootCmd.AddCommand(snapshotCmd)
}
