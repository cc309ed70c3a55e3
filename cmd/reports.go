package cmd

import (
	"fmt"
	"strconv"

	"content-validator/core/storage"
	"content-validator/feature/report"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// reportsCmd lists archived validation reports.
var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List archived validation reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		client, err := storage.NewClient(rt.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		items, err := report.NewArchiver(client, rt.cfg.Storage).List(cmd.Context())
		if err != nil {
			return err
		}
		if len(items) == 0 {
			pterm.Info.Println("No archived reports")
			return nil
		}

		data := pterm.TableData{{"Key", "Size", "Last Modified"}}
		for _, it := range items {
			data = append(data, []string{it.Key, strconv.FormatInt(it.Size, 10), it.LastModified.Format("2006-01-02 15:04:05")})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	RootCmd.AddCommand(reportsCmd)
}
