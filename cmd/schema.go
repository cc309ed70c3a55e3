package cmd

import (
	"errors"
	"sort"
	"strings"

	"content-validator/feature/content"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// schemaCmd checks the source database schema.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the source database has every table and column the validators read",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		db, closeDB, err := rt.openDB()
		if err != nil {
			return err
		}
		defer closeDB()

		report, err := content.CheckSchema(db, rt.cfg.Source.TablePrefix)
		if err != nil {
			return err
		}

		tables := make([]string, 0, len(report.Tables))
		for name := range report.Tables {
			tables = append(tables, name)
		}
		sort.Strings(tables)
		for _, name := range tables {
			tbl := report.Tables[name]
			if tbl.Status == "ok" {
				pterm.Success.Printfln("%s", name)
			} else {
				pterm.Error.Printfln("%s: missing %s", name, strings.Join(tbl.MissingColumns, ", "))
			}
		}
		for _, msg := range report.Errors {
			pterm.Error.Println(msg)
		}

		if !report.Matched {
			return errors.New("source schema does not match")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(schemaCmd)
}
