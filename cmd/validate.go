package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"content-validator/core/render"
	"content-validator/core/settings"
	"content-validator/core/storage"
	"content-validator/feature/registry"
	"content-validator/feature/report"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errMismatch signals --fail-on-mismatch found differences.
var errMismatch = errors.New("destination content does not match the source")

// validateCmd is the parent command for all validators.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate destination content against the source site",
	Long: `Compares counts and a sample of records between this (source) site and the
destination site. Any Press Sync option can be passed as --<option>=<value>;
unknown options are ignored.

Examples:
  validate post --ps_remote_domain=dest.example.com --ps_remote_key=secret
  validate all --sample_count=50 --format=markdown
  validate user --local_folder=./snapshot --fail-on-mismatch`,
}

func newValidatorCmd(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:                name,
		Short:              short,
		Args:               cobra.NoArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, name)
		},
	}
}

func init() {
	flags := validateCmd.PersistentFlags()
	flags.String("format", string(render.FormatTree), "Report format (tree, yaml, json, markdown)")
	flags.Bool("archive", false, "Archive the report to object storage")
	flags.Bool("fail-on-mismatch", false, "Exit with an error when anything differs")
	flags.Bool("verbose", false, "Debug logging and full source/destination payloads")
	settings.RegisterFlags(flags)

	validateCmd.AddCommand(
		newValidatorCmd("post", "Validate posts, their meta and term assignments"),
		newValidatorCmd("taxonomy", "Validate taxonomy terms and their meta"),
		newValidatorCmd("user", "Validate users and their meta"),
		newValidatorCmd(registry.All, "Run every validator concurrently"),
	)
	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, name string) error {
	rt, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	rawFormat, _ := cmd.Flags().GetString("format")
	format, err := render.ParseFormat(rawFormat)
	if err != nil {
		return err
	}
	names, err := registry.Resolve(name)
	if err != nil {
		return err
	}

	source, closeSource, err := rt.openSource()
	if err != nil {
		return err
	}
	defer closeSource()

	client, err := rt.remoteClient()
	if err != nil {
		return fmt.Errorf("failed to create destination client: %w", err)
	}

	start := time.Now()
	results, err := registry.Run(cmd.Context(), registry.Deps{
		Source:  source,
		Remote:  client,
		Options: rt.options(),
		Logger:  rt.logger,
		Timeout: rt.cfg.Server.ReportTimeout(),
	}, names...)
	if err != nil {
		return err
	}

	if rt.verbose {
		for _, res := range results {
			rt.logger.Debug("Validation payload",
				zap.String("validator", res.Validator),
				zap.Any("source", res.Source),
				zap.Any("destination", res.Destination),
			)
		}
	}

	doc := report.NewDocument(name, results, start)
	if err := writeResults(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, doc); err != nil {
		return err
	}
	rt.logger.Info("Validation completed", zap.String("validator", name), zap.Duration("execution_time", time.Since(start)))

	if archive, _ := cmd.Flags().GetBool("archive"); archive {
		store, err := storage.NewClient(rt.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		key, err := report.NewArchiver(store, rt.cfg.Storage).Archive(cmd.Context(), doc)
		if err != nil {
			return err
		}
		pterm.Info.WithWriter(cmd.ErrOrStderr()).Printfln("Report archived to %s/%s", rt.cfg.Storage.Bucket, key)
	}

	if failOnMismatch, _ := cmd.Flags().GetBool("fail-on-mismatch"); failOnMismatch && !doc.OK() {
		return errMismatch
	}
	return nil
}

// writeResults renders the report to out and one status line per validator
// to status. Only the report goes to out so it stays parseable.
func writeResults(out, status io.Writer, format render.Format, doc report.Document) error {
	if err := render.Write(out, format, doc.Reports()); err != nil {
		return err
	}
	for _, name := range doc.Names() {
		s := doc.Validators[name].Summary
		if s.OK() {
			pterm.Success.WithWriter(status).Printfln("%s: all %d checks passed", name, s.Passed)
		} else {
			pterm.Warning.WithWriter(status).Printfln("%s: %d of %d checks failed", name, s.Failed, s.Passed+s.Failed)
		}
	}
	return nil
}
