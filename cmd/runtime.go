package cmd

import (
	"fmt"

	"content-validator/core/config"
	"content-validator/core/database"
	"content-validator/core/logger"
	"content-validator/core/remote"
	"content-validator/core/settings"
	"content-validator/core/validation"
	"content-validator/feature/content"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds what every command resolves before doing work.
type runtime struct {
	cfg      *config.Config
	logger   *zap.Logger
	settings settings.Settings
	verbose  bool
}

// loadRuntime loads configuration, applies command line options over the
// stored sync settings and builds the logger.
func loadRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		cfg.Log.Level = "debug"
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	opts, err := settings.Apply(cfg.Sync, cmd.Flags())
	if err != nil {
		return nil, err
	}
	for _, p := range opts.Pairs() {
		if cmd.Flags().Lookup(p.Key) == nil || !cmd.Flags().Changed(p.Key) {
			continue
		}
		value := p.Value
		if p.Key == "ps_remote_key" {
			value = "********"
		}
		logg.Info(fmt.Sprintf("Arg set: [%s] => %s", p.Key, value))
	}

	return &runtime{cfg: cfg, logger: logg, settings: opts, verbose: verbose}, nil
}

// options returns the validation options, honouring the sample_count option.
func (rt *runtime) options() validation.Options {
	opts := rt.cfg.Validation.Options()
	if rt.settings.SampleCount > 0 {
		opts.SampleCount = rt.settings.SampleCount
	}
	return opts
}

// openSource reads local content from the local_folder snapshot when set,
// otherwise from the source database.
func (rt *runtime) openSource() (content.Source, func(), error) {
	ignored := rt.cfg.Validation.IgnoredMetaKeys
	if rt.settings.LocalFolder != "" {
		rt.logger.Info("Reading local content from snapshot", zap.String("folder", rt.settings.LocalFolder))
		return content.NewSnapshot(afero.NewOsFs(), rt.settings.LocalFolder, ignored), func() {}, nil
	}

	store, closeDB, err := rt.openStore()
	if err != nil {
		return nil, nil, err
	}
	return store, closeDB, nil
}

// openDB connects to the source database.
func (rt *runtime) openDB() (*gorm.DB, func(), error) {
	db, err := database.Connect(rt.cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to source database: %w", err)
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, closeDB, nil
}

// openStore reads content from the source database.
func (rt *runtime) openStore() (*content.Store, func(), error) {
	db, closeDB, err := rt.openDB()
	if err != nil {
		return nil, nil, err
	}
	return content.NewStore(db, rt.cfg.Source.TablePrefix, rt.cfg.Validation.IgnoredMetaKeys), closeDB, nil
}

// remoteClient builds the destination client from config and options.
func (rt *runtime) remoteClient() (remote.Client, error) {
	return remote.NewClient(rt.settings.Remote(rt.cfg.Remote), rt.logger)
}
