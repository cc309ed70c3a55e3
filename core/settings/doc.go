// Package settings defines the explicit set of Press Sync options a command
// accepts.
//
// Options are passed as free-form --key=value flags. Only keys declared on
// Settings are registered; unknown keys are ignored by the command parser.
// Values given on the command line override the stored settings loaded from
// configuration (the "sync" section), and the result is handed to the
// validators explicitly instead of being looked up globally.
//
// # Usage
//
//	settings.RegisterFlags(cmd.Flags())
//	opts, err := settings.Apply(cfg.Sync, cmd.Flags())
//	remoteCfg := opts.Remote(cfg.Remote)
package settings
