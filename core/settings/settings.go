package settings

import (
	"fmt"
	"reflect"

	"content-validator/core/remote"
	"content-validator/core/utils"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings enumerates every recognized Press Sync option. Only these keys
// are accepted from the command line; anything else is dropped.
type Settings struct {
	// RemoteDomain is the domain of the remote site.
	RemoteDomain string `mapstructure:"ps_remote_domain" default:"" usage:"The domain of the remote site."`
	// RemoteKey is the remote site Press Sync key.
	RemoteKey string `mapstructure:"ps_remote_key" default:"" usage:"The remote site Press Sync key."`
	// SyncMethod is push or pull.
	SyncMethod string `mapstructure:"ps_sync_method" default:"push" usage:"The sync method (push or pull)."`
	// DuplicateAction is the action taken for duplicate posts.
	DuplicateAction string `mapstructure:"ps_duplicate_action" default:"skip" usage:"Action to take for duplicate posts."`
	// ForceUpdate forces updates of existing posts.
	ForceUpdate bool `mapstructure:"ps_force_update" default:"false" usage:"Whether or not to force update of posts."`
	// SkipAssets skips full attachment uploads.
	SkipAssets bool `mapstructure:"ps_skip_assets" default:"false" usage:"Whether to skip full attachment uploads."`
	// OptionsToSync is a comma separated list of options.
	OptionsToSync string `mapstructure:"ps_options_to_sync" default:"" usage:"Comma-separated list of options to sync."`
	// PreserveIDs keeps object IDs identical on both sides.
	PreserveIDs bool `mapstructure:"ps_preserve_ids" default:"false" usage:"Whether to preserve the IDs of post-type objects."`
	// FixTerms repairs terms instead of a normal sync.
	FixTerms bool `mapstructure:"ps_fix_terms" default:"false" usage:"Whether terms should be repaired instead of doing a normal sync."`
	// ContentThreshold compares duplicates on content when > 0.
	ContentThreshold int `mapstructure:"ps_content_threshold" default:"0" usage:"Set to a number > 0 to compare duplicates based on content."`
	// PartialTerms allows smaller payloads when terms are already synced.
	PartialTerms bool `mapstructure:"ps_partial_terms" default:"false" usage:"Set true if terms are already synced."`
	// PageSize is the number of objects handled per batch.
	PageSize int `mapstructure:"ps_page_size" default:"5" usage:"The number of objects to sync in a batch."`
	// LocalFolder reads source data from snapshot files instead of the database.
	LocalFolder string `mapstructure:"local_folder" default:"" usage:"The local folder of JSON data to read instead of the source database."`
	// SampleCount overrides the configured sample size when > 0.
	SampleCount int `mapstructure:"sample_count" default:"0" usage:"Number of records to compare field by field."`
}

// Pair is one resolved option.
type Pair struct {
	Key   string
	Value string
}

// Keys returns the recognized option names in declaration order.
func Keys() []string {
	t := reflect.TypeOf(Settings{})
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		keys = append(keys, t.Field(i).Tag.Get("mapstructure"))
	}
	return keys
}

// IsKnown reports whether key is a recognized option.
func IsKnown(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// RegisterFlags exposes every recognized option as a --key=value flag.
// Boolean options may be given without a value.
func RegisterFlags(fs *pflag.FlagSet) {
	t := reflect.TypeOf(Settings{})
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key := field.Tag.Get("mapstructure")
		if fs.Lookup(key) != nil {
			continue
		}
		fs.String(key, "", field.Tag.Get("usage"))
		if field.Type.Kind() == reflect.Bool {
			fs.Lookup(key).NoOptDefVal = "true"
		}
	}
}

// Apply merges the options changed on fs over base. Values are decoded
// loosely ("1" and "true" both enable a boolean).
func Apply(base Settings, fs *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	val := reflect.ValueOf(base)
	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		v.Set(t.Field(i).Tag.Get("mapstructure"), val.Field(i).Interface())
	}

	if fs != nil {
		for _, key := range Keys() {
			if !fs.Changed(key) {
				continue
			}
			raw, err := fs.GetString(key)
			if err != nil {
				return base, fmt.Errorf("failed to read option %s: %w", key, err)
			}
			v.Set(key, raw)
		}
	}

	var out Settings
	if err := v.Unmarshal(&out); err != nil {
		return base, fmt.Errorf("failed to decode options: %w", err)
	}
	return out, nil
}

// Pairs lists every option with its resolved value, in declaration order.
func (s Settings) Pairs() []Pair {
	val := reflect.ValueOf(s)
	t := val.Type()
	pairs := make([]Pair, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		pairs = append(pairs, Pair{
			Key:   t.Field(i).Tag.Get("mapstructure"),
			Value: utils.ToString(val.Field(i).Interface()),
		})
	}
	return pairs
}

// Remote overlays the remote domain and key options on cfg.
func (s Settings) Remote(cfg remote.Config) remote.Config {
	if s.RemoteDomain != "" {
		cfg.Domain = s.RemoteDomain
	}
	if s.RemoteKey != "" {
		cfg.Key = s.RemoteKey
	}
	return cfg
}
