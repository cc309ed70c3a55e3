package remote

// Config holds the connection settings for the destination site.
type Config struct {
	// Domain is the destination host, optionally with a port.
	Domain string `mapstructure:"domain" default:""`
	// Key is the destination Press Sync key.
	Key string `mapstructure:"key" default:""`
	// UseSSL selects https.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// BasePath is the REST namespace the validation routes live under.
	BasePath string `mapstructure:"base_path" default:"/wp-json/press-sync/v1"`
	// TimeoutSeconds bounds a whole validation run, applied by the caller.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
}
