package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the Press Sync key clients must present. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// ReadTimeoutSeconds bounds reading a request.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"30"`
	// ReportTimeoutSeconds bounds a validation run started over HTTP.
	ReportTimeoutSeconds int `mapstructure:"report_timeout_seconds" default:"120"`
	// ReportCacheSeconds keeps HTTP reports for reuse. 0 disables caching.
	ReportCacheSeconds int `mapstructure:"report_cache_seconds" default:"0"`
}

// ReadTimeout returns the request read timeout.
func (c Config) ReadTimeout() time.Duration {
	return seconds(c.ReadTimeoutSeconds, 30)
}

// ReportTimeout returns the deadline for HTTP-triggered validations.
func (c Config) ReportTimeout() time.Duration {
	return seconds(c.ReportTimeoutSeconds, 120)
}

// ReportCacheTTL returns how long an HTTP report is reused; 0 disables it.
func (c Config) ReportCacheTTL() time.Duration {
	if c.ReportCacheSeconds <= 0 {
		return 0
	}
	return time.Duration(c.ReportCacheSeconds) * time.Second
}

// AuthEnabled reports whether requests must carry the key.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}

func seconds(n, fallback int) time.Duration {
	if n <= 0 {
		n = fallback
	}
	return time.Duration(n) * time.Second
}
