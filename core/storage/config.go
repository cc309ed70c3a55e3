package storage

import "time"

// Config holds configuration for the report archive bucket.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the bucket validation reports are archived in.
	Bucket string `mapstructure:"bucket" default:"validation-reports"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// ReportPrefix is the object prefix for archived reports.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// OperationTimeoutSeconds bounds one archive upload, download or listing.
	OperationTimeoutSeconds int `mapstructure:"operation_timeout_seconds" default:"60"`
	// MaxReportBytes caps the size of an archived report read back.
	MaxReportBytes int64 `mapstructure:"max_report_bytes" default:"16777216"`
}

// ConnectTimeout returns the dial and handshake timeout, 30s when unset.
func (c Config) ConnectTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// OperationTimeout returns the per-call deadline, 60s when unset.
func (c Config) OperationTimeout() time.Duration {
	if c.OperationTimeoutSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.OperationTimeoutSeconds) * time.Second
}

// ReportLimit returns the read cap for one report, 16 MiB when unset.
func (c Config) ReportLimit() int64 {
	if c.MaxReportBytes <= 0 {
		return 16 << 20
	}
	return c.MaxReportBytes
}
