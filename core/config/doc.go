// Package config provides configuration management for the content validator.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// partial configuration.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: destination API settings (port, API key, timeouts)
//   - Source: source site database connection (mysql or sqlite)
//   - Remote: destination site domain, key and API path
//   - Storage: S3/MinIO credentials for report archiving
//   - Log: logging level and format
//   - Validation: sample size and ignored meta keys
//   - Sync: stored Press Sync options (SYNC_PS_REMOTE_DOMAIN, ...)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Remote.Domain)
package config
