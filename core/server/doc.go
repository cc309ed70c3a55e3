// Package server holds the HTTP server configuration.
//
// The server exposes the destination validation API (so another instance can
// validate against this one) and on-demand validation reports.
//
// # Configuration
//
// The Config struct defines the HTTP port, the Press Sync key required from
// clients and the timeouts applied to requests and HTTP-triggered validations.
package server
