// Package middleware contains HTTP middleware for the destination API.
//
// # Components
//
//   - auth: validates the Press Sync key from the X-Press-Sync-Key header or
//     the press_sync_key query parameter.
//   - rayid: assigns a request id (RayID), stores it in the context and echoes
//     it in the X-Ray-ID response header for tracing.
package middleware
