// Package content reads WordPress-shaped content for validation.
//
// The Store reads posts, terms and users with their metadata from a
// database through GORM; Snapshot reads the same data from JSON files
// written by ExportSnapshot. Both implement Source and return records in
// ascending identifier order so sampling is reproducible.
//
// The Handler exposes a Source over HTTP under /wp-json/press-sync/v1 so any
// instance can act as the destination of a validation run:
//
//	GET /validation/{kind}/count
//	GET /validation/{kind}/sample?type=posts|terms|users&ids[]=1&ids[]=2
//
// CheckSchema verifies the tables and columns the readers depend on.
package content
