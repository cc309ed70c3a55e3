// Package database handles connections to the source content database and
// schema inspection.
//
// It wraps GORM to configure MySQL (production WordPress installs) or SQLite
// (fixtures and local copies) based on the application's configuration.
//
// # Connect
//
// Connect opens the database and verifies it with a ping bounded by
// TimeoutSeconds. SQLite connections are limited to a single pooled
// connection so in-memory databases stay consistent.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns let the content readers verify that the
// expected tables and columns exist before sampling.
//
// # Usage
//
//	db, err := database.Connect(cfg.Source)
//	if err != nil {
//	    return err
//	}
//	missing, err := database.MissingColumns(db, "wp_posts", []string{"ID", "post_title"})
package database
