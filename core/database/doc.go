// Package database handles the run-history database connection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL connections based on the application's configuration.
//
// # Connect
//
// The Connect function establishes a pooled connection and verifies it with a
// bounded ping. The history database is optional: a failed connection is a
// warning at startup and comparisons still run without persisted history.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("History database unavailable", zap.Error(err))
//	}
package database
