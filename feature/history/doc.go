// Package history persists comparison run summaries to MySQL and exposes
// them over HTTP.
//
// Each completed comparison is recorded as a single row with its aggregate
// counts and duration. The feature is optional: when no database is
// configured it stays disabled and comparisons run without persistence.
package history
