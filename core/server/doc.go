// Package server holds the HTTP server configuration.
//
// While the serve command handles the server startup, this package defines
// the configuration structure for server settings such as the listen port,
// the API key protecting the endpoints, and the upload size limit for
// workbook comparison requests.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the serve command to size the Fiber body limit.
package server
