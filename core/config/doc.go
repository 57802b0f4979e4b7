// Package config provides configuration management for the comparator.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, upload limit)
//   - Database: MySQL connection details for the run history
//   - Storage: S3/MinIO credentials and bucket settings for remote workbooks
//   - Log: Logging level and format
//   - Compare: Default identifier fields, strict mode, progress interval
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
