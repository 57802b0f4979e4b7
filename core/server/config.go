package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// MaxUploadMB is the maximum accepted size of an uploaded workbook in MiB.
	MaxUploadMB int `mapstructure:"max_upload_mb" default:"64"`
}

// BodyLimit returns the request body limit in bytes derived from MaxUploadMB.
// Two workbooks travel in one multipart request, hence the doubling.
func (c Config) BodyLimit() int {
	mb := c.MaxUploadMB
	if mb <= 0 {
		mb = 64
	}
	return mb * 2 * 1024 * 1024
}
