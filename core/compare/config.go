package compare

import "strings"

// Config holds the comparison defaults loaded from the environment.
type Config struct {
	// Identifiers is the comma-separated ordered identifier-field list.
	Identifiers string `mapstructure:"identifiers" default:"Channel Name,Program Date,Clip Start Time"`
	// Strict promotes duplicate composite keys to a sheet-level error.
	Strict bool `mapstructure:"strict" default:"false"`
	// ProgressInterval is how many processed keys between progress log lines.
	ProgressInterval int `mapstructure:"progress_interval" default:"1000"`
}

// IdentifierList parses the configured identifier string into the ordered
// field list, trimming whitespace and dropping empty entries. An empty
// configuration falls back to DefaultIdentifiers.
func (c Config) IdentifierList() []string {
	parts := strings.Split(c.Identifiers, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	if len(fields) == 0 {
		return DefaultIdentifiers
	}
	return fields
}
