package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abhayror17/Excel-Comparator/core/compare"
)

// WriteJSON renders the report as indented JSON into w.
func WriteJSON(w io.Writer, report *compare.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// SaveJSON renders the report as indented JSON at path.
func SaveJSON(report *compare.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(f, report)
}
