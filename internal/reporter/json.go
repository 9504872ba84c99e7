package reporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ppiankov/auditrunner/internal/models"
)

// JSONReporter generates the machine-readable combined report
type JSONReporter struct {
	writer io.Writer
	pretty bool
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(writer io.Writer, pretty bool) *JSONReporter {
	return &JSONReporter{
		writer: writer,
		pretty: pretty,
	}
}

// Generate writes the report as a single JSON document followed by a newline
func (r *JSONReporter) Generate(report *models.CombinedReport) error {
	enc := json.NewEncoder(r.writer)
	enc.SetEscapeHTML(false)
	if r.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}

// LoadReport reads a combined report previously written by Generate
func LoadReport(reader io.Reader) (*models.CombinedReport, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	var report models.CombinedReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &report, nil
}
