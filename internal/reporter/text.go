package reporter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ppiankov/auditrunner/internal/models"
	"github.com/ppiankov/auditrunner/internal/registry"
)

const rule = "--------------------------------------------------\n"

// TextReporter generates human-readable text reports
type TextReporter struct {
	writer io.Writer
	err    error // first write error
}

// NewTextReporter creates a new text reporter
func NewTextReporter(writer io.Writer) *TextReporter {
	return &TextReporter{
		writer: writer,
	}
}

// Generate renders a combined report as text. It returns the first error
// the writer reported.
func (r *TextReporter) Generate(report *models.CombinedReport) error {
	r.printHeader()
	r.printMetadata(report.Metadata)
	r.printSeverities(report.ExecutiveSummary)
	r.printCategories(report)
	r.printTopIssues(report.ExecutiveSummary.TopIssues)
	r.printRecommendations(report.ExecutiveSummary.Recommendations)
	return r.err
}

func (r *TextReporter) printHeader() {
	r.printf("╔════════════════════════════════════════════╗\n")
	r.printf("║         Code Analysis Summary Report       ║\n")
	r.printf("╚════════════════════════════════════════════╝\n\n")
}

func (r *TextReporter) printMetadata(meta models.Metadata) {
	status := "OK"
	if !meta.OverallSuccess {
		status = "PARTIAL (one or more analyzers failed)"
	}

	r.printf("Target:    %s\n", meta.TargetPath)
	r.printf("Timestamp: %s\n", meta.Timestamp)
	r.printf("Duration:  %.2fs across %d analyzers\n", meta.TotalDuration, meta.ScriptsRun)
	r.printf("Status:    %s\n\n", status)
}

func (r *TextReporter) printSeverities(summary models.ExecutiveSummary) {
	r.printf("Findings by Severity (total %d):\n", summary.TotalFindings)
	r.printf(rule)
	for _, sev := range orderedSeverities(summary.BySeverity) {
		r.printf("  %-10s %d\n", SeverityLabel(sev), summary.BySeverity[sev])
	}
	r.printf("\n")
}

// printCategories lists every analyzer in run order, including failed ones.
func (r *TextReporter) printCategories(report *models.CombinedReport) {
	r.printf("Analyzers:\n")
	r.printf(rule)
	for _, e := range report.DetailedResults.Entries() {
		if e.Result.Failed() {
			r.printf("  ✗ %-14s %s\n", e.Name, e.Result.ErrorMessage())
			continue
		}
		cat := report.ExecutiveSummary.ByCategory[string(e.Name)]
		r.printf("  ✓ %-14s %d findings", e.Name, cat.Total)
		if d, ok := e.Result.Duration(); ok {
			r.printf(" (%.2fs)", d)
		}
		r.printf("\n")
	}
	r.printf("\n")
}

func (r *TextReporter) printTopIssues(issues []models.TopIssue) {
	if len(issues) == 0 {
		return
	}

	r.printf("Top Issues:\n")
	r.printf(rule)
	for i, issue := range issues {
		r.printf("  %2d. [%s] %s (%s)\n", i+1, SeverityLabel(issue.Severity), issue.Title, issue.Category)
		r.printf("      %s\n", FormatLocation(issue.File, issue.Line))
	}
	r.printf("\n")
}

func (r *TextReporter) printRecommendations(recs []string) {
	r.printf("Recommendations:\n")
	r.printf(rule)
	for i, rec := range recs {
		r.printf("  %d. %s\n", i+1, rec)
	}
}

// printf is a helper to write formatted output. After a failed write it
// does nothing.
func (r *TextReporter) printf(format string, args ...interface{}) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.writer, format, args...); err != nil {
		r.err = fmt.Errorf("write text report: %w", err)
	}
}

// FormatLocation renders file:line, or just the file when the line is unknown.
func FormatLocation(file string, line *int) string {
	if line == nil {
		return file
	}
	return fmt.Sprintf("%s:%d", file, *line)
}

// orderedSeverities returns known severities first, then any extra keys sorted.
func orderedSeverities(counts map[string]int) []string {
	ordered := append([]string{}, models.Severities...)

	var extra []string
	for sev := range counts {
		if models.SeverityRank(sev) == models.SeverityRank("") {
			extra = append(extra, sev)
		}
	}
	sort.Strings(extra)
	return append(ordered, extra...)
}

// CategoryOrder returns analyzer names in registry order followed by unknown names.
func CategoryOrder(byCategory map[string]models.CategorySummary) []string {
	var names []string
	for _, spec := range registry.Defaults {
		if _, ok := byCategory[string(spec.Name)]; ok {
			names = append(names, string(spec.Name))
		}
	}

	var extra []string
	for name := range byCategory {
		if !registry.IsKnown(name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// Title upper-cases the first letter of an analyzer name and spaces underscores.
func Title(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
