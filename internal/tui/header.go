package tui

import (
	"fmt"
	"strings"

	"github.com/ppiankov/auditrunner/internal/models"
	"github.com/ppiankov/auditrunner/internal/reporter"
)

// headerHeight is the number of terminal lines the header occupies.
const headerHeight = 6

// renderHeader produces the header string from report metadata and summary.
func renderHeader(meta models.Metadata, summary models.ExecutiveSummary, failed []string, width int) string {
	var b strings.Builder

	// Line 1: target and status
	status := statusStyle(meta.OverallSuccess).Render("OK")
	if !meta.OverallSuccess {
		status = statusStyle(false).Render(fmt.Sprintf("FAILED: %s", strings.Join(failed, ", ")))
	}
	b.WriteString(fmt.Sprintf("auditrunner  %s  %s\n", meta.TargetPath, status))

	// Line 2: totals
	b.WriteString(fmt.Sprintf("Analyzers: %d  Findings: %d  Duration: %.2fs\n",
		meta.ScriptsRun, summary.TotalFindings, meta.TotalDuration))

	// Line 3: severity breakdown
	sevParts := make([]string, 0, len(models.Severities))
	for _, sev := range models.Severities {
		if count := summary.BySeverity[sev]; count > 0 {
			label := fmt.Sprintf("%s:%d", strings.ToUpper(sev[:1]), count)
			sevParts = append(sevParts, reporter.SeverityStyle(sev).Render(label))
		}
	}
	b.WriteString(strings.Join(sevParts, "  "))
	b.WriteString("\n")

	// Line 4: per-analyzer totals
	catParts := make([]string, 0, len(summary.ByCategory))
	for _, name := range reporter.CategoryOrder(summary.ByCategory) {
		catParts = append(catParts, fmt.Sprintf("%s:%d", reporter.Title(name), summary.ByCategory[name].Total))
	}
	b.WriteString(strings.Join(catParts, "  "))

	return styleHeader.Width(width).Render(b.String())
}
