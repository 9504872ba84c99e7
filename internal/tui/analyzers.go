package tui

import (
	"fmt"
	"strings"

	"github.com/ppiankov/auditrunner/internal/models"
	"github.com/ppiankov/auditrunner/internal/reporter"
)

// analyzerStatus is one line of the analyzers panel.
type analyzerStatus struct {
	Name     string
	Failed   bool
	Error    string
	Stderr   string // last non-empty stderr line
	Findings int
	Duration float64
}

// buildAnalyzerStatuses lists analyzers in run order.
func buildAnalyzerStatuses(results models.ResultSet) []analyzerStatus {
	statuses := make([]analyzerStatus, 0, results.Len())
	for _, e := range results.Entries() {
		st := analyzerStatus{
			Name:   string(e.Name),
			Failed: e.Result.Failed(),
		}
		if st.Failed {
			st.Error = e.Result.ErrorMessage()
			st.Stderr = lastLine(e.Result.Stderr())
		} else {
			st.Findings = e.Result.FindingCount()
			st.Duration, _ = e.Result.Duration()
		}
		statuses = append(statuses, st)
	}
	return statuses
}

func failedNames(statuses []analyzerStatus) []string {
	var names []string
	for _, st := range statuses {
		if st.Failed {
			names = append(names, st.Name)
		}
	}
	return names
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

// renderAnalyzers shows per-analyzer outcome and the recommendations.
func renderAnalyzers(statuses []analyzerStatus, recs []string, width int) string {
	var b strings.Builder

	for _, st := range statuses {
		if st.Failed {
			b.WriteString(statusStyle(false).Render("✗ "))
			b.WriteString(fmt.Sprintf("%-14s %s", reporter.Title(st.Name), st.Error))
			if st.Stderr != "" {
				b.WriteString(styleMuted.Render("  stderr: " + truncate(st.Stderr, 60)))
			}
		} else {
			b.WriteString(statusStyle(true).Render("✓ "))
			b.WriteString(fmt.Sprintf("%-14s %d findings (%.2fs)", reporter.Title(st.Name), st.Findings, st.Duration))
		}
		b.WriteString("\n")
	}

	if len(recs) > 0 {
		b.WriteString("\nRecommendations:\n")
		for i, rec := range recs {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, rec))
		}
	}

	return styleDetailPanel.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}
