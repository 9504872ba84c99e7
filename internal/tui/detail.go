package tui

import (
	"fmt"
	"strings"

	"github.com/ppiankov/auditrunner/internal/models"
	"github.com/ppiankov/auditrunner/internal/reporter"
)

// detailHeight is the fixed number of lines for the detail panel.
const detailHeight = 4

// renderDetail produces the detail view for a selected issue.
func renderDetail(issue *models.TopIssue, width int) string {
	if issue == nil {
		return styleDetailPanel.Width(width).Render("No issue selected")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", reporter.SeverityLabel(issue.Severity), reporter.Title(issue.Category)))
	b.WriteString(fmt.Sprintf("Title:    %s\n", issue.Title))
	b.WriteString(fmt.Sprintf("Location: %s", reporter.FormatLocation(issue.File, issue.Line)))

	return styleDetailPanel.Width(width).Render(b.String())
}
