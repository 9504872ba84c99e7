package tui

import (
	"sort"
	"strings"

	"github.com/ppiankov/auditrunner/internal/models"
)

// filterState holds current active filters.
type filterState struct {
	Category   string
	SearchText string
}

// sortField enumerates columns that can be sorted.
type sortField int

const (
	sortBySeverity sortField = iota
	sortByCategory
	sortByTitle
	sortByFile
)

// sortFieldCount is the total number of sortable columns.
const sortFieldCount = 4

// applyFilters returns issues matching all active filters.
func applyFilters(issues []models.TopIssue, f filterState) []models.TopIssue {
	result := make([]models.TopIssue, 0, len(issues))
	searchLower := strings.ToLower(f.SearchText)

	for _, issue := range issues {
		if f.Category != "" && issue.Category != f.Category {
			continue
		}
		if searchLower != "" && !matchesSearch(issue, searchLower) {
			continue
		}
		result = append(result, issue)
	}
	return result
}

func matchesSearch(issue models.TopIssue, searchLower string) bool {
	return strings.Contains(strings.ToLower(issue.Category), searchLower) ||
		strings.Contains(strings.ToLower(issue.Title), searchLower) ||
		strings.Contains(strings.ToLower(issue.Severity), searchLower) ||
		strings.Contains(strings.ToLower(issue.File), searchLower)
}

// sortIssues sorts a slice of issues in place by the given field.
// The sort is stable, so equal keys keep report order.
func sortIssues(issues []models.TopIssue, field sortField) {
	sort.SliceStable(issues, func(i, j int) bool {
		switch field {
		case sortBySeverity:
			return models.SeverityRank(issues[i].Severity) < models.SeverityRank(issues[j].Severity)
		case sortByCategory:
			return issues[i].Category < issues[j].Category
		case sortByTitle:
			return issues[i].Title < issues[j].Title
		case sortByFile:
			return issues[i].File < issues[j].File
		default:
			return false
		}
	})
}

// uniqueCategories returns deduplicated, sorted analyzer names from issues.
func uniqueCategories(issues []models.TopIssue) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, issue := range issues {
		if !seen[issue.Category] {
			seen[issue.Category] = true
			categories = append(categories, issue.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// sortFieldName returns a human-readable name for the sort field.
func sortFieldName(f sortField) string {
	switch f {
	case sortBySeverity:
		return "severity"
	case sortByCategory:
		return "analyzer"
	case sortByTitle:
		return "title"
	case sortByFile:
		return "file"
	default:
		return "unknown"
	}
}
