package aggregator

import (
	"sort"

	"github.com/ppiankov/auditrunner/internal/models"
)

// TopIssueLimit caps the number of top issues in the executive summary.
const TopIssueLimit = 20

// Builder assembles the combined report from per-analyzer results
type Builder struct {
	recommender *RecommendationGenerator
}

// NewBuilder creates a new report builder
func NewBuilder() *Builder {
	return &Builder{
		recommender: NewRecommendationGenerator(),
	}
}

// Build fills in the derived metadata fields and the executive summary.
// The caller supplies run identity, target, timestamp and duration.
func (b *Builder) Build(results models.ResultSet, meta models.Metadata) *models.CombinedReport {
	meta.ScriptsRun = results.Len()
	meta.OverallSuccess = OverallSuccess(results)

	return &models.CombinedReport{
		Metadata:         meta,
		ExecutiveSummary: b.Summarize(results),
		DetailedResults:  results,
	}
}

// OverallSuccess is true iff no result carries an error.
func OverallSuccess(results models.ResultSet) bool {
	for _, e := range results.Entries() {
		if e.Result.Failed() {
			return false
		}
	}
	return true
}

// Summarize computes the executive summary. Failed analyzers are left out of
// every rollup; their error stays visible in the detailed results.
// by_severity always has exactly the five known keys.
func (b *Builder) Summarize(results models.ResultSet) models.ExecutiveSummary {
	summary := models.ExecutiveSummary{
		BySeverity: make(map[string]int, len(models.Severities)),
		ByCategory: make(map[string]models.CategorySummary),
	}
	for _, sev := range models.Severities {
		summary.BySeverity[sev] = 0
	}

	for _, e := range results.Entries() {
		if e.Result.Failed() {
			continue
		}

		// Only the five severities roll up; keys like "total" stay in the
		// category summary.
		counts := e.Result.Summary()
		for severity, count := range counts {
			if _, known := summary.BySeverity[severity]; !known {
				continue
			}
			summary.BySeverity[severity] += count
			summary.TotalFindings += count
		}

		summary.ByCategory[string(e.Name)] = models.CategorySummary{
			Total:   e.Result.FindingCount(),
			Summary: counts,
		}
	}

	summary.TopIssues = TopIssues(results, TopIssueLimit)
	summary.Recommendations = b.recommender.Generate(summary.ByCategory)

	return summary
}

// TopIssues collects critical and high findings from successful analyzers,
// orders them by severity rank (stable, so discovery order breaks ties) and
// keeps the first limit entries.
func TopIssues(results models.ResultSet, limit int) []models.TopIssue {
	issues := []models.TopIssue{}

	for _, e := range results.Entries() {
		if e.Result.Failed() {
			continue
		}
		for _, f := range e.Result.Findings() {
			if f.Severity != models.SeverityCritical && f.Severity != models.SeverityHigh {
				continue
			}
			issues = append(issues, models.TopIssue{
				Category: string(e.Name),
				Title:    f.Title,
				Severity: f.Severity,
				File:     f.FilePath,
				Line:     f.LineNumber,
			})
		}
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return models.SeverityRank(issues[i].Severity) < models.SeverityRank(issues[j].Severity)
	})

	if len(issues) > limit {
		issues = issues[:limit]
	}
	return issues
}
