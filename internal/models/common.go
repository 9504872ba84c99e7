package models

import "time"

// TimestampLayout is the local-time format of metadata timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// AnalyzerName identifies one of the external analyzers
type AnalyzerName string

const (
	AnalyzerSecurity     AnalyzerName = "security"
	AnalyzerPerformance  AnalyzerName = "performance"
	AnalyzerCodeQuality  AnalyzerName = "code_quality"
	AnalyzerArchitecture AnalyzerName = "architecture"
)

// Severity levels reported by analyzers
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
	SeverityInfo     = "info"
)

// Severities lists every known severity, most urgent first.
var Severities = []string{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
	SeverityInfo,
}

// SeverityRank returns the sort rank of a severity (lower = more urgent).
// Unknown severities rank after info.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	case SeverityInfo:
		return 4
	default:
		return 5
	}
}

// Finding is one issue reported by an analyzer
type Finding struct {
	Title      string `json:"title"`
	Severity   string `json:"severity"`
	FilePath   string `json:"file_path"`
	LineNumber *int   `json:"line_number,omitempty"`
}

// CategorySummary is the per-analyzer rollup in the executive summary
type CategorySummary struct {
	Total   int            `json:"total"`   // Number of findings returned
	Summary map[string]int `json:"summary"` // Severity counts as reported
}

// TopIssue is a critical or high finding promoted to the executive summary
type TopIssue struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Severity string `json:"severity"`
	File     string `json:"file"`
	Line     *int   `json:"line"`
}

// ExecutiveSummary is derived from all successful analyzer results
type ExecutiveSummary struct {
	TotalFindings   int                        `json:"total_findings"`
	BySeverity      map[string]int             `json:"by_severity"`
	ByCategory      map[string]CategorySummary `json:"by_category"`
	TopIssues       []TopIssue                 `json:"top_issues"`
	Recommendations []string                   `json:"recommendations"`
}

// Metadata describes a single orchestration run. It is emitted under the
// "combined_analysis" key.
type Metadata struct {
	RunID          string  `json:"run_id"`
	TargetPath     string  `json:"target_path"`
	Timestamp      string  `json:"timestamp"`      // Local time, TimestampLayout
	TotalDuration  float64 `json:"total_duration"` // Seconds, rounded to 3 decimals
	ScriptsRun     int     `json:"scripts_run"`
	OverallSuccess bool    `json:"overall_success"`
	SummaryMode    bool    `json:"summary_mode"`
}

// CombinedReport is the single JSON document written to stdout
type CombinedReport struct {
	Metadata         Metadata         `json:"combined_analysis"`
	ExecutiveSummary ExecutiveSummary `json:"executive_summary"`
	DetailedResults  ResultSet        `json:"detailed_results"`
}

// RoundSeconds converts a duration to seconds rounded to 3 decimals.
func RoundSeconds(d time.Duration) float64 {
	return float64(d.Round(time.Millisecond).Milliseconds()) / 1000.0
}
