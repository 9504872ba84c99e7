package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/auditrunner/internal/aggregator"
	"github.com/ppiankov/auditrunner/internal/models"
)

func sampleReport() *models.CombinedReport {
	var rs models.ResultSet
	rs.Set(models.AnalyzerSecurity, models.NewSuccessResult(map[string]any{
		"summary": map[string]any{"critical": float64(1), "high": float64(1)},
		"findings": []any{
			map[string]any{"title": "SQL <injection>", "severity": "high", "file_path": "db.go", "line_number": float64(7)},
			map[string]any{"title": "RCE", "severity": "critical", "file_path": "exec.go"},
		},
	}, 1500*time.Millisecond))
	rs.Set(models.AnalyzerPerformance, models.NewErrorResult("Script failed (code 1)", "boom"))
	rs.Set(models.AnalyzerCodeQuality, models.NewSuccessResult(map[string]any{
		"summary": map[string]any{"low": float64(3)},
	}, 200*time.Millisecond))

	return aggregator.NewBuilder().Build(rs, models.Metadata{
		RunID:         "run-42",
		TargetPath:    "/srv/app",
		Timestamp:     "2026-10-15 10:00:00",
		TotalDuration: 1.7,
		SummaryMode:   true,
	})
}

func TestJSONReporterGenerate_Pretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONReporter(&buf, true).Generate(sampleReport()))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.True(t, strings.HasPrefix(out, "{\n  \"combined_analysis\": {"), out)
	assert.Contains(t, out, "SQL <injection>", "HTML is not escaped")
	assert.Equal(t, 1, strings.Count(out, "\"run_id\""))

	// combined_analysis, executive_summary, detailed_results in that order
	m := strings.Index(out, `"combined_analysis"`)
	e := strings.Index(out, `"executive_summary"`)
	d := strings.Index(out, `"detailed_results"`)
	assert.True(t, m < e && e < d)

	// analyzers keep run order in detailed_results; by_category is sorted
	detailed := out[d:]
	s := strings.Index(detailed, `"security": {`)
	p := strings.Index(detailed, `"performance": {`)
	c := strings.Index(detailed, `"code_quality": {`)
	require.True(t, s >= 0 && p >= 0 && c >= 0, detailed)
	assert.True(t, s < p && p < c, detailed)
}

func TestJSONReporterGenerate_Compact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONReporter(&buf, false).Generate(sampleReport()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
	assert.True(t, json.Valid([]byte(lines[0])))
}

func TestJSONRoundTrip(t *testing.T) {
	original := sampleReport()

	var buf bytes.Buffer
	require.NoError(t, NewJSONReporter(&buf, true).Generate(original))

	loaded, err := LoadReport(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(original.ExecutiveSummary.BySeverity, loaded.ExecutiveSummary.BySeverity); diff != "" {
		t.Errorf("by_severity mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(original.ExecutiveSummary.TopIssues, loaded.ExecutiveSummary.TopIssues); diff != "" {
		t.Errorf("top_issues mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, original.Metadata.RunID, loaded.Metadata.RunID)
	assert.False(t, loaded.Metadata.OverallSuccess)

	var names []models.AnalyzerName
	for _, e := range loaded.DetailedResults.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []models.AnalyzerName{
		models.AnalyzerSecurity, models.AnalyzerPerformance, models.AnalyzerCodeQuality,
	}, names)
}

func TestLoadReport_Invalid(t *testing.T) {
	_, err := LoadReport(strings.NewReader("{not json"))
	assert.ErrorContains(t, err, "parse report")
}
