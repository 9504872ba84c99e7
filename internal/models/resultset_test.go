package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSet_SetReplaces(t *testing.T) {
	var rs ResultSet
	rs.Set(AnalyzerSecurity, NewErrorResult("first", ""))
	rs.Set(AnalyzerPerformance, NewErrorResult("second", ""))
	rs.Set(AnalyzerSecurity, NewErrorResult("third", ""))

	require.Equal(t, 2, rs.Len())
	got, ok := rs.Get(AnalyzerSecurity)
	require.True(t, ok)
	assert.Equal(t, "third", got.ErrorMessage())
	assert.Equal(t, AnalyzerSecurity, rs.Entries()[0].Name)

	_, ok = rs.Get(AnalyzerArchitecture)
	assert.False(t, ok)
}

func TestResultSet_MarshalKeepsOrder(t *testing.T) {
	var rs ResultSet
	rs.Set(AnalyzerSecurity, ResultFromPayload(map[string]any{"a": 1}))
	rs.Set(AnalyzerPerformance, ResultFromPayload(map[string]any{"b": 2}))
	rs.Set(AnalyzerCodeQuality, ResultFromPayload(map[string]any{"c": 3}))
	rs.Set(AnalyzerArchitecture, ResultFromPayload(map[string]any{"d": 4}))

	data, err := json.Marshal(rs)
	require.NoError(t, err)
	assert.Equal(t,
		`{"security":{"a":1},"performance":{"b":2},"code_quality":{"c":3},"architecture":{"d":4}}`,
		string(data))
}

func TestResultSet_EmptyAndNull(t *testing.T) {
	data, err := json.Marshal(ResultSet{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	var rs ResultSet
	require.NoError(t, json.Unmarshal([]byte(`null`), &rs))
	assert.Equal(t, 0, rs.Len())

	assert.Error(t, json.Unmarshal([]byte(`[1]`), &rs))
}

func TestResultSet_UnmarshalKeepsDocumentOrder(t *testing.T) {
	var rs ResultSet
	err := json.Unmarshal([]byte(`{"architecture":{},"security":{"error":"x","stderr":""}}`), &rs)
	require.NoError(t, err)

	entries := rs.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, AnalyzerArchitecture, entries[0].Name)
	assert.Equal(t, AnalyzerSecurity, entries[1].Name)
	assert.True(t, entries[1].Result.Failed())
}

func TestCombinedReport_RoundTrip(t *testing.T) {
	line := 42
	var rs ResultSet
	rs.Set(AnalyzerSecurity, NewSuccessResult(map[string]any{
		"summary":  map[string]any{"critical": 1},
		"findings": []any{map[string]any{"title": "t", "severity": "critical", "file_path": "a.go", "line_number": 42}},
	}, time.Second))
	rs.Set(AnalyzerPerformance, NewErrorResult("Script failed (code 1)", "oops"))

	report := CombinedReport{
		Metadata: Metadata{
			RunID:          "abc",
			TargetPath:     "/src",
			Timestamp:      "2026-10-15 12:00:00",
			TotalDuration:  1.5,
			ScriptsRun:     2,
			OverallSuccess: false,
			SummaryMode:    true,
		},
		ExecutiveSummary: ExecutiveSummary{
			TotalFindings: 1,
			BySeverity:    map[string]int{"critical": 1, "high": 0, "medium": 0, "low": 0, "info": 0},
			ByCategory: map[string]CategorySummary{
				"security": {Total: 1, Summary: map[string]int{"critical": 1}},
			},
			TopIssues: []TopIssue{
				{Category: "security", Title: "t", Severity: "critical", File: "a.go", Line: &line},
				{Category: "security", Title: "u", Severity: "high", File: "b.go"},
			},
			Recommendations: []string{"URGENT"},
		},
		DetailedResults: rs,
	}

	data, err := json.MarshalIndent(report, "", "  ")
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &keys))
	assert.Contains(t, keys, "combined_analysis")
	assert.NotContains(t, keys, "metadata")

	var decoded CombinedReport
	require.NoError(t, json.Unmarshal(data, &decoded))

	if diff := cmp.Diff(report.Metadata, decoded.Metadata); diff != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(report.ExecutiveSummary, decoded.ExecutiveSummary); diff != "" {
		t.Errorf("executive summary mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, 2, decoded.DetailedResults.Len())
	sec, _ := decoded.DetailedResults.Get(AnalyzerSecurity)
	assert.Equal(t, map[string]int{"critical": 1}, sec.Summary())
	d, _ := sec.Duration()
	assert.Equal(t, 1.0, d)
	perf, _ := decoded.DetailedResults.Get(AnalyzerPerformance)
	assert.Equal(t, "oops", perf.Stderr())
}
