package aggregator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/auditrunner/internal/models"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name       string
		byCategory map[string]models.CategorySummary
		want       []string
	}{
		{
			name:       "empty",
			byCategory: map[string]models.CategorySummary{},
			want:       []string{defaultHealthyRecommendation},
		},
		{
			name: "security critical only",
			byCategory: map[string]models.CategorySummary{
				"security":     {Summary: map[string]int{"critical": 2}},
				"performance":  {Summary: map[string]int{}},
				"code_quality": {Summary: map[string]int{}},
				"architecture": {Summary: map[string]int{}},
			},
			want: []string{"URGENT: Address 2 critical security issues immediately"},
		},
		{
			name: "performance at threshold does not fire",
			byCategory: map[string]models.CategorySummary{
				"performance": {Summary: map[string]int{"high": 5}},
			},
			want: []string{defaultHealthyRecommendation},
		},
		{
			name: "code quality uses finding total",
			byCategory: map[string]models.CategorySummary{
				"code_quality": {Total: 1001, Summary: map[string]int{"low": 3}},
			},
			want: []string{"MEDIUM: Address code quality issues to improve maintainability (1001 findings)"},
		},
		{
			name: "all rules fire in order",
			byCategory: map[string]models.CategorySummary{
				"architecture": {Summary: map[string]int{"high": 1}},
				"code_quality": {Total: 2000},
				"performance":  {Summary: map[string]int{"high": 6}},
				"security":     {Summary: map[string]int{"critical": 1}},
			},
			want: []string{
				"URGENT: Address 1 critical security issues immediately",
				"HIGH: Optimize 6 performance bottlenecks affecting user experience",
				"MEDIUM: Address code quality issues to improve maintainability (2000 findings)",
				"MEDIUM: Resolve 1 high-coupling architectural issues",
			},
		},
	}

	g := NewRecommendationGenerator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Generate(tt.byCategory))
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	byCategory := map[string]models.CategorySummary{
		"security":     {Summary: map[string]int{"critical": 3}},
		"architecture": {Summary: map[string]int{"high": 2}},
	}

	g := NewRecommendationGenerator()
	first := g.Generate(byCategory)
	for i := 0; i < 50; i++ {
		require.Equal(t, first, g.Generate(byCategory))
	}
}

func TestGenerate_SecurityScenario(t *testing.T) {
	var rs models.ResultSet
	rs.Set(models.AnalyzerSecurity, success(map[string]any{"critical": float64(2)}))
	rs.Set(models.AnalyzerPerformance, success(map[string]any{}))
	rs.Set(models.AnalyzerCodeQuality, success(map[string]any{}))
	rs.Set(models.AnalyzerArchitecture, success(map[string]any{}))

	recs := NewBuilder().Summarize(rs).Recommendations
	require.Len(t, recs, 1)
	assert.True(t, strings.HasPrefix(recs[0], "URGENT"))
	assert.Contains(t, recs[0], "2")
	assert.NotContains(t, recs, defaultHealthyRecommendation)
}
