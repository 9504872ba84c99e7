package aggregator

import (
	"fmt"

	"github.com/ppiankov/auditrunner/internal/models"
)

// Rule thresholds
const (
	securityCriticalThreshold    = 0
	performanceHighThreshold     = 5
	codeQualityTotalThreshold    = 1000
	architectureHighThreshold    = 0
	defaultHealthyRecommendation = "Overall code health appears good - continue with regular monitoring"
)

// RecommendationGenerator turns category rollups into canned advice
type RecommendationGenerator struct{}

// NewRecommendationGenerator creates a new recommendation generator
func NewRecommendationGenerator() *RecommendationGenerator {
	return &RecommendationGenerator{}
}

// Generate evaluates every rule in a fixed order; all matching rules fire.
// When none match, a single generic recommendation is returned. Missing
// categories and keys count as zero.
//
// A run where every analyzer failed has no categories and therefore gets the
// generic recommendation too.
func (r *RecommendationGenerator) Generate(byCategory map[string]models.CategorySummary) []string {
	var recs []string

	if n := severityCount(byCategory, models.AnalyzerSecurity, models.SeverityCritical); n > securityCriticalThreshold {
		recs = append(recs, fmt.Sprintf("URGENT: Address %d critical security issues immediately", n))
	}

	if n := severityCount(byCategory, models.AnalyzerPerformance, models.SeverityHigh); n > performanceHighThreshold {
		recs = append(recs, fmt.Sprintf("HIGH: Optimize %d performance bottlenecks affecting user experience", n))
	}

	if n := byCategory[string(models.AnalyzerCodeQuality)].Total; n > codeQualityTotalThreshold {
		recs = append(recs, fmt.Sprintf("MEDIUM: Address code quality issues to improve maintainability (%d findings)", n))
	}

	if n := severityCount(byCategory, models.AnalyzerArchitecture, models.SeverityHigh); n > architectureHighThreshold {
		recs = append(recs, fmt.Sprintf("MEDIUM: Resolve %d high-coupling architectural issues", n))
	}

	if len(recs) == 0 {
		recs = append(recs, defaultHealthyRecommendation)
	}
	return recs
}

func severityCount(byCategory map[string]models.CategorySummary, name models.AnalyzerName, severity string) int {
	return byCategory[string(name)].Summary[severity]
}
