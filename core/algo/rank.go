// Package algo has ranking helpers shared by output and reporting.
package algo

import (
	"sort"

	"github.com/relgate/relgate/schema"
)

// RankFileDetails sorts file details by risk score in descending order and
// returns the top 'limit' entries. The sort is stable so files with equal
// scores keep their batch order. A limit below 1 returns everything.
func RankFileDetails(details []schema.FileDetail, limit int) []schema.FileDetail {
	ranked := make([]schema.FileDetail, len(details))
	copy(ranked, details)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RiskScore > ranked[j].RiskScore
	})
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}

// RankFindings returns findings in display order without mutating the input.
func RankFindings(findings []schema.RiskFinding) []schema.RiskFinding {
	ranked := make([]schema.RiskFinding, len(findings))
	copy(ranked, findings)
	schema.SortFindings(ranked)
	return ranked
}
