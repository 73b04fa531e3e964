package algo

import (
	"testing"

	"github.com/relgate/relgate/schema"
	"github.com/stretchr/testify/assert"
)

// TestRankFileDetails sorts by risk descending, keeps ties stable and
// honors the limit.
func TestRankFileDetails(t *testing.T) {
	details := []schema.FileDetail{
		{Path: "low.py", RiskScore: 5},
		{Path: "tie-a.py", RiskScore: 40},
		{Path: "high.py", RiskScore: 80},
		{Path: "tie-b.py", RiskScore: 40},
	}

	t.Run("full ranking", func(t *testing.T) {
		ranked := RankFileDetails(details, 0)
		paths := make([]string, 0, len(ranked))
		for _, d := range ranked {
			paths = append(paths, d.Path)
		}
		assert.Equal(t, []string{"high.py", "tie-a.py", "tie-b.py", "low.py"}, paths)
	})

	t.Run("limited", func(t *testing.T) {
		ranked := RankFileDetails(details, 2)
		assert.Len(t, ranked, 2)
		assert.Equal(t, "high.py", ranked[0].Path)
	})

	t.Run("input untouched", func(t *testing.T) {
		RankFileDetails(details, 1)
		assert.Equal(t, "low.py", details[0].Path)
	})
}

// TestRankFindings orders by priority without mutating the input.
func TestRankFindings(t *testing.T) {
	findings := []schema.RiskFinding{
		{Priority: schema.PriorityLow, Title: "l"},
		{Priority: schema.PriorityCritical, Title: "c"},
		{Priority: schema.PriorityHigh, Title: "h"},
	}

	ranked := RankFindings(findings)
	assert.Equal(t, "c", ranked[0].Title)
	assert.Equal(t, "h", ranked[1].Title)
	assert.Equal(t, "l", ranked[2].Title)
	assert.Equal(t, "l", findings[0].Title)
}
