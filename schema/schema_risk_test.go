package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSortFindings checks priority ordering and tie stability.
func TestSortFindings(t *testing.T) {
	findings := []RiskFinding{
		{Priority: PriorityMedium, Title: "m1"},
		{Priority: PriorityCritical, Title: "c1"},
		{Priority: PriorityLow, Title: "l1"},
		{Priority: PriorityHigh, Title: "h1"},
		{Priority: PriorityCritical, Title: "c2"},
		{Priority: PriorityMedium, Title: "m2"},
	}

	SortFindings(findings)

	titles := make([]string, len(findings))
	for i, f := range findings {
		titles[i] = f.Title
	}
	assert.Equal(t, []string{"c1", "c2", "h1", "m1", "m2", "l1"}, titles)
}

// TestPriorityRank verifies unknown priorities sort after known ones.
func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 0, PriorityRank(PriorityCritical))
	assert.Equal(t, 3, PriorityRank(PriorityLow))
	assert.Equal(t, 4, PriorityRank(RiskPriority("BOGUS")))
}

// TestCountBySeverity tallies vulnerabilities per severity.
func TestCountBySeverity(t *testing.T) {
	report := SecurityReport{
		Vulnerabilities: []Vulnerability{
			{Severity: SeverityCritical},
			{Severity: SeverityHigh},
			{Severity: SeverityCritical},
		},
	}
	assert.Equal(t, 2, report.CountBySeverity(SeverityCritical))
	assert.Equal(t, 1, report.CountBySeverity(SeverityHigh))
	assert.Equal(t, 0, report.CountBySeverity(SeverityLow))
}

// TestChangesForFile counts per-file change entries.
func TestChangesForFile(t *testing.T) {
	summary := ChangeSummary{
		Recent: []FileChange{
			{File: "a.go", Type: ChangeModified},
			{File: "b.go", Type: ChangeAdded},
			{File: "a.go", Type: ChangeDeleted},
		},
	}
	assert.Equal(t, 2, summary.ChangesForFile("a.go"))
	assert.Equal(t, 0, summary.ChangesForFile("c.go"))
}
