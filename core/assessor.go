package core

import (
	"fmt"
	"math"

	"github.com/relgate/relgate/schema"
)

// Repository-level score contributions. Each triggered check adds its
// contribution independently; the final score saturates at 10.
const (
	contribCriticalVuln  = 3.0
	contribHighVuln      = 2.0
	contribSecrets       = 2.5
	contribMaxComplexity = 1.5
	contribAvgComplexity = 1.0
	contribLargeChange   = 1.0

	maxComplexityLimit = 20.0
	avgComplexityLimit = 10.0
	largeChangeLimit   = 100
)

// AssessRisks evaluates repository-level signals and produces the prioritized
// finding list plus the 0-10 risk score. The checks are independent: a batch
// can trip any subset of them and every tripped check contributes.
func AssessRisks(security schema.SecurityReport, complexity schema.ComplexitySummary, changes schema.ChangeSummary) ([]schema.RiskFinding, float64) {
	var findings []schema.RiskFinding
	var score float64

	if n := security.CountBySeverity(schema.SeverityCritical); n > 0 {
		findings = append(findings, schema.RiskFinding{
			Priority:    schema.PriorityCritical,
			Title:       "Critical Security Vulnerabilities",
			Description: fmt.Sprintf("%d critical vulnerability(ies) detected", n),
			Mitigation:  "Fix before any release",
		})
		score += contribCriticalVuln
	}
	if n := security.CountBySeverity(schema.SeverityHigh); n > 0 {
		findings = append(findings, schema.RiskFinding{
			Priority:    schema.PriorityHigh,
			Title:       "High-Severity Vulnerabilities",
			Description: fmt.Sprintf("%d high-severity vulnerability(ies) detected", n),
			Mitigation:  "Review and patch before release",
		})
		score += contribHighVuln
	}
	if n := len(security.Secrets); n > 0 {
		findings = append(findings, schema.RiskFinding{
			Priority:    schema.PriorityCritical,
			Title:       "Hardcoded Secrets",
			Description: fmt.Sprintf("%d hardcoded credential(s) found in source", n),
			Mitigation:  "Rotate the credentials and move them to a secret store",
		})
		score += contribSecrets
	}

	if complexity.Max > maxComplexityLimit {
		findings = append(findings, schema.RiskFinding{
			Priority:    schema.PriorityHigh,
			Title:       "Very High Complexity",
			Description: fmt.Sprintf("Maximum file complexity is %.1f (limit %.0f)", complexity.Max, maxComplexityLimit),
			Mitigation:  "Refactor the most complex files before shipping further changes",
		})
		score += contribMaxComplexity
	}
	if complexity.Average > avgComplexityLimit {
		findings = append(findings, schema.RiskFinding{
			Priority:    schema.PriorityMedium,
			Title:       "Elevated Average Complexity",
			Description: fmt.Sprintf("Average file complexity is %.1f (limit %.0f)", complexity.Average, avgComplexityLimit),
			Mitigation:  "Schedule complexity reduction work",
		})
		score += contribAvgComplexity
	}

	if changes.Total > largeChangeLimit {
		findings = append(findings, schema.RiskFinding{
			Priority:    schema.PriorityMedium,
			Title:       "Large Number of Changes",
			Description: fmt.Sprintf("%d files changed in this release window", changes.Total),
			Mitigation:  "Consider splitting the release into smaller batches",
		})
		score += contribLargeChange
	}

	schema.SortFindings(findings)
	return findings, math.Min(score, schema.MaxRepoRiskScore)
}
