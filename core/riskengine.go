// Package core has the per-file risk engine, the repository risk assessor
// and the analysis pipeline that sequences them.
package core

import (
	"fmt"
	"math"

	"github.com/relgate/relgate/schema"
)

// Issue severity weights for the issue-severity contribution.
const (
	weightCritical = 10.0
	weightHigh     = 5.0
	weightMedium   = 2.0
	weightLow      = 1.0
)

// FileSignals carries the externally supplied risk inputs for one file.
// A zero value is legal: every contribution degrades to 0 when its
// collaborator did not report.
type FileSignals struct {
	ChangeVolume     float64        // Raw change-volume contribution from change detection
	CriticalFunction float64        // Raw critical-path contribution from the classifier
	Issues           []schema.Issue // Per-file findings from the security scan
}

// ComplexityContribution saturates at 50: min((complexity/10)*50, 50).
// Complexity 0 means "no sample" and contributes nothing.
func ComplexityContribution(complexity float64) float64 {
	return math.Min(complexity/10*50, schema.MaxComplexityContribution)
}

// IssueSeverityContribution sums severity weights over a file's issues,
// saturating at its cap. Monotonic: adding an issue never lowers it.
func IssueSeverityContribution(issues []schema.Issue) float64 {
	var total float64
	for _, issue := range issues {
		switch issue.Severity {
		case schema.SeverityCritical:
			total += weightCritical
		case schema.SeverityHigh:
			total += weightHigh
		case schema.SeverityMedium:
			total += weightMedium
		default:
			total += weightLow
		}
	}
	return math.Min(total, schema.MaxIssueSeverityContribution)
}

// ComputeBreakdown produces the four-part risk decomposition for one file.
// Each contribution is clamped to its own cap before summation so that no
// single signal can dominate past its budget.
func ComputeBreakdown(complexity float64, signals FileSignals) schema.RiskBreakdown {
	return schema.RiskBreakdown{
		Complexity:       ComplexityContribution(complexity),
		ChangeVolume:     clamp(signals.ChangeVolume, schema.MaxChangeVolumeContribution),
		CriticalFunction: clamp(signals.CriticalFunction, schema.MaxCriticalFunctionContribution),
		IssueSeverity:    IssueSeverityContribution(signals.Issues),
	}
}

// ComputeFileDetail runs the full per-file verdict: breakdown, score, gate,
// maintainability and recommendations.
func ComputeFileDetail(file schema.FileRecord, complexity float64, signals FileSignals) schema.FileDetail {
	breakdown := ComputeBreakdown(complexity, signals)
	score := breakdown.Total()

	detail := schema.FileDetail{
		Name:            file.Name,
		Path:            file.Path,
		Language:        file.Language,
		Lines:           file.Lines,
		Complexity:      complexity,
		Maintainability: schema.Maintainability(complexity),
		RiskScore:       score,
		Gate:            schema.GateForScore(score),
		Breakdown:       breakdown,
		Issues:          signals.Issues,
	}
	detail.Recommendations = recommendations(detail)
	return detail
}

// recommendations derives per-file advice from the computed verdict. Ordered
// from most to least urgent so truncated display keeps the important ones.
func recommendations(d schema.FileDetail) []string {
	var recs []string

	if d.Gate == schema.GateBlock {
		recs = append(recs, "Resolve blocking risks before release")
	}
	for _, issue := range d.Issues {
		if issue.Severity == schema.SeverityCritical {
			recs = append(recs, fmt.Sprintf("Fix critical issue at line %d: %s", issue.Line, issue.Description))
		}
	}
	if d.Complexity > 20 {
		recs = append(recs, fmt.Sprintf("Refactor: complexity %.0f is far above the maintainable range", d.Complexity))
	} else if d.Complexity > 10 {
		recs = append(recs, "Consider splitting complex control flow into smaller functions")
	}
	if d.Breakdown.CriticalFunction > 0 {
		recs = append(recs, "Request extra review: file touches a critical path")
	}
	if d.Breakdown.ChangeVolume >= schema.MaxChangeVolumeContribution {
		recs = append(recs, "High recent churn; verify test coverage for this file")
	}
	return recs
}

// clamp caps a non-negative contribution at max. Negative collaborator
// input is treated as absent.
func clamp(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	return math.Min(v, max)
}
