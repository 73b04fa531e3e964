package schema

import "sort"

// RiskFinding is a repository-level, prioritized, human-readable risk item.
// It is distinct from a per-file risk score.
type RiskFinding struct {
	Priority    RiskPriority `json:"priority"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Mitigation  string       `json:"mitigation"`
}

// AIInsights holds optional free-text commentary from the AI enrichment
// collaborator. It decorates a result and never affects scores or gates.
type AIInsights struct {
	Status                  string `json:"status"` // "ok", "disabled" or "unavailable"
	CodeQuality             string `json:"code_quality,omitempty"`
	SecurityRecommendations string `json:"security_recommendations,omitempty"`
	ReleaseRecommendations  string `json:"release_recommendations,omitempty"`
}

// AI insight status markers.
const (
	AIStatusOK          = "ok"
	AIStatusDisabled    = "disabled"
	AIStatusUnavailable = "unavailable"
)

// PriorityRank returns the display rank of a priority, CRITICAL first.
// Unknown priorities rank after LOW.
func PriorityRank(p RiskPriority) int {
	if rank, ok := priorityRank[p]; ok {
		return rank
	}
	return len(priorityRank)
}

// SortFindings orders findings by priority rank, CRITICAL before HIGH before
// MEDIUM before LOW. Ties keep their discovery order (stable sort).
func SortFindings(findings []RiskFinding) {
	sort.SliceStable(findings, func(i, j int) bool {
		return PriorityRank(findings[i].Priority) < PriorityRank(findings[j].Priority)
	})
}
