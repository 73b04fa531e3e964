package schema

// RiskBreakdown is the four-part additive decomposition of a file risk score.
// Each contribution is capped independently before summation.
type RiskBreakdown struct {
	Complexity       float64 `json:"complexity"`
	ChangeVolume     float64 `json:"change_volume"`
	CriticalFunction float64 `json:"critical_function"`
	IssueSeverity    float64 `json:"issue_severity"`
}

// Total returns the sum of all contributions, capped at MaxFileRiskScore.
func (b RiskBreakdown) Total() float64 {
	total := b.Complexity + b.ChangeVolume + b.CriticalFunction + b.IssueSeverity
	if total > MaxFileRiskScore {
		return MaxFileRiskScore
	}
	return total
}
