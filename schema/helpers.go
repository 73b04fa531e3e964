package schema

// GateForScore maps a 0-100 file risk score onto the release gate.
// The three intervals are exhaustive and non-overlapping: PASS below 30,
// WARN in [30, 60), BLOCK at 60 and above.
func GateForScore(score float64) GateDecision {
	switch {
	case score < GateWarnThreshold:
		return GatePass
	case score < GateBlockThreshold:
		return GateWarn
	default:
		return GateBlock
	}
}

// RiskLevelForScore maps a 0-10 repository risk score onto a level label.
// This scale is independent from the per-file gate thresholds.
func RiskLevelForScore(score float64) RiskLevel {
	switch {
	case score >= RiskLevelHighThreshold:
		return RiskLevelHigh
	case score >= RiskLevelMediumThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// Maintainability derives the display-only maintainability index from a
// complexity metric: max(100 - complexity*5, 0).
func Maintainability(complexity float64) float64 {
	m := 100 - complexity*5
	if m < 0 {
		return 0
	}
	return m
}

// GateCounts tallies the gate decisions across a set of file details.
func GateCounts(details []FileDetail) (passed, warned, blocked int) {
	for _, d := range details {
		switch d.Gate {
		case GatePass:
			passed++
		case GateWarn:
			warned++
		case GateBlock:
			blocked++
		}
	}
	return passed, warned, blocked
}
