package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGateForScore verifies the exhaustive, non-overlapping 30/60 partition.
func TestGateForScore(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected GateDecision
	}{
		{"zero", 0, GatePass},
		{"just below warn", 29.99, GatePass},
		{"warn boundary", 30, GateWarn},
		{"mid warn", 45, GateWarn},
		{"just below block", 59.99, GateWarn},
		{"block boundary", 60, GateBlock},
		{"max", 100, GateBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GateForScore(tt.score))
		})
	}
}

// TestGateForScorePartition sweeps the full range to confirm every score maps
// to exactly one decision.
func TestGateForScorePartition(t *testing.T) {
	for score := 0.0; score <= 100.0; score += 0.5 {
		decision := GateForScore(score)
		switch {
		case score < GateWarnThreshold:
			assert.Equal(t, GatePass, decision, "score %.1f", score)
		case score < GateBlockThreshold:
			assert.Equal(t, GateWarn, decision, "score %.1f", score)
		default:
			assert.Equal(t, GateBlock, decision, "score %.1f", score)
		}
	}
}

// TestRiskLevelForScore covers the repository-level 4.0/7.0 thresholds.
func TestRiskLevelForScore(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected RiskLevel
	}{
		{"zero", 0, RiskLevelLow},
		{"below medium", 3.9, RiskLevelLow},
		{"medium boundary", 4.0, RiskLevelMedium},
		{"example three", 5.5, RiskLevelMedium},
		{"high boundary", 7.0, RiskLevelHigh},
		{"capped max", 10.0, RiskLevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RiskLevelForScore(tt.score))
		})
	}
}

// TestMaintainability checks the derived display metric saturates at 0.
func TestMaintainability(t *testing.T) {
	assert.InDelta(t, 100.0, Maintainability(0), 0.001)
	assert.InDelta(t, 90.0, Maintainability(2), 0.001)
	assert.InDelta(t, 0.0, Maintainability(20), 0.001)
	assert.InDelta(t, 0.0, Maintainability(50), 0.001)
}

// TestGateCounts tallies decisions across a mixed batch.
func TestGateCounts(t *testing.T) {
	details := []FileDetail{
		{Gate: GatePass},
		{Gate: GateBlock},
		{Gate: GateWarn},
		{Gate: GatePass},
	}
	passed, warned, blocked := GateCounts(details)
	assert.Equal(t, 2, passed)
	assert.Equal(t, 1, warned)
	assert.Equal(t, 1, blocked)
}

// TestBreakdownTotal confirms the sum is capped at 100.
func TestBreakdownTotal(t *testing.T) {
	b := RiskBreakdown{Complexity: 50, ChangeVolume: 20, CriticalFunction: 15, IssueSeverity: 30}
	assert.InDelta(t, 100.0, b.Total(), 0.001)

	b = RiskBreakdown{Complexity: 10}
	assert.InDelta(t, 10.0, b.Total(), 0.001)
}
