package secscan

import (
	"strings"

	"github.com/relgate/relgate/schema"
)

// criticalKeywords are path fragments marking release-sensitive code.
var criticalKeywords = []string{
	"auth", "login", "session",
	"payment", "billing", "checkout",
	"crypto", "security", "secret", "token", "password",
	"migration", "admin",
}

// Critical-path contribution tiers.
const (
	criticalSingle = 10.0
	criticalMulti  = schema.MaxCriticalFunctionContribution
)

// CriticalPathContribution classifies a file path against the critical
// keyword set and returns the critical-function risk contribution: 0 for
// ordinary files, 10 for one keyword hit, the full cap for two or more.
func CriticalPathContribution(path string) float64 {
	lower := strings.ToLower(path)

	hits := 0
	for _, kw := range criticalKeywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	switch {
	case hits == 0:
		return 0
	case hits == 1:
		return criticalSingle
	default:
		return criticalMulti
	}
}
