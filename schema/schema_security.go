package schema

// Vulnerability is one security finding reported by the scan collaborator.
type Vulnerability struct {
	Severity       Severity `json:"severity"`
	File           string   `json:"file"`
	Line           int      `json:"line"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation,omitempty"`
}

// SecretFinding marks a location where a hardcoded credential was detected.
type SecretFinding struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Description string `json:"description"`
}

// SecurityReport is the full output of the security-scan collaborator.
// A zero value is legal and means "no findings", not "scan failed".
type SecurityReport struct {
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`
	Secrets         []SecretFinding `json:"secrets_found"`
}

// CountBySeverity returns the number of vulnerabilities with the given severity.
func (r SecurityReport) CountBySeverity(sev Severity) int {
	count := 0
	for _, v := range r.Vulnerabilities {
		if v.Severity == sev {
			count++
		}
	}
	return count
}
