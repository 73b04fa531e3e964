// Package secscan is the security-scan collaborator: regex rules for
// hardcoded secrets and common vulnerability patterns, plus the
// critical-path classifier feeding the per-file risk engine.
package secscan

import (
	"regexp"
	"strings"

	"github.com/relgate/relgate/schema"
)

// secretRule flags a hardcoded credential literal.
type secretRule struct {
	pattern     *regexp.Regexp
	description string
}

// vulnRule flags a risky code pattern with a fixed severity.
type vulnRule struct {
	pattern        *regexp.Regexp
	severity       schema.Severity
	description    string
	recommendation string
}

var secretRules = []secretRule{
	{regexp.MustCompile(`(?i)(api_?key|secret_?key|access_?key)\s*[:=]\s*["'][A-Za-z0-9_\-]{8,}["']`), "Hardcoded API key"},
	{regexp.MustCompile(`(?i)password\s*[:=]\s*["'][^"']{4,}["']`), "Hardcoded password"},
	{regexp.MustCompile(`(?i)(auth_?token|bearer)\s*[:=]\s*["'][A-Za-z0-9_\-.]{8,}["']`), "Hardcoded auth token"},
	{regexp.MustCompile(`AKIA[0-9A-Z]{16}`), "AWS access key ID"},
	{regexp.MustCompile(`-----BEGIN (RSA |EC |OPENSSH )?PRIVATE KEY-----`), "Private key material"},
}

var vulnRules = []vulnRule{
	{
		regexp.MustCompile(`\beval\s*\(`),
		schema.SeverityCritical,
		"Dynamic code evaluation (eval)",
		"Remove eval or replace with a safe parser",
	},
	{
		regexp.MustCompile(`\bexec\s*\(`),
		schema.SeverityHigh,
		"Dynamic code execution (exec)",
		"Avoid exec; use explicit dispatch instead",
	},
	{
		regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)\s+.*["']\s*\+`),
		schema.SeverityHigh,
		"SQL built by string concatenation",
		"Use parameterized queries",
	},
	{
		regexp.MustCompile(`(?i)\b(md5|sha1)\s*\(`),
		schema.SeverityMedium,
		"Weak hash algorithm",
		"Use SHA-256 or stronger",
	},
	{
		regexp.MustCompile(`\bpickle\.loads?\s*\(`),
		schema.SeverityHigh,
		"Unsafe deserialization (pickle)",
		"Deserialize only trusted data; prefer JSON",
	},
	{
		regexp.MustCompile(`shell\s*=\s*True`),
		schema.SeverityHigh,
		"Subprocess invoked through a shell",
		"Pass an argument vector without shell=True",
	},
	{
		regexp.MustCompile(`http://[^\s"']+`),
		schema.SeverityLow,
		"Unencrypted HTTP URL",
		"Use HTTPS",
	},
}

// severityByRule maps secret findings onto the issue severity scale.
const secretSeverity = schema.SeverityCritical

// Scanner runs the rule sets over file batches. It is stateless and safe
// for concurrent use.
type Scanner struct{}

// NewScanner creates a scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// ScanBatch scans every file and returns the repository-level report plus
// per-file issue lists keyed by path. An empty report means no findings.
func (s *Scanner) ScanBatch(files []schema.FileRecord) (schema.SecurityReport, map[string][]schema.Issue) {
	var report schema.SecurityReport
	issuesByFile := make(map[string][]schema.Issue)

	for _, file := range files {
		for lineNo, line := range strings.Split(file.Content, "\n") {
			for _, rule := range secretRules {
				if !rule.pattern.MatchString(line) {
					continue
				}
				report.Secrets = append(report.Secrets, schema.SecretFinding{
					File:        file.Path,
					Line:        lineNo + 1,
					Description: rule.description,
				})
				issuesByFile[file.Path] = append(issuesByFile[file.Path], schema.Issue{
					Line:        lineNo + 1,
					Description: rule.description,
					Severity:    secretSeverity,
				})
			}
			for _, rule := range vulnRules {
				if !rule.pattern.MatchString(line) {
					continue
				}
				report.Vulnerabilities = append(report.Vulnerabilities, schema.Vulnerability{
					Severity:       rule.severity,
					File:           file.Path,
					Line:           lineNo + 1,
					Description:    rule.description,
					Recommendation: rule.recommendation,
				})
				issuesByFile[file.Path] = append(issuesByFile[file.Path], schema.Issue{
					Line:        lineNo + 1,
					Description: rule.description,
					Severity:    rule.severity,
				})
			}
		}
	}
	return report, issuesByFile
}
