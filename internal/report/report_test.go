package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgate/relgate/schema"
)

func fixedGenerator() *Generator {
	return &Generator{Now: func() time.Time {
		return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	}}
}

func reportResult() *schema.AnalysisResult {
	return &schema.AnalysisResult{
		RepoPath:  "/repo",
		RiskScore: 5.5,
		RiskLevel: schema.RiskLevelMedium,
		Changes: schema.ChangeSummary{
			Total: 6,
			ByType: map[schema.ChangeType]int{
				schema.ChangeAdded:    2,
				schema.ChangeModified: 4,
			},
		},
		Security: schema.SecurityReport{
			Vulnerabilities: []schema.Vulnerability{
				{Severity: schema.SeverityCritical, File: "src/eval.py", Line: 10,
					Description: "Use of eval()", Recommendation: "Replace eval with a safe parser"},
			},
			Secrets: []schema.SecretFinding{
				{File: "config.py", Line: 3, Description: "Hardcoded API key"},
			},
		},
		Risks: []schema.RiskFinding{
			{Priority: schema.PriorityCritical, Title: "Hardcoded Secrets"},
			{Priority: schema.PriorityHigh, Title: "Critical Security Vulnerabilities"},
		},
	}
}

func TestReleaseNotes(t *testing.T) {
	notes := fixedGenerator().ReleaseNotes(reportResult())

	assert.Contains(t, notes, "# Release Notes")
	assert.Contains(t, notes, "**Generated:** 2026-08-01 12:00:00")
	assert.Contains(t, notes, "- **Total Files Changed:** 6")
	assert.Contains(t, notes, "- **Risk Score:** 5.5/10")
	assert.Contains(t, notes, "- **Risk Level:** MEDIUM")
	assert.Contains(t, notes, "- **Added:** 2 files")
	assert.Contains(t, notes, "- **Modified:** 4 files")
	assert.NotContains(t, notes, "Deleted")
	assert.NotContains(t, notes, "AI Insights")

	// Added comes before Modified
	assert.Less(t, strings.Index(notes, "Added"), strings.Index(notes, "Modified"))
}

func TestReleaseNotesWithInsights(t *testing.T) {
	result := reportResult()
	result.AI = &schema.AIInsights{Status: schema.AIStatusOK, ReleaseRecommendations: "Hold the release."}

	notes := fixedGenerator().ReleaseNotes(result)
	assert.Contains(t, notes, "## AI Insights")
	assert.Contains(t, notes, "Hold the release.")
}

func TestReleaseNotesFallbackNote(t *testing.T) {
	result := reportResult()
	result.Changes = schema.ChangeSummary{Total: 3, Note: "Git not available - showing file count only"}

	notes := fixedGenerator().ReleaseNotes(result)
	assert.Contains(t, notes, "Git not available - showing file count only")
}

func TestSecurityReport(t *testing.T) {
	report := fixedGenerator().SecurityReport(reportResult())

	assert.Contains(t, report, "# Security Report")
	assert.Contains(t, report, "- **Vulnerabilities:** 1")
	assert.Contains(t, report, "- **Potential Secrets:** 1")
	assert.Contains(t, report, "### CRITICAL - Use of eval()")
	assert.Contains(t, report, "- **File:** `src/eval.py`")
	assert.Contains(t, report, "- **Line:** 10")
	assert.Contains(t, report, "- **Recommendation:** Replace eval with a safe parser")
	assert.Contains(t, report, "- `config.py` (Line 3)")
}

func TestSecurityReportCaps(t *testing.T) {
	result := reportResult()
	result.Security.Vulnerabilities = nil
	for i := range 15 {
		result.Security.Vulnerabilities = append(result.Security.Vulnerabilities, schema.Vulnerability{
			Severity: schema.SeverityHigh, File: "a.py", Line: i + 1, Description: "Shell injection",
		})
	}

	report := fixedGenerator().SecurityReport(result)
	assert.Contains(t, report, "- **Vulnerabilities:** 15")
	assert.Equal(t, maxReportVulns, strings.Count(report, "### HIGH - Shell injection"))
}

func TestChecklist(t *testing.T) {
	checklist := fixedGenerator().Checklist(reportResult())

	// 2 security items + 2 risks + 5 standard steps
	require.Len(t, checklist, 9)

	assert.Equal(t, "sec-1", checklist[0].ID)
	assert.Equal(t, schema.PriorityHigh, checklist[0].Priority)
	assert.Equal(t, "sec-2", checklist[1].ID)
	assert.Equal(t, schema.PriorityCritical, checklist[1].Priority)
	assert.Equal(t, "risk-0", checklist[2].ID)
	assert.Equal(t, "Hardcoded Secrets", checklist[2].Item)
	assert.Equal(t, "std-5", checklist[8].ID)
}

func TestChecklistCleanResult(t *testing.T) {
	checklist := fixedGenerator().Checklist(&schema.AnalysisResult{})

	// Only the standard steps remain
	require.Len(t, checklist, 5)
	assert.Equal(t, "std-1", checklist[0].ID)
}

func TestChecklistRiskCap(t *testing.T) {
	result := &schema.AnalysisResult{}
	for range 8 {
		result.Risks = append(result.Risks, schema.RiskFinding{Priority: schema.PriorityLow, Title: "x"})
	}

	checklist := fixedGenerator().Checklist(result)
	assert.Len(t, checklist, maxChecklistRisk+5)
}

func TestChecklistMarkdown(t *testing.T) {
	md := fixedGenerator().ChecklistMarkdown(reportResult())

	assert.Contains(t, md, "# Release Checklist")
	assert.Contains(t, md, "- [ ] **[CRITICAL]** Remove all hardcoded secrets from code")
	assert.Contains(t, md, "- [ ] **[HIGH]** Run all unit tests")
}
