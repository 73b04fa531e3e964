// Package report renders markdown release documents and the release
// checklist from an analysis result.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/relgate/relgate/schema"
)

// Caps applied to keep the markdown documents readable.
const (
	maxReportVulns   = 10
	maxReportSecrets = 10
	maxChecklistRisk = 5
)

// reportTimeFormat is the timestamp format of the generated header.
const reportTimeFormat = "2006-01-02 15:04:05"

// ChecklistItem is one actionable entry of the release checklist.
type ChecklistItem struct {
	ID       string              `json:"id"`
	Item     string              `json:"item"`
	Priority schema.RiskPriority `json:"priority"`
}

// Generator renders release documents. The zero value uses the wall clock.
type Generator struct {
	// Now is the clock used for the generated-at header, injectable in tests.
	Now func() time.Time
}

// NewGenerator creates a report generator with the wall clock.
func NewGenerator() *Generator {
	return &Generator{Now: time.Now}
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// ReleaseNotes renders markdown release notes summarizing changes and risk.
func (g *Generator) ReleaseNotes(result *schema.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Release Notes\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", g.now().Format(reportTimeFormat))
	fmt.Fprintf(&b, "## Overview\n\n")
	fmt.Fprintf(&b, "- **Total Files Changed:** %d\n", result.Changes.Total)
	fmt.Fprintf(&b, "- **Risk Score:** %.1f/10\n", result.RiskScore)
	fmt.Fprintf(&b, "- **Risk Level:** %s\n\n", result.RiskLevel)
	fmt.Fprintf(&b, "## Changes Summary\n\n")

	// Fixed display order, skipping empty buckets
	for _, changeType := range []schema.ChangeType{schema.ChangeAdded, schema.ChangeModified, schema.ChangeDeleted} {
		if count := result.Changes.ByType[changeType]; count > 0 {
			fmt.Fprintf(&b, "- **%s:** %d files\n", titleCase(string(changeType)), count)
		}
	}
	if result.Changes.Note != "" {
		fmt.Fprintf(&b, "- %s\n", result.Changes.Note)
	}

	if result.AI != nil && result.AI.ReleaseRecommendations != "" {
		fmt.Fprintf(&b, "\n## AI Insights\n\n%s\n", result.AI.ReleaseRecommendations)
	}

	return b.String()
}

// SecurityReport renders a markdown report of vulnerabilities and secrets.
func (g *Generator) SecurityReport(result *schema.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Security Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", g.now().Format(reportTimeFormat))
	fmt.Fprintf(&b, "## Summary\n\n")

	vulns := result.Security.Vulnerabilities
	secrets := result.Security.Secrets

	fmt.Fprintf(&b, "- **Vulnerabilities:** %d\n", len(vulns))
	fmt.Fprintf(&b, "- **Potential Secrets:** %d\n\n", len(secrets))

	if len(vulns) > 0 {
		fmt.Fprintf(&b, "## Vulnerabilities\n\n")
		for _, vuln := range vulns[:min(len(vulns), maxReportVulns)] {
			fmt.Fprintf(&b, "### %s - %s\n\n", vuln.Severity, vuln.Description)
			fmt.Fprintf(&b, "- **File:** `%s`\n", vuln.File)
			fmt.Fprintf(&b, "- **Line:** %d\n", vuln.Line)
			if vuln.Recommendation != "" {
				fmt.Fprintf(&b, "- **Recommendation:** %s\n", vuln.Recommendation)
			}
			fmt.Fprintf(&b, "\n")
		}
	}

	if len(secrets) > 0 {
		fmt.Fprintf(&b, "## Potential Secrets\n\n")
		fmt.Fprintf(&b, "⚠️ The following files may contain hardcoded secrets:\n\n")
		for _, secret := range secrets[:min(len(secrets), maxReportSecrets)] {
			fmt.Fprintf(&b, "- `%s` (Line %d)\n", secret.File, secret.Line)
		}
	}

	if result.AI != nil && result.AI.SecurityRecommendations != "" {
		fmt.Fprintf(&b, "\n## AI Security Recommendations\n\n%s\n", result.AI.SecurityRecommendations)
	}

	return b.String()
}

// Checklist builds the release checklist: security items first, then the top
// repository risks, then the standard pre-release steps.
func (g *Generator) Checklist(result *schema.AnalysisResult) []ChecklistItem {
	var checklist []ChecklistItem

	if len(result.Security.Vulnerabilities) > 0 {
		checklist = append(checklist, ChecklistItem{
			ID:       "sec-1",
			Item:     "Review and fix all security vulnerabilities",
			Priority: schema.PriorityHigh,
		})
	}
	if len(result.Security.Secrets) > 0 {
		checklist = append(checklist, ChecklistItem{
			ID:       "sec-2",
			Item:     "Remove all hardcoded secrets from code",
			Priority: schema.PriorityCritical,
		})
	}

	risks := result.Risks
	for idx, risk := range risks[:min(len(risks), maxChecklistRisk)] {
		checklist = append(checklist, ChecklistItem{
			ID:       fmt.Sprintf("risk-%d", idx),
			Item:     risk.Title,
			Priority: risk.Priority,
		})
	}

	checklist = append(checklist,
		ChecklistItem{ID: "std-1", Item: "Run all unit tests", Priority: schema.PriorityHigh},
		ChecklistItem{ID: "std-2", Item: "Run integration tests", Priority: schema.PriorityHigh},
		ChecklistItem{ID: "std-3", Item: "Update documentation", Priority: schema.PriorityMedium},
		ChecklistItem{ID: "std-4", Item: "Review release notes", Priority: schema.PriorityMedium},
		ChecklistItem{ID: "std-5", Item: "Backup production data", Priority: schema.PriorityHigh},
	)

	return checklist
}

// ChecklistMarkdown renders the checklist as a markdown task list.
func (g *Generator) ChecklistMarkdown(result *schema.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Release Checklist\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", g.now().Format(reportTimeFormat))
	for _, item := range g.Checklist(result) {
		fmt.Fprintf(&b, "- [ ] **[%s]** %s\n", item.Priority, item.Item)
	}

	return b.String()
}

// titleCase capitalizes the first letter of a change-type label.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
