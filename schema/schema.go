// Package schema has configs, models and constants for all parts of relgate.
package schema

// FileRecord is one ingested source file. It is immutable once built by the
// ingestion collaborator and consumed exactly once by the analysis pipeline.
type FileRecord struct {
	Path     string `json:"path"`     // Relative path to the file in the repository
	Name     string `json:"name"`     // Base name of the file
	Language string `json:"language"` // Declared language label (e.g. "Python", "Go")
	Content  string `json:"content"`  // Raw file content
	Lines    int    `json:"lines"`    // Line count, supplied by ingestion
}

// Component is one structural unit discovered by a language handler.
type Component struct {
	Name  string        `json:"name"`
	Kind  ComponentKind `json:"kind"`
	Lines int           `json:"lines"` // Line span, 0 when unknown
}

// ComplexitySummary summarizes cyclomatic complexity across a batch.
// Files that produced no complexity sample (parse failure, fallback analysis)
// are excluded from Average and Max rather than counted as zero.
type ComplexitySummary struct {
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
	Samples int     `json:"samples"`
}

// CodeAnalysis is the repository-level structural aggregate produced by the
// code analyzer. Components and Dependencies are capped for output; the true
// component count is kept separately.
type CodeAnalysis struct {
	Components      []Component       `json:"components"`
	TotalComponents int               `json:"total_components"`
	Dependencies    []string          `json:"dependencies"`
	Complexity      ComplexitySummary `json:"complexity"`
}

// Issue is a per-file finding that feeds the issue-severity risk contribution.
type Issue struct {
	Line        int      `json:"line"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// FileDetail is the per-file terminal output: structural facts plus the risk
// verdict for one file.
type FileDetail struct {
	Name            string        `json:"name"`
	Path            string        `json:"path"`
	Language        string        `json:"language"`
	Lines           int           `json:"lines"`
	Complexity      float64       `json:"complexity"`      // 0 means "no sample", not "trivially simple"
	Maintainability float64       `json:"maintainability"` // Display metric, not decision-bearing
	RiskScore       float64       `json:"risk_score"`
	Gate            GateDecision  `json:"gate_decision"`
	Breakdown       RiskBreakdown `json:"risk_breakdown"`
	Issues          []Issue       `json:"issues"`
	Recommendations []string      `json:"recommendations"`
}

// AnalysisResult is the terminal aggregate handed to reporting and AI
// collaborators. It is a plain value with no live handles so that it can be
// persisted or transmitted as-is.
type AnalysisResult struct {
	RepoPath     string         `json:"repo_path"`
	TotalFiles   int            `json:"total_files"`
	FilesPassed  int            `json:"files_passed"`
	FilesWarned  int            `json:"files_warned"`
	FilesBlocked int            `json:"files_blocked"`
	Languages    map[string]int `json:"languages,omitempty"`
	CodeAnalysis CodeAnalysis   `json:"code_analysis"`
	Security     SecurityReport `json:"security"`
	Changes      ChangeSummary  `json:"changes"`
	Risks        []RiskFinding  `json:"risks"`
	RiskScore    float64        `json:"risk_score"` // Repository scale, 0-10
	RiskLevel    RiskLevel      `json:"risk_level"`
	FileDetails  []FileDetail   `json:"file_details"`
	AI           *AIInsights    `json:"ai_insights,omitempty"`

	// Incomplete is set when the run was cancelled before all files were
	// analyzed. A partial result is never silently passed off as a full one.
	Incomplete bool `json:"incomplete,omitempty"`
}
