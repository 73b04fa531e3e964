package schema

// Custom string types for type safety.
type (
	// GateDecision is the per-file release verdict.
	GateDecision string

	// RiskPriority orders repository-level risk findings.
	RiskPriority string

	// RiskLevel labels the repository-level risk score.
	RiskLevel string

	// Severity grades vulnerabilities and per-file issues.
	Severity string

	// ComponentKind classifies discovered structural units.
	ComponentKind string

	// ChangeType classifies detected file changes.
	ChangeType string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for history storage.
	DatabaseBackend string
)

// All gate decisions supported.
const (
	GatePass  GateDecision = "PASS"
	GateWarn  GateDecision = "WARN"
	GateBlock GateDecision = "BLOCK"
)

// Gate thresholds on the 0-100 per-file risk scale. PASS below warn,
// WARN below block, BLOCK at or above block.
const (
	GateWarnThreshold  = 30.0
	GateBlockThreshold = 60.0
)

// All risk finding priorities, in display order.
const (
	PriorityCritical RiskPriority = "CRITICAL"
	PriorityHigh     RiskPriority = "HIGH"
	PriorityMedium   RiskPriority = "MEDIUM"
	PriorityLow      RiskPriority = "LOW"
)

// All repository risk levels.
const (
	RiskLevelHigh   RiskLevel = "HIGH"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelLow    RiskLevel = "LOW"
)

// Repository risk level thresholds on the 0-10 scale. This scale is
// intentionally independent from the per-file 30/60 gate thresholds.
const (
	RiskLevelHighThreshold   = 7.0
	RiskLevelMediumThreshold = 4.0
)

// All severities supported.
const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// All component kinds supported.
const (
	KindFunction  ComponentKind = "function"
	KindMethod    ComponentKind = "method"
	KindClass     ComponentKind = "class"
	KindStruct    ComponentKind = "struct"
	KindComponent ComponentKind = "component"
)

// All change types supported.
const (
	ChangeAdded    ChangeType = "added"
	ChangeModified ChangeType = "modified"
	ChangeDeleted  ChangeType = "deleted"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Aggregation caps applied by the code analyzer. True totals are reported
// separately from the capped lists.
const (
	MaxComponentList      = 100
	MaxDependencyList     = 50
	MaxFallbackComponents = 10
)

// Per-contribution caps of the file risk breakdown and the overall score caps.
const (
	MaxComplexityContribution       = 50.0
	MaxChangeVolumeContribution     = 20.0
	MaxCriticalFunctionContribution = 15.0
	MaxIssueSeverityContribution    = 30.0
	MaxFileRiskScore                = 100.0
	MaxRepoRiskScore                = 10.0
)

// priorityRank orders findings for display: CRITICAL first, LOW last.
// Unknown priorities sort after everything else.
var priorityRank = map[RiskPriority]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	JSONOut:    {},
	CSVOut:     {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
