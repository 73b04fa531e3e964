package schema

import "time"

// RunRecord is one persisted analysis run, as stored by a history backend.
type RunRecord struct {
	ID           int64     `json:"id" parquet:"id"`
	StartedAt    time.Time `json:"started_at" parquet:"started_at"`
	RepoPath     string    `json:"repo_path" parquet:"repo_path"`
	TotalFiles   int       `json:"total_files" parquet:"total_files"`
	FilesPassed  int       `json:"files_passed" parquet:"files_passed"`
	FilesWarned  int       `json:"files_warned" parquet:"files_warned"`
	FilesBlocked int       `json:"files_blocked" parquet:"files_blocked"`
	RiskScore    float64   `json:"risk_score" parquet:"risk_score"`
	RiskLevel    string    `json:"risk_level" parquet:"risk_level"`
	Incomplete   bool      `json:"incomplete" parquet:"incomplete"`
}

// FileGateRecord is one persisted per-file gate verdict tied to a run.
type FileGateRecord struct {
	RunID     int64   `json:"run_id" parquet:"run_id"`
	Path      string  `json:"path" parquet:"path"`
	Language  string  `json:"language" parquet:"language"`
	RiskScore float64 `json:"risk_score" parquet:"risk_score"`
	Gate      string  `json:"gate" parquet:"gate"`
}

// HistoryStatus describes a history backend for the status subcommand.
type HistoryStatus struct {
	Backend   DatabaseBackend `json:"backend"`
	Location  string          `json:"location"`
	RunCount  int             `json:"run_count"`
	FileCount int             `json:"file_count"`
	SizeBytes int64           `json:"size_bytes,omitempty"` // SQLite only
}
