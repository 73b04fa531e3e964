// Package parquet exports history records to Parquet files using
// github.com/parquet-go/parquet-go, so run history can be analyzed with
// Spark, DuckDB, pandas and friends.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/relgate/relgate/schema"
)

// Run is one analysis run row in the export. It mirrors the relgate_runs
// history table.
type Run struct {
	// ID is the unique identifier of the run
	ID int64 `parquet:"id,snappy"`

	// StartedAt is when the run began (TIMESTAMP with nanosecond precision)
	StartedAt time.Time `parquet:"started_at,snappy"`

	// RepoPath is the repository the run analyzed
	RepoPath string `parquet:"repo_path,snappy"`

	// TotalFiles is the number of files analyzed
	TotalFiles int32 `parquet:"total_files,snappy"`

	// FilesPassed, FilesWarned and FilesBlocked split TotalFiles by gate verdict
	FilesPassed  int32 `parquet:"files_passed,snappy"`
	FilesWarned  int32 `parquet:"files_warned,snappy"`
	FilesBlocked int32 `parquet:"files_blocked,snappy"`

	// RiskScore is the repository risk score on the 0-10 scale
	RiskScore float64 `parquet:"risk_score,snappy"`

	// RiskLevel labels the risk score (HIGH, MEDIUM, LOW)
	RiskLevel string `parquet:"risk_level,snappy"`

	// Incomplete marks runs cancelled before all files were analyzed
	Incomplete bool `parquet:"incomplete,snappy"`
}

// FileGate is one per-file gate verdict row in the export. It mirrors the
// relgate_file_gates history table.
type FileGate struct {
	// RunID references the parent run
	RunID int64 `parquet:"run_id,snappy"`

	// Path is the relative path of the file in the repository
	Path string `parquet:"path,snappy"`

	// Language is the detected language label
	Language string `parquet:"language,snappy"`

	// RiskScore is the per-file risk score on the 0-100 scale
	RiskScore float64 `parquet:"risk_score,snappy"`

	// Gate is the release verdict (PASS, WARN, BLOCK)
	Gate string `parquet:"gate,snappy"`
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the Run struct tags
	writer := parquet.NewGenericWriter[Run](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteFileGatesParquet writes a slice of FileGate structs to a Parquet file.
func WriteFileGatesParquet(data []FileGate, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the FileGate struct tags
	writer := parquet.NewGenericWriter[FileGate](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		result[i] = Run{
			ID:           record.ID,
			StartedAt:    record.StartedAt,
			RepoPath:     record.RepoPath,
			TotalFiles:   int32(record.TotalFiles),
			FilesPassed:  int32(record.FilesPassed),
			FilesWarned:  int32(record.FilesWarned),
			FilesBlocked: int32(record.FilesBlocked),
			RiskScore:    record.RiskScore,
			RiskLevel:    record.RiskLevel,
			Incomplete:   record.Incomplete,
		}
	}
	return result
}

// ConvertFileGateRecords converts schema.FileGateRecord to FileGate for Parquet export.
func ConvertFileGateRecords(records []schema.FileGateRecord) []FileGate {
	result := make([]FileGate, len(records))
	for i, record := range records {
		result[i] = FileGate{
			RunID:     record.RunID,
			Path:      record.Path,
			Language:  record.Language,
			RiskScore: record.RiskScore,
			Gate:      record.Gate,
		}
	}
	return result
}
