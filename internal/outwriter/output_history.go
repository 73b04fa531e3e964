package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/relgate/relgate/internal/contract"
	"github.com/relgate/relgate/schema"
)

// historyTimeFormat is how run timestamps are displayed in tables and CSV.
const historyTimeFormat = "2006-01-02 15:04:05"

// WriteRunRecords outputs persisted runs, dispatching based on the output
// format configured.
func WriteRunRecords(records []schema.RunRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRunsCSV(w, records)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRunsTable(records, w)
		}, "Wrote table")
	}
}

func writeRunsTable(records []schema.RunRecord, w io.Writer) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded yet.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Started", "Repo", "Files", "Pass", "Warn", "Block", "Score", "Level"})

	var data [][]string
	for _, r := range records {
		level := r.RiskLevel
		if r.Incomplete {
			level += " (partial)"
		}
		data = append(data, []string{
			strconv.FormatInt(r.ID, 10),
			r.StartedAt.Local().Format(historyTimeFormat),
			contract.TruncatePath(r.RepoPath, 40),
			strconv.Itoa(r.TotalFiles),
			strconv.Itoa(r.FilesPassed),
			strconv.Itoa(r.FilesWarned),
			strconv.Itoa(r.FilesBlocked),
			fmtScore(r.RiskScore),
			level,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeRunsCSV(w io.Writer, records []schema.RunRecord) error {
	header := []string{
		"id",
		"started_at",
		"repo_path",
		"total_files",
		"files_passed",
		"files_warned",
		"files_blocked",
		"risk_score",
		"risk_level",
		"incomplete",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range records {
			rec := []string{
				strconv.FormatInt(r.ID, 10),
				r.StartedAt.UTC().Format(time.RFC3339),
				r.RepoPath,
				strconv.Itoa(r.TotalFiles),
				strconv.Itoa(r.FilesPassed),
				strconv.Itoa(r.FilesWarned),
				strconv.Itoa(r.FilesBlocked),
				fmtScore(r.RiskScore),
				r.RiskLevel,
				strconv.FormatBool(r.Incomplete),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteHistoryStatus prints backend status for the history status subcommand.
func WriteHistoryStatus(status schema.HistoryStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "Backend: %s\n", status.Backend); err != nil {
			return err
		}
		if status.Location != "" {
			if _, err := fmt.Fprintf(w, "Location: %s\n", status.Location); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Runs: %d\n", status.RunCount); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "File records: %d\n", status.FileCount); err != nil {
			return err
		}
		if status.SizeBytes > 0 {
			if _, err := fmt.Fprintf(w, "Size: %.1f KB\n", float64(status.SizeBytes)/1024.0); err != nil {
				return err
			}
		}
		return nil
	}, "Wrote status")
}
