package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/relgate/relgate/internal/contract"
	"github.com/relgate/relgate/internal/parquet"
	"github.com/relgate/relgate/schema"
)

// WriteAnalysisResult outputs a full analysis result, dispatching based on the
// output format configured.
func WriteAnalysisResult(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisCSV(w, result)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeAnalysisParquet(result, cfg)
	default:
		// Default to human-readable tables
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisTable(result, cfg, duration, w)
		}, "Wrote table")
	}
}

// writeAnalysisTable generates and writes the human-readable report.
func writeAnalysisTable(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Release risk analysis for %s\n\n", result.RepoPath); err != nil {
		return err
	}
	if result.Incomplete {
		if _, err := fmt.Fprintln(w, contract.WarnColor.Sprint("Partial result: the run was cancelled before all files were analyzed")); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Files analyzed: %d (%s)\n", result.TotalFiles, formatLanguages(result.Languages)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Components: %d, dependencies: %d\n",
		result.CodeAnalysis.TotalComponents, len(result.CodeAnalysis.Dependencies)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Complexity: avg %.2f, max %.2f over %d samples\n",
		result.CodeAnalysis.Complexity.Average, result.CodeAnalysis.Complexity.Max, result.CodeAnalysis.Complexity.Samples); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Security: %d vulnerabilities, %d secrets\n",
		len(result.Security.Vulnerabilities), len(result.Security.Secrets)); err != nil {
		return err
	}
	changesLine := fmt.Sprintf("Changes: %d across %d recent commits", result.Changes.Total, result.Changes.Commits)
	if result.Changes.Note != "" {
		changesLine = fmt.Sprintf("Changes: %d (%s)", result.Changes.Total, result.Changes.Note)
	}
	if _, err := fmt.Fprintln(w, changesLine); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Repository risk: %.1f/10 (%s)\n\n", result.RiskScore, riskLevelLabel(result.RiskLevel)); err != nil {
		return err
	}

	if len(result.Risks) > 0 {
		if err := writeFindingsTable(result.Risks, w); err != nil {
			return err
		}
	}

	if len(result.FileDetails) > 0 {
		if err := writeFileDetailsTable(result.FileDetails, cfg, w); err != nil {
			return err
		}
	}

	passed, warned, blocked := result.FilesPassed, result.FilesWarned, result.FilesBlocked
	if _, err := fmt.Fprintf(w, "Gate summary: %s passed, %s warned, %s blocked\n",
		contract.PassColor.Sprint(strconv.Itoa(passed)),
		contract.WarnColor.Sprint(strconv.Itoa(warned)),
		contract.BlockColor.Sprint(strconv.Itoa(blocked))); err != nil {
		return err
	}

	if result.AI != nil && result.AI.Status == schema.AIStatusOK {
		if err := writeInsights(result.AI, w); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Analysis completed in %v with %d workers. History backend: %s\n",
		duration, cfg.Workers, cfg.HistoryBackend); err != nil {
		return err
	}
	return nil
}

// writeFindingsTable renders the prioritized repository-level findings.
func writeFindingsTable(findings []schema.RiskFinding, w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Priority", "Finding", "Description", "Mitigation"})

	var data [][]string
	for _, f := range findings {
		data = append(data, []string{
			contract.PriorityColorLabel(f.Priority),
			f.Title,
			f.Description,
			f.Mitigation,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// writeFileDetailsTable renders per-file verdicts, highest risk first.
func writeFileDetailsTable(details []schema.FileDetail, cfg *contract.Config, w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Path", "Language", "Complexity", "Score", "Gate"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	maxPath := getMaxTablePathWidth(cfg)

	var data [][]string
	for i, d := range details {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncatePath(d.Path, maxPath),
			d.Language,
			fmtScore(d.Complexity),
			fmtScore(d.RiskScore),
			contract.GateColorLabel(d.Gate),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// writeInsights renders the optional AI commentary sections.
func writeInsights(insights *schema.AIInsights, w io.Writer) error {
	sections := []struct {
		title string
		body  string
	}{
		{"Code quality", insights.CodeQuality},
		{"Security recommendations", insights.SecurityRecommendations},
		{"Release recommendations", insights.ReleaseRecommendations},
	}
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s:\n%s\n", s.title, s.body); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// writeAnalysisCSV writes the per-file verdicts in CSV format.
func writeAnalysisCSV(w io.Writer, result *schema.AnalysisResult) error {
	header := []string{
		"rank",
		"path",
		"language",
		"lines",
		"complexity",
		"maintainability",
		"risk_score",
		"gate",
		"issues",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, d := range result.FileDetails {
			rec := []string{
				strconv.Itoa(i + 1),
				d.Path,
				d.Language,
				strconv.Itoa(d.Lines),
				fmtScore(d.Complexity),
				fmtScore(d.Maintainability),
				fmtScore(d.RiskScore),
				string(d.Gate),
				strconv.Itoa(len(d.Issues)),
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeAnalysisParquet writes the per-file verdicts to a Parquet file.
// Parquet is a binary format, so an explicit output file is required.
func writeAnalysisParquet(result *schema.AnalysisResult, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	gates := make([]parquet.FileGate, len(result.FileDetails))
	for i, d := range result.FileDetails {
		gates[i] = parquet.FileGate{
			Path:      d.Path,
			Language:  d.Language,
			RiskScore: d.RiskScore,
			Gate:      string(d.Gate),
		}
	}

	if err := parquet.WriteFileGatesParquet(gates, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", cfg.OutputFile)
	return nil
}

// formatLanguages renders a language histogram as "Python: 12, Go: 3",
// most common first.
func formatLanguages(languages map[string]int) string {
	if len(languages) == 0 {
		return "no recognized languages"
	}

	type langCount struct {
		label string
		count int
	}
	counts := make([]langCount, 0, len(languages))
	for label, count := range languages {
		counts = append(counts, langCount{label, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].label < counts[j].label
	})

	out := ""
	for i, lc := range counts {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s: %d", lc.label, lc.count)
	}
	return out
}

// riskLevelLabel returns a colored repository risk level label.
func riskLevelLabel(level schema.RiskLevel) string {
	switch level {
	case schema.RiskLevelHigh:
		return contract.CriticalColor.Sprint(string(level))
	case schema.RiskLevelMedium:
		return contract.MediumColor.Sprint(string(level))
	default:
		return contract.LowColor.Sprint(string(level))
	}
}
