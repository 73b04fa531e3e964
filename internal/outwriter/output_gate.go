package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/relgate/relgate/internal/contract"
	"github.com/relgate/relgate/schema"
)

// WriteGateSummary prints the gate verdict in a CI-friendly form: only files
// at or above WARN are listed, followed by the overall counts. The caller
// decides the exit code.
func WriteGateSummary(result *schema.AnalysisResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeGateSummary(result, cfg, w)
	}, "Wrote gate summary")
}

func writeGateSummary(result *schema.AnalysisResult, cfg *contract.Config, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Gate check for %s\n\n", result.RepoPath); err != nil {
		return err
	}
	if result.Incomplete {
		if _, err := fmt.Fprintln(w, contract.WarnColor.Sprint("Partial result: the run was cancelled before all files were analyzed")); err != nil {
			return err
		}
	}

	flagged := flaggedFiles(result.FileDetails)
	if len(flagged) > 0 {
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Path", "Score", "Gate", "Top Recommendation"})

		maxPath := getMaxTablePathWidth(cfg)

		var data [][]string
		for _, d := range flagged {
			recommendation := ""
			if len(d.Recommendations) > 0 {
				recommendation = d.Recommendations[0]
			}
			data = append(data, []string{
				contract.TruncatePath(d.Path, maxPath),
				fmtScore(d.RiskScore),
				contract.GateColorLabel(d.Gate),
				recommendation,
			})
		}

		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Gate summary: %s passed, %s warned, %s blocked out of %d files\n",
		contract.PassColor.Sprint(strconv.Itoa(result.FilesPassed)),
		contract.WarnColor.Sprint(strconv.Itoa(result.FilesWarned)),
		contract.BlockColor.Sprint(strconv.Itoa(result.FilesBlocked)),
		result.TotalFiles)
	return err
}

// flaggedFiles filters file details down to WARN and BLOCK verdicts.
func flaggedFiles(details []schema.FileDetail) []schema.FileDetail {
	var flagged []schema.FileDetail
	for _, d := range details {
		if d.Gate != schema.GatePass {
			flagged = append(flagged, d)
		}
	}
	return flagged
}
