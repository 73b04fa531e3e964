package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/relgate/relgate/internal/contract"
	"github.com/relgate/relgate/internal/parquet"
	"github.com/relgate/relgate/schema"
)

// ExportHistory writes the stored runs and their per-file gate verdicts to
// Parquet files derived from outputFile.
func ExportHistory(ctx context.Context, store contract.HistoryStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	status, err := store.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.RunCount == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.RunCount)
	fmt.Printf("Total file records: %d\n", status.FileCount)

	runs, err := store.ListRuns(ctx, contract.MaxResultLimit)
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	var gates []schema.FileGateRecord
	for _, run := range runs {
		runGates, err := store.ListFileGates(ctx, run.ID)
		if err != nil {
			return fmt.Errorf("failed to retrieve file gates for run %d: %w", run.ID, err)
		}
		gates = append(gates, runGates...)
	}

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquet.ConvertRunRecords(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(runs), runsFile)

	gatesFile := outputFile + ".file_gates.parquet"
	if err := parquet.WriteFileGatesParquet(parquet.ConvertFileGateRecords(gates), gatesFile); err != nil {
		return fmt.Errorf("failed to write file gates: %w", err)
	}
	fmt.Printf("Exported %d file gate records to: %s\n", len(gates), gatesFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
