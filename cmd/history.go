package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/relgate/relgate/internal/contract"
	"github.com/relgate/relgate/internal/history"
	"github.com/relgate/relgate/internal/outwriter"
	"github.com/relgate/relgate/schema"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	connStr := viper.GetString("history-db-connect")
	if backend == "" {
		backend = schema.SQLiteBackend
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	cfg.OutputFile = viper.GetString("output-file")
	cfg.ResultLimit = viper.GetInt("limit")

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// openHistoryStore opens the configured history store.
func openHistoryStore() (*history.Store, error) {
	store, err := history.NewStore(cfg.HistoryBackend, cfg.HistoryDBConnect)
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}
	return store, nil
}

// historyCmd focused on run history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead
// of the full sharedSetup used by analysis commands. This avoids repository
// validation for simple database operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage recorded analysis runs",
	Long: `Manage the run history that relgate records on every analysis.

Each analyze or gate run stores its summary and per-file gate verdicts in the
configured backend, so risk trends can be tracked across releases.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  list    - Show recent runs
  status  - Show backend statistics and connection info
  clear   - Remove all recorded runs
  export  - Export history to Parquet files
  migrate - Run schema migrations

Examples:
  # Show the most recent runs
  relgate history list

  # Check where history is stored and how large it is
  relgate history status`,
}

// historyListCmd shows recent runs.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent analysis runs",
	Long: `List the most recent recorded runs, newest first.

Each row shows when the run started, the repository analyzed, the gate counts
and the repository risk score. Partial runs (cancelled before completion) are
marked accordingly.

Examples:
  # Show the last runs (default limit)
  relgate history list

  # Show more rows as JSON
  relgate history list --limit 100 --output json`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openHistoryStore()
		if err != nil {
			contract.LogFatal("Failed to open history", err)
		}
		defer func() { _ = store.Close() }()

		records, err := store.ListRuns(rootCtx, cfg.ResultLimit)
		if err != nil {
			contract.LogFatal("Failed to list runs", err)
		}
		if err := outwriter.WriteRunRecords(records, cfg); err != nil {
			contract.LogFatal("Failed to write runs", err)
		}
	},
}

// historyStatusCmd shows history backend status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display history statistics and connection details",
	Long: `Show detailed information about the run history backend.

Displays:
- Backend type and storage location
- Total number of recorded runs and file records
- Database size (SQLite)

Examples:
  # Check history status
  relgate history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openHistoryStore()
		if err != nil {
			contract.LogFatal("Failed to open history", err)
		}
		defer func() { _ = store.Close() }()

		status, err := store.GetStatus(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		if err := outwriter.WriteHistoryStatus(status, cfg); err != nil {
			contract.LogFatal("Failed to write history status", err)
		}
	},
}

// historyClearCmd removes all recorded runs.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded runs",
	Long: `Delete all recorded runs and per-file verdicts from the configured backend.

Use this when:
- The history contains runs from throwaway experiments
- You want a clean baseline before a new release cycle

Examples:
  # Clear SQLite history (default)
  relgate history clear

  # Clear MySQL history (set connection string via env variable)
  RELGATE_HISTORY_BACKEND=mysql RELGATE_HISTORY_DB_CONNECT="..." relgate history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openHistoryStore()
		if err != nil {
			contract.LogFatal("Failed to open history", err)
		}
		defer func() { _ = store.Close() }()

		if err := store.Clear(rootCtx); err != nil {
			contract.LogFatal("Failed to clear history", err)
		}
		fmt.Println("History cleared successfully.")
	},
}

// historyExportCmd exports history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet files",
	Long: `Export all recorded runs and per-file verdicts to Parquet files.

Two files are written, derived from --output-file:
  <output-file>.runs.parquet        one row per recorded run
  <output-file>.file_gates.parquet  one row per file verdict

Examples:
  # Export everything for analysis in DuckDB or Pandas
  relgate history export --output-file relgate-history`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store, err := openHistoryStore()
		if err != nil {
			contract.LogFatal("Failed to open history", err)
		}
		defer func() { _ = store.Close() }()

		if err := history.ExportHistory(rootCtx, store, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export history", err)
		}
	},
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT open the store or create tables,
// allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	connStr := viper.GetString("history-db-connect")
	if backend == "" {
		backend = schema.SQLiteBackend
	}

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateCmd runs schema migrations on the history database.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations on the history database",
	Long: `Apply or roll back schema migrations for the history backend.

The target version controls the direction:
  -1  migrate up to the latest version (default)
   0  roll back everything
   N  migrate to version N

Examples:
  # Migrate to the latest schema
  relgate history migrate

  # Roll back to the initial state
  relgate history migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return historyMigrateSetup()
	},
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := history.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
