package cmd

import (
	"fmt"

	"github.com/agoramind/govscope/internal/contract"
	"github.com/agoramind/govscope/internal/snapstore"
	"github.com/agoramind/govscope/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// storeSetup loads minimal configuration needed for snapshot store operations.
// This is used by commands that need store access without full shared setup.
func storeSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.DatabaseBackend(viper.GetString("snapshot-backend"))
	connStr := viper.GetString("snapshot-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the store with the loaded config
	if err := snapstore.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize snapshot store: %w", err)
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// storeSetupWrapper wraps storeSetup to provide PreRunE for store commands.
func storeSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeSetup()
}

// storeMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func storeMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get store-related config values
	backend := schema.DatabaseBackend(viper.GetString("snapshot-backend"))
	connStr := viper.GetString("snapshot-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetSnapshotDBFilePath()
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr

	return nil
}

// storeMigrateSetupWrapper wraps storeMigrateSetup to provide PreRunE for the migrate command.
func storeMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return storeMigrateSetup()
}

// storeCmd focused on snapshot store management.
//
// Note: Store subcommands use minimal initialization (storeSetup) instead of
// the full sharedSetup used by analysis commands. This avoids activity export
// parsing and threshold processing for simple store operations.
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the governance snapshot store",
	Long: `Manage the snapshot store that backs trend tracking.

Govscope persists one row per saved snapshot: composite score, sub-metric
scores, proposal counts, active agents and velocity. The trends and assess
commands read this history back to compute deltas and alerts.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show snapshot statistics and connection info
  clear   - Remove all stored snapshots
  export  - Export snapshots to Parquet for analytics
  migrate - Run database schema migrations

Examples:
  # Check store status
  govscope store status

  # Export for analysis in pandas/DuckDB
  govscope store export --output-file snapshots.parquet`,
}

// storeStatusCmd shows snapshot store status.
var storeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot statistics and connection details",
	Long: `Show detailed information about the snapshot store.

Displays:
- Backend type and connection status
- Total number of stored snapshots
- Last and oldest snapshot timestamps

Use this to:
- Verify snapshot persistence is enabled and working
- Monitor history accumulation over time
- Check database connection health

Examples:
  # Check store status
  govscope store status`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := snapstore.Manager.GetSnapshotStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get store status", err)
		}
		snapstore.PrintStoreStatus(status)
	},
}

// storeClearCmd clears the snapshot store.
var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored governance snapshots",
	Long: `Delete all stored snapshots from the configured backend.

WARNING: This action cannot be undone. Consider exporting data first.

Use this when:
- Resetting trend tracking after a governance restructure
- The history was polluted by test runs
- Starting fresh snapshot history

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the snapshot table

Examples:
  # Export before clearing
  govscope store export --output-file backup.parquet
  govscope store clear

  # Clear a MySQL store (set connection string via env variable)
  GOVSCOPE_SNAPSHOT_BACKEND=mysql GOVSCOPE_SNAPSHOT_DB_CONNECT="..." govscope store clear`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := snapstore.ClearStore(cfg.SnapshotBackend, contract.GetSnapshotDBFilePath(), cfg.SnapshotDBConnect); err != nil {
			contract.LogFatal("Failed to clear snapshot store", err)
		}
		fmt.Println("Snapshot store cleared successfully.")
	},
}

// storeExportCmd exports snapshots to a Parquet file.
var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored snapshots to Parquet for BI tools and analytics",
	Long: `Export all stored snapshots to Parquet format for use with analytics tools.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Use cases:
- Long-horizon trend analysis beyond the built-in windows
- Custom dashboards and visualizations
- Correlating governance health with delivery metrics

Examples:
  # Export all snapshots
  govscope store export --output-file snapshots.parquet

  # Use with DuckDB for analysis
  govscope store export --output-file snapshots.parquet
  duckdb -c "SELECT * FROM read_parquet('snapshots.parquet') LIMIT 10"`,
	PreRunE: storeSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := snapstore.ExecuteSnapshotExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export snapshots", err)
		}
	},
}

// storeMigrateCmd runs database migrations for the snapshot store.
var storeMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the snapshot store.

Migrations allow:
- Upgrading to new schema versions when govscope is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  govscope store migrate

  # Migrate to specific version
  govscope store migrate --target-version 1

  # Rollback to initial state
  govscope store migrate --target-version 0`,
	PreRunE: storeMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := snapstore.MigrateSnapshots(cfg.SnapshotBackend, cfg.SnapshotDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
