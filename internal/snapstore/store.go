package snapstore

import (
	"database/sql"
	"fmt"
	"regexp"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/agoramind/govscope/internal/contract"
	"github.com/agoramind/govscope/schema"
)

// snapshotTable is the name of the table for snapshot storage.
const snapshotTable = "governance_snapshots"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SnapshotStoreImpl handles durable snapshot storage using various database backends.
type SnapshotStoreImpl struct {
	db         *sql.DB
	tableName  string
	backend    schema.DatabaseBackend
	driverName string
	connStr    string
}

var _ contract.SnapshotStore = &SnapshotStoreImpl{} // Compile-time check

// NewSnapshotStore initializes and returns a new SnapshotStore based on the backend type.
func NewSnapshotStore(tableName string, backend schema.DatabaseBackend, connStr string) (contract.SnapshotStore, error) {
	// Validate table name to prevent SQL injection
	if !tableNamePattern.MatchString(tableName) {
		return nil, fmt.Errorf("invalid table name: %q", tableName)
	}

	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetSnapshotDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled persistence
		return &SnapshotStoreImpl{
			db:        nil,
			tableName: tableName,
			backend:   backend,
			connStr:   connStr,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported snapshot backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	// Ping to verify connection (skip for NoneBackend)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema
	query := getCreateTableQuery(tableName, backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &SnapshotStoreImpl{
		db:         db,
		tableName:  tableName,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
// The raw timestamp string is stored verbatim so it round-trips; ordering
// uses the autoincrement id, which matches insertion order.
func getCreateTableQuery(tableName string, backend schema.DatabaseBackend) string {
	quoted := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				snapshot_id BIGINT AUTO_INCREMENT PRIMARY KEY,
				captured_at VARCHAR(64) NOT NULL,
				health_score INT NOT NULL,
				participation INT NOT NULL,
				pipeline_flow INT NOT NULL,
				follow_through INT NOT NULL,
				consensus INT NOT NULL,
				active_proposals INT NOT NULL,
				total_proposals INT NOT NULL,
				active_agents INT NOT NULL,
				velocity DOUBLE NOT NULL
			);
		`, quoted)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				snapshot_id BIGSERIAL PRIMARY KEY,
				captured_at TEXT NOT NULL,
				health_score INTEGER NOT NULL,
				participation INTEGER NOT NULL,
				pipeline_flow INTEGER NOT NULL,
				follow_through INTEGER NOT NULL,
				consensus INTEGER NOT NULL,
				active_proposals INTEGER NOT NULL,
				total_proposals INTEGER NOT NULL,
				active_agents INTEGER NOT NULL,
				velocity DOUBLE PRECISION NOT NULL
			);
		`, quoted)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				snapshot_id INTEGER PRIMARY KEY AUTOINCREMENT,
				captured_at TEXT NOT NULL,
				health_score INTEGER NOT NULL,
				participation INTEGER NOT NULL,
				pipeline_flow INTEGER NOT NULL,
				follow_through INTEGER NOT NULL,
				consensus INTEGER NOT NULL,
				active_proposals INTEGER NOT NULL,
				total_proposals INTEGER NOT NULL,
				active_agents INTEGER NOT NULL,
				velocity REAL NOT NULL
			);
		`, quoted)
	}
}

// quoteTableName quotes the table name with the backend's identifier quotes.
func quoteTableName(tableName string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return "`" + tableName + "`"
	default: // SQLite and PostgreSQL
		return `"` + tableName + `"`
	}
}

// getInsertQuery returns the INSERT query for the backend.
func (ss *SnapshotStoreImpl) getInsertQuery() string {
	quoted := quoteTableName(ss.tableName, ss.backend)
	columns := `captured_at, health_score, participation, pipeline_flow, follow_through, consensus,
		active_proposals, total_proposals, active_agents, velocity`
	switch ss.backend {
	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`, quoted, columns)
	default: // SQLite and MySQL
		return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, quoted, columns)
	}
}

// AppendSnapshot persists one snapshot row.
func (ss *SnapshotStoreImpl) AppendSnapshot(snap schema.GovernanceSnapshot) error {
	// Skip for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil
	}

	_, err := ss.db.Exec(ss.getInsertQuery(),
		snap.Timestamp, snap.HealthScore, snap.Participation, snap.PipelineFlow,
		snap.FollowThrough, snap.Consensus, snap.ActiveProposals, snap.TotalProposals,
		snap.ActiveAgents, snap.Velocity)
	return err
}

// ListSnapshots returns up to limit snapshots, oldest first. A limit of zero
// returns everything.
func (ss *SnapshotStoreImpl) ListSnapshots(limit int) ([]schema.GovernanceSnapshot, error) {
	// Return nothing for NoneBackend
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil, nil
	}

	quoted := quoteTableName(ss.tableName, ss.backend)
	columns := `captured_at, health_score, participation, pipeline_flow, follow_through, consensus,
		active_proposals, total_proposals, active_agents, velocity`

	// Fetch newest-first when limited, then reverse, so the limit keeps the
	// most recent rows rather than the oldest.
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY snapshot_id ASC`, columns, quoted)
	if limit > 0 {
		query = fmt.Sprintf(`SELECT %s FROM %s ORDER BY snapshot_id DESC LIMIT %d`, columns, quoted, limit)
	}

	rows, err := ss.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snaps []schema.GovernanceSnapshot
	for rows.Next() {
		var s schema.GovernanceSnapshot
		if err := rows.Scan(&s.Timestamp, &s.HealthScore, &s.Participation, &s.PipelineFlow,
			&s.FollowThrough, &s.Consensus, &s.ActiveProposals, &s.TotalProposals,
			&s.ActiveAgents, &s.Velocity); err != nil {
			return nil, err
		}
		snaps = append(snaps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if limit > 0 {
		for i, j := 0, len(snaps)-1; i < j; i, j = i+1, j-1 {
			snaps[i], snaps[j] = snaps[j], snaps[i]
		}
	}
	return snaps, nil
}

// GetStatus returns status information about the snapshot store.
func (ss *SnapshotStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(ss.backend),
		Connected: ss.db != nil,
	}

	if ss.backend == schema.NoneBackend || ss.db == nil {
		return status, nil
	}

	quoted := quoteTableName(ss.tableName, ss.backend)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoted)
	if err := ss.db.QueryRow(countQuery).Scan(&status.TotalSnapshots); err != nil {
		return status, fmt.Errorf("failed to get total snapshots: %w", err)
	}

	if status.TotalSnapshots == 0 {
		return status, nil
	}

	var lastRaw, oldestRaw string
	lastQuery := fmt.Sprintf("SELECT captured_at FROM %s ORDER BY snapshot_id DESC LIMIT 1", quoted)
	if err := ss.db.QueryRow(lastQuery).Scan(&lastRaw); err != nil {
		return status, fmt.Errorf("failed to get last snapshot time: %w", err)
	}
	oldestQuery := fmt.Sprintf("SELECT captured_at FROM %s ORDER BY snapshot_id ASC LIMIT 1", quoted)
	if err := ss.db.QueryRow(oldestQuery).Scan(&oldestRaw); err != nil {
		return status, fmt.Errorf("failed to get oldest snapshot time: %w", err)
	}

	if t, ok := schema.ParseTime(lastRaw); ok {
		status.LastSnapshot = t
	}
	if t, ok := schema.ParseTime(oldestRaw); ok {
		status.OldestSnapshot = t
	}
	return status, nil
}

// Clear removes all stored snapshots but keeps the table.
func (ss *SnapshotStoreImpl) Clear() error {
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil
	}
	quoted := quoteTableName(ss.tableName, ss.backend)
	_, err := ss.db.Exec(fmt.Sprintf("DELETE FROM %s", quoted))
	return err
}

// Close closes the underlying DB connection.
func (ss *SnapshotStoreImpl) Close() error {
	if ss.db != nil {
		return ss.db.Close()
	}
	return nil
}
