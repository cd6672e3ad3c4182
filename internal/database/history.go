package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

const historySchema = `
CREATE TABLE IF NOT EXISTS ddl_history (
	id TEXT PRIMARY KEY,
	table_name TEXT NOT NULL,
	statement TEXT NOT NULL,
	description TEXT,
	created_by TEXT,
	executed_at TIMESTAMP NOT NULL
);
`

// OpenHistory opens the local sqlite store for the DDL audit trail and creates
// its schema on first use. The path comes from HISTORY_DB_PATH, defaulting to
// console.db in the working directory.
func OpenHistory() (*sql.DB, error) {
	path := os.Getenv("HISTORY_DB_PATH")
	if path == "" {
		path = "console.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return db, nil
}
