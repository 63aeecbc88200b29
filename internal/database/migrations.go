package database

import (
	"database/sql"
	"fmt"
)

// Schema creates the ledger of accounts the suite opened on the remote site
const Schema = `
	CREATE TABLE IF NOT EXISTS test_accounts (
		id UUID PRIMARY KEY,
		run_id VARCHAR(64) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL DEFAULT '',
		origin VARCHAR(8) NOT NULL,
		status VARCHAR(32) NOT NULL,
		last_error TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_test_accounts_status ON test_accounts(status);
	CREATE INDEX IF NOT EXISTS idx_test_accounts_run_id ON test_accounts(run_id);
	`

// RunMigrations creates the ledger tables
func RunMigrations(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("database connection not initialized")
	}

	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create test_accounts table: %w", err)
	}

	return nil
}
