package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/themizzi/exercise-e2e/internal/models"
)

// AccountRepository stores the account ledger in Postgres
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a ledger repository on db
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{
		db: db,
	}
}

// CreateAccount inserts a new ledger entry
func (r *AccountRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO test_accounts (id, run_id, email, password, name, origin, status, last_error, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.RunID,
		account.Email,
		account.Password,
		account.Name,
		account.Origin,
		account.Status,
		account.LastError,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	account.CreatedAt = now
	account.UpdatedAt = now

	return nil
}

// GetAccountByEmail retrieves a ledger entry by its email
func (r *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `
		SELECT id, run_id, email, password, name, origin, status, last_error, created_at, updated_at
		FROM test_accounts
		WHERE email = $1
	`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}

// UpdateAccountStatus sets the status and last error of a ledger entry.
// A deleted entry is final: updating it returns ErrInvalidStatusTransition.
func (r *AccountRepository) UpdateAccountStatus(ctx context.Context, email string, status models.AccountStatus, lastError string) error {
	query := `
		UPDATE test_accounts
		SET status = $1, last_error = $2, updated_at = $3
		WHERE email = $4 AND status <> $5
	`

	result, err := r.db.ExecContext(ctx, query, status, lastError, time.Now(), email, models.AccountStatusDeleted)
	if err != nil {
		return fmt.Errorf("failed to update account status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return r.missingOrFinal(ctx, email)
	}

	return nil
}

func (r *AccountRepository) missingOrFinal(ctx context.Context, email string) error {
	var status models.AccountStatus
	err := r.db.QueryRowContext(ctx, `SELECT status FROM test_accounts WHERE email = $1`, email).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrAccountNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get account status: %w", err)
	}
	return fmt.Errorf("%w: account is already %s", models.ErrInvalidStatusTransition, status)
}

// ListOutstanding returns up to limit accounts that may still exist remotely,
// oldest first. Failed teardowns are listed at any age; pending and active
// entries only once untouched since staleBefore, so live leases are skipped.
func (r *AccountRepository) ListOutstanding(ctx context.Context, staleBefore time.Time, limit int) ([]*models.Account, error) {
	query := `
		SELECT id, run_id, email, password, name, origin, status, last_error, created_at, updated_at
		FROM test_accounts
		WHERE status = $1 OR (status <> $2 AND updated_at <= $3)
		ORDER BY created_at ASC
		LIMIT $4
	`

	rows, err := r.db.QueryContext(ctx, query, models.AccountStatusTeardownFailed, models.AccountStatusDeleted, staleBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list outstanding accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*models.Account, error) {
	account := &models.Account{}
	err := s.Scan(
		&account.ID,
		&account.RunID,
		&account.Email,
		&account.Password,
		&account.Name,
		&account.Origin,
		&account.Status,
		&account.LastError,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}
