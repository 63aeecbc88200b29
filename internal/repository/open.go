package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/themizzi/exercise-e2e/internal/config"
	"github.com/themizzi/exercise-e2e/internal/database"
	"github.com/themizzi/exercise-e2e/internal/models"
)

// Store is the ledger contract shared by the Postgres and in-memory repositories
type Store interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	UpdateAccountStatus(ctx context.Context, email string, status models.AccountStatus, lastError string) error
	ListOutstanding(ctx context.Context, staleBefore time.Time, limit int) ([]*models.Account, error)
}

var (
	_ Store = (*AccountRepository)(nil)
	_ Store = (*MemoryAccountRepository)(nil)
)

// Open returns the Postgres ledger when enabled, the in-memory one otherwise.
// The returned close function is always safe to call.
func Open(enabled bool, getenv func(string) string) (Store, func() error, error) {
	if !enabled {
		return NewMemoryAccountRepository(), func() error { return nil }, nil
	}

	pgConfig, err := config.LoadPostgresConfig(getenv)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load ledger config: %w", err)
	}

	db, err := database.Connect(pgConfig)
	if err != nil {
		return nil, nil, err
	}

	if err := database.RunMigrations(db); err != nil {
		db.Close()
		return nil, nil, err
	}

	return NewAccountRepository(db), db.Close, nil
}
