package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/themizzi/exercise-e2e/internal/models"
)

// MemoryAccountRepository keeps the ledger in process memory.
// It is used when no ledger database is configured, so leaks are only
// visible in the logs of the run that caused them.
type MemoryAccountRepository struct {
	mu       sync.Mutex
	accounts map[string]models.Account
}

// NewMemoryAccountRepository creates an empty in-memory ledger
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		accounts: make(map[string]models.Account),
	}
}

// CreateAccount inserts a new ledger entry
func (r *MemoryAccountRepository) CreateAccount(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.Email]; exists {
		return fmt.Errorf("failed to create account: email %s already recorded", account.Email)
	}

	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	r.accounts[account.Email] = *account

	return nil
}

// GetAccountByEmail retrieves a copy of the ledger entry for email
func (r *MemoryAccountRepository) GetAccountByEmail(_ context.Context, email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[email]
	if !ok {
		return nil, models.ErrAccountNotFound
	}
	return &account, nil
}

// UpdateAccountStatus sets the status and last error of a ledger entry.
// A deleted entry is final: updating it returns ErrInvalidStatusTransition.
func (r *MemoryAccountRepository) UpdateAccountStatus(_ context.Context, email string, status models.AccountStatus, lastError string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[email]
	if !ok {
		return models.ErrAccountNotFound
	}
	if account.Status == models.AccountStatusDeleted {
		return fmt.Errorf("%w: account is already deleted", models.ErrInvalidStatusTransition)
	}
	account.Status = status
	account.LastError = lastError
	account.UpdatedAt = time.Now()
	r.accounts[email] = account

	return nil
}

// ListOutstanding returns up to limit accounts that may still exist remotely,
// oldest first. Pending and active entries are listed only once untouched
// since staleBefore.
func (r *MemoryAccountRepository) ListOutstanding(_ context.Context, staleBefore time.Time, limit int) ([]*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var accounts []*models.Account
	for _, account := range r.accounts {
		if account.IsSweepable(staleBefore) {
			a := account
			accounts = append(accounts, &a)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})
	if limit > 0 && len(accounts) > limit {
		accounts = accounts[:limit]
	}

	return accounts, nil
}
