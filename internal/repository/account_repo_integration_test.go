//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/themizzi/exercise-e2e/internal/models"
	"github.com/themizzi/exercise-e2e/internal/repository/testutil"
)

func TestAccountRepository_Lifecycle_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	ctx := context.Background()
	repo := NewAccountRepository(testDB.DB)
	runID := models.NewRunID()

	account, err := models.NewAccount(runID, "integration@testmail.com", "123456", "Ada", models.AccountOriginAPI)
	if err != nil {
		t.Fatalf("NewAccount() error = %v", err)
	}
	if err := account.Activate(); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}

	if err := repo.CreateAccount(ctx, account); err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}
	if account.CreatedAt.IsZero() || account.UpdatedAt.IsZero() {
		t.Error("Timestamps should be set after create")
	}

	retrieved, err := repo.GetAccountByEmail(ctx, account.Email)
	if err != nil {
		t.Fatalf("GetAccountByEmail() error = %v", err)
	}
	if retrieved.ID != account.ID {
		t.Errorf("ID mismatch: got %v, want %v", retrieved.ID, account.ID)
	}
	if retrieved.RunID != runID {
		t.Errorf("RunID mismatch: got %v, want %v", retrieved.RunID, runID)
	}
	if retrieved.Status != models.AccountStatusActive {
		t.Errorf("Status mismatch: got %v, want %v", retrieved.Status, models.AccountStatusActive)
	}

	if err := repo.CreateAccount(ctx, account); err == nil {
		t.Error("Expected duplicate email to be rejected")
	}

	outstanding, err := repo.ListOutstanding(ctx, time.Now(), 10)
	if err != nil {
		t.Fatalf("ListOutstanding() error = %v", err)
	}
	if len(outstanding) != 1 {
		t.Fatalf("Expected 1 outstanding account, got %d", len(outstanding))
	}

	if err := repo.UpdateAccountStatus(ctx, account.Email, models.AccountStatusTeardownFailed, "responseCode 404"); err != nil {
		t.Fatalf("UpdateAccountStatus() error = %v", err)
	}
	retrieved, err = repo.GetAccountByEmail(ctx, account.Email)
	if err != nil {
		t.Fatalf("GetAccountByEmail() error = %v", err)
	}
	if retrieved.LastError != "responseCode 404" {
		t.Errorf("LastError mismatch: got %q", retrieved.LastError)
	}

	if err := repo.UpdateAccountStatus(ctx, account.Email, models.AccountStatusDeleted, ""); err != nil {
		t.Fatalf("UpdateAccountStatus() error = %v", err)
	}
	outstanding, err = repo.ListOutstanding(ctx, time.Now(), 10)
	if err != nil {
		t.Fatalf("ListOutstanding() error = %v", err)
	}
	if len(outstanding) != 0 {
		t.Errorf("Expected no outstanding accounts, got %d", len(outstanding))
	}

	err = repo.UpdateAccountStatus(ctx, account.Email, models.AccountStatusTeardownFailed, "late 404")
	if !errors.Is(err, models.ErrInvalidStatusTransition) {
		t.Errorf("Expected ErrInvalidStatusTransition for a deleted account, got %v", err)
	}
}

func TestAccountRepository_ListOutstandingSkipsLiveEntries_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	ctx := context.Background()
	repo := NewAccountRepository(testDB.DB)
	runID := models.NewRunID()

	live, err := models.NewAccount(runID, "live@testmail.com", "123456", "", models.AccountOriginAPI)
	if err != nil {
		t.Fatalf("NewAccount() error = %v", err)
	}
	if err := repo.CreateAccount(ctx, live); err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}

	failed, err := models.NewAccount(runID, "failed@testmail.com", "123456", "", models.AccountOriginAPI)
	if err != nil {
		t.Fatalf("NewAccount() error = %v", err)
	}
	if err := repo.CreateAccount(ctx, failed); err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}
	if err := repo.UpdateAccountStatus(ctx, failed.Email, models.AccountStatusTeardownFailed, "500"); err != nil {
		t.Fatalf("UpdateAccountStatus() error = %v", err)
	}

	outstanding, err := repo.ListOutstanding(ctx, time.Now().Add(-time.Hour), 10)
	if err != nil {
		t.Fatalf("ListOutstanding() error = %v", err)
	}
	if len(outstanding) != 1 || outstanding[0].Email != failed.Email {
		t.Errorf("Expected only the failed teardown, got %d accounts", len(outstanding))
	}
}

func TestAccountRepository_NotFound_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	ctx := context.Background()
	repo := NewAccountRepository(testDB.DB)

	if _, err := repo.GetAccountByEmail(ctx, "nobody@testmail.com"); !errors.Is(err, models.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}
	if err := repo.UpdateAccountStatus(ctx, "nobody@testmail.com", models.AccountStatusDeleted, ""); !errors.Is(err, models.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}
}
