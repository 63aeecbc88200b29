package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountStatus represents where a remote test account is in its lifecycle
type AccountStatus string

// Account statuses
const (
	AccountStatusPending        AccountStatus = "pending"
	AccountStatusActive         AccountStatus = "active"
	AccountStatusDeleted        AccountStatus = "deleted"
	AccountStatusTeardownFailed AccountStatus = "teardown_failed"
)

// AccountOrigin records how the account was created on the site
type AccountOrigin string

// Account origins
const (
	AccountOriginAPI AccountOrigin = "api"
	AccountOriginUI  AccountOrigin = "ui"
)

// Account is a ledger entry for an account the suite created on the remote site
type Account struct {
	ID        string
	RunID     string
	Email     string
	Password  string
	Name      string
	Origin    AccountOrigin
	Status    AccountStatus
	LastError string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain errors
var (
	ErrInvalidEmail            = errors.New("account email must contain @")
	ErrInvalidPassword         = errors.New("account password cannot be empty")
	ErrInvalidRunID            = errors.New("run ID cannot be empty")
	ErrInvalidOrigin           = errors.New("account origin must be api or ui")
	ErrInvalidStatusTransition = errors.New("invalid account status transition")
	ErrAccountNotFound         = errors.New("account not found")
)

// NewRunID returns an identifier shared by every account created in one suite run
func NewRunID() string {
	return uuid.New().String()
}

// NewAccount creates a pending ledger entry with validation
func NewAccount(runID, email, password, name string, origin AccountOrigin) (*Account, error) {
	if err := validateAccountInput(runID, email, password, origin); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Account{
		ID:        uuid.New().String(),
		RunID:     runID,
		Email:     email,
		Password:  password,
		Name:      name,
		Origin:    origin,
		Status:    AccountStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func validateAccountInput(runID, email, password string, origin AccountOrigin) error {
	if runID == "" {
		return ErrInvalidRunID
	}
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	if password == "" {
		return ErrInvalidPassword
	}
	if origin != AccountOriginAPI && origin != AccountOriginUI {
		return ErrInvalidOrigin
	}
	return nil
}

// Activate marks the account as existing on the site
func (a *Account) Activate() error {
	if a.Status != AccountStatusPending {
		return fmt.Errorf("%w: cannot activate account with status %s", ErrInvalidStatusTransition, a.Status)
	}
	a.Status = AccountStatusActive
	a.UpdatedAt = time.Now()
	return nil
}

// MarkDeleted records a confirmed remote deletion
func (a *Account) MarkDeleted() error {
	if a.Status == AccountStatusDeleted {
		return fmt.Errorf("%w: account is already deleted", ErrInvalidStatusTransition)
	}
	a.Status = AccountStatusDeleted
	a.LastError = ""
	a.UpdatedAt = time.Now()
	return nil
}

// MarkTeardownFailed records a deletion attempt that did not succeed
func (a *Account) MarkTeardownFailed(cause string) error {
	if a.Status == AccountStatusDeleted {
		return fmt.Errorf("%w: cannot fail teardown of a deleted account", ErrInvalidStatusTransition)
	}
	a.Status = AccountStatusTeardownFailed
	a.LastError = cause
	a.UpdatedAt = time.Now()
	return nil
}

// IsOutstanding returns true if the account may still exist remotely
func (a *Account) IsOutstanding() bool {
	return a.Status != AccountStatusDeleted
}

// IsSweepable reports whether a cleanup job may delete the account: its owner
// gave up on it, or it has not been touched since staleBefore
func (a *Account) IsSweepable(staleBefore time.Time) bool {
	if a.Status == AccountStatusTeardownFailed {
		return true
	}
	return a.IsOutstanding() && !a.UpdatedAt.After(staleBefore)
}
