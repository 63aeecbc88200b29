// Package account owns the remote accounts a test run creates on the site.
//
// Every account is written to a ledger before it is used and marked when it
// is deleted, so a crashed or interrupted run leaves a record the sweeper
// can clean up later.
package account

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/exercise-e2e/internal/api"
	"github.com/themizzi/exercise-e2e/internal/dataset"
	"github.com/themizzi/exercise-e2e/internal/models"
	"github.com/themizzi/exercise-e2e/internal/step"
)

// Ledger records remote accounts
type Ledger interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	UpdateAccountStatus(ctx context.Context, email string, status models.AccountStatus, lastError string) error
	ListOutstanding(ctx context.Context, staleBefore time.Time, limit int) ([]*models.Account, error)
}

// Deleter removes an account on the site
type Deleter interface {
	DeleteAccount(ctx context.Context, email, password string) (*http.Response, error)
}

// Registrar creates and removes accounts on the site
type Registrar interface {
	Deleter
	CreateAccount(ctx context.Context, user dataset.User) (*http.Response, error)
}

// Manager hands out leases on remote accounts for one run
type Manager struct {
	runID  string
	client Registrar
	ledger Ledger
	log    logrus.FieldLogger
}

// NewManager creates a manager that tags every account with runID
func NewManager(runID string, client Registrar, ledger Ledger, log logrus.FieldLogger) *Manager {
	return &Manager{
		runID:  runID,
		client: client,
		ledger: ledger,
		log:    log.WithField("run_id", runID),
	}
}

// RunID returns the identifier shared by every account of this run
func (m *Manager) RunID() string {
	return m.runID
}

// Acquire creates user through the API and returns a lease on it.
// The ledger entry is written before the remote call.
func (m *Manager) Acquire(ctx context.Context, user dataset.User) (*Lease, error) {
	account, err := models.NewAccount(m.runID, user.Email, user.Password, user.Name, models.AccountOriginAPI)
	if err != nil {
		return nil, err
	}

	var lease *Lease
	err = step.Runf(m.log, func() error {
		if err := m.ledger.CreateAccount(ctx, account); err != nil {
			return fmt.Errorf("failed to record account: %w", err)
		}

		if cause := m.create(ctx, user); cause != nil {
			m.recordFailure(ctx, account, fmt.Errorf("create: %w", cause))
			return cause
		}

		if err := account.Activate(); err != nil {
			return err
		}
		if err := m.ledger.UpdateAccountStatus(ctx, account.Email, account.Status, ""); err != nil {
			return fmt.Errorf("failed to activate account: %w", err)
		}

		lease = m.newLease(account, user)
		return nil
	}, "Acquire account %s", user.Email)
	if err != nil {
		return nil, err
	}

	return lease, nil
}

// Track records an account the test is about to create through the UI.
// The entry stays pending until the lease is confirmed.
func (m *Manager) Track(ctx context.Context, user dataset.User) (*Lease, error) {
	account, err := models.NewAccount(m.runID, user.Email, user.Password, user.Name, models.AccountOriginUI)
	if err != nil {
		return nil, err
	}
	if err := m.ledger.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to record account: %w", err)
	}

	m.log.WithField("email", user.Email).Debug("tracking ui account")
	return m.newLease(account, user), nil
}

func (m *Manager) create(ctx context.Context, user dataset.User) error {
	resp, err := m.client.CreateAccount(ctx, user)
	if err != nil {
		return err
	}
	_, err = api.Expect(resp, http.StatusCreated)
	return err
}

func (m *Manager) newLease(account *models.Account, user dataset.User) *Lease {
	return &Lease{
		manager: m,
		account: account,
		user:    user,
	}
}

// recordFailure marks the account teardown_failed. It returns the ledger
// error so callers can tell an entry someone else already deleted.
func (m *Manager) recordFailure(ctx context.Context, account *models.Account, cause error) error {
	if err := account.MarkTeardownFailed(cause.Error()); err != nil {
		m.log.WithError(err).Warn("account status not updated")
		return err
	}
	err := m.ledger.UpdateAccountStatus(ctx, account.Email, account.Status, account.LastError)
	if err != nil && !errors.Is(err, models.ErrInvalidStatusTransition) {
		m.log.WithError(err).WithField("email", account.Email).Warn("ledger update failed")
	}
	return err
}

// Lease is a remote account owned by one test
type Lease struct {
	manager *Manager
	account *models.Account
	user    dataset.User

	once sync.Once
	err  error
}

// User returns the full profile the account was created with
func (l *Lease) User() dataset.User {
	return l.user
}

// Email returns the account address
func (l *Lease) Email() string {
	return l.user.Email
}

// Credentials returns the login pair
func (l *Lease) Credentials() dataset.Credentials {
	return l.user.Credentials()
}

// Status returns the ledger status as last seen by this lease
func (l *Lease) Status() models.AccountStatus {
	return l.account.Status
}

// Confirm marks a tracked account as created once the site has shown it
func (l *Lease) Confirm(ctx context.Context) error {
	if err := l.account.Activate(); err != nil {
		return err
	}
	if err := l.manager.ledger.UpdateAccountStatus(ctx, l.account.Email, l.account.Status, ""); err != nil {
		return fmt.Errorf("failed to confirm account: %w", err)
	}
	return nil
}

// Release deletes the account through the API. It runs once per lease;
// later calls return the first result. A failed delete is recorded and
// logged but not retried.
func (l *Lease) Release(ctx context.Context) error {
	l.once.Do(func() {
		m := l.manager
		log := m.log.WithField("email", l.account.Email)

		cause := deleteRemote(ctx, m.client, l.account)
		if cause != nil && l.account.Status == models.AccountStatusPending && isGone(cause) {
			// sign-up never got far enough to create it
			l.err = l.markDeleted(ctx)
			log.Debug("unconfirmed account was never created")
			return
		}
		if cause != nil {
			if err := m.recordFailure(ctx, l.account, cause); errors.Is(err, models.ErrInvalidStatusTransition) {
				l.err = l.account.MarkDeleted()
				log.WithError(cause).Info("account already deleted by a sweep")
				return
			}
			log.WithError(cause).Warn("account teardown failed")
			l.err = fmt.Errorf("release account %s: %w", l.account.Email, cause)
			return
		}

		l.err = l.markDeleted(ctx)
		log.Debug("account released")
	})
	return l.err
}

// Forget records that the test already deleted the account, through the
// UI for example. Release becomes a no-op.
func (l *Lease) Forget(ctx context.Context) error {
	var err error
	l.once.Do(func() {
		err = l.markDeleted(ctx)
	})
	return err
}

func (l *Lease) markDeleted(ctx context.Context) error {
	if err := l.account.MarkDeleted(); err != nil {
		return err
	}
	err := l.manager.ledger.UpdateAccountStatus(ctx, l.account.Email, l.account.Status, "")
	if err != nil && !errors.Is(err, models.ErrInvalidStatusTransition) {
		return fmt.Errorf("failed to mark account deleted: %w", err)
	}
	return nil
}

func deleteRemote(ctx context.Context, d Deleter, account *models.Account) error {
	resp, err := d.DeleteAccount(ctx, account.Email, account.Password)
	if err != nil {
		return err
	}
	_, err = api.Expect(resp, http.StatusOK)
	return err
}

// isGone reports a delete rejected because the site does not know the account.
// A 404 with any other message, a wrong password for instance, is not gone.
func isGone(err error) bool {
	var codeErr *api.ResponseCodeError
	return errors.As(err, &codeErr) &&
		codeErr.Got == http.StatusNotFound &&
		codeErr.Message == dataset.MessageAccountNotFound
}
