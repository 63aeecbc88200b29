package fixtures

import (
	"context"
	"hash/fnv"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"github.com/themizzi/exercise-e2e/internal/account"
	"github.com/themizzi/exercise-e2e/internal/api"
	"github.com/themizzi/exercise-e2e/internal/config"
	"github.com/themizzi/exercise-e2e/internal/dataset"
	"github.com/themizzi/exercise-e2e/internal/models"
	"github.com/themizzi/exercise-e2e/internal/pages"
)

// releaseTimeout bounds the teardown delete of a leased account
const releaseTimeout = 30 * time.Second

// Env is the suite-wide state every fixture draws from
type Env struct {
	Config   *config.SiteConfig
	Log      *logrus.Logger
	Browser  *Browser
	API      *api.Client
	Accounts *account.Manager
}

// NewEnv wires the API client and the account manager for one run.
// browser may be nil for API-only suites.
func NewEnv(cfg *config.SiteConfig, log *logrus.Logger, ledger account.Ledger, browser *Browser) *Env {
	client := api.NewClient(cfg.BaseURL, api.WithLogger(log))
	runID := models.NewRunID()
	log.WithField("run_id", runID).Info("suite run started")

	return &Env{
		Config:   cfg,
		Log:      log,
		Browser:  browser,
		API:      client,
		Accounts: account.NewManager(runID, client, ledger, log),
	}
}

// Fixture is what one test receives. Every field and accessor is scoped to
// that test; nothing outlives it.
type Fixture struct {
	T       *testing.T
	Factory *dataset.Factory
	Log     logrus.FieldLogger

	env   *Env
	ctx   context.Context
	page  playwright.Page
	pages *pages.Pages
}

// With provides a fresh Fixture to fn. Browser state is created on first
// use and torn down, with every leased account, when the test ends.
func With(t *testing.T, env *Env, fn func(f *Fixture)) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	seed := testSeed(env.Config.Seed, t.Name())
	log := env.Log.WithFields(logrus.Fields{"test": t.Name(), "seed": seed})
	log.Debug("fixture provided")

	f := &Fixture{
		T:       t,
		Factory: dataset.NewFactory(seed),
		Log:     log,
		env:     env,
		ctx:     ctx,
	}

	fn(f)
}

// testSeed derives a reproducible per-test seed from the suite seed.
// A zero suite seed stays zero so the factory falls back to the clock.
func testSeed(suiteSeed int64, testName string) int64 {
	if suiteSeed == 0 {
		return 0
	}
	h := fnv.New64a()
	h.Write([]byte(testName))
	seed := suiteSeed ^ int64(h.Sum64())
	if seed == 0 {
		seed = suiteSeed
	}
	return seed
}

// Context is cancelled when the test ends
func (f *Fixture) Context() context.Context {
	return f.ctx
}

// Config returns the suite configuration
func (f *Fixture) Config() *config.SiteConfig {
	return f.env.Config
}

// API returns the site API client
func (f *Fixture) API() *api.Client {
	return f.env.API
}

// Page returns the test's tab, opening a fresh context on first call
func (f *Fixture) Page() playwright.Page {
	f.T.Helper()
	if f.page == nil {
		if f.env.Browser == nil {
			f.T.Fatal("no browser configured for this suite")
		}
		f.page = f.env.Browser.NewPage(f.T)
	}
	return f.page
}

// Pages returns the page objects bound to the test's tab
func (f *Fixture) Pages() *pages.Pages {
	f.T.Helper()
	if f.pages == nil {
		f.pages = pages.NewPages(f.Page(), f.Log, f.env.Config.ActionTimeout)
	}
	return f.pages
}

// Expect returns web-first assertions using the action timeout
func (f *Fixture) Expect() playwright.PlaywrightAssertions {
	return playwright.NewPlaywrightAssertions(f.env.Config.ActionTimeoutMillis())
}

// AcquireAccount creates a fresh account through the API. It is deleted
// when the test ends; a failed delete is logged, not retried.
func (f *Fixture) AcquireAccount() *account.Lease {
	f.T.Helper()

	lease, err := f.env.Accounts.Acquire(f.ctx, f.Factory.User())
	if err != nil {
		f.T.Fatalf("failed to acquire account: %v", err)
	}
	f.releaseOnCleanup(lease)
	return lease
}

// TrackAccount records an account the test is about to create through the UI
func (f *Fixture) TrackAccount(user dataset.User) *account.Lease {
	f.T.Helper()

	lease, err := f.env.Accounts.Track(f.ctx, user)
	if err != nil {
		f.T.Fatalf("failed to track account: %v", err)
	}
	f.releaseOnCleanup(lease)
	return lease
}

func (f *Fixture) releaseOnCleanup(lease *account.Lease) {
	f.T.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()
		if err := lease.Release(ctx); err != nil {
			f.T.Logf("account teardown failed, left for sweep: %v", err)
		}
	})
}
