package cli

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/exercise-e2e/internal/api"
	"github.com/themizzi/exercise-e2e/internal/config"
	"github.com/themizzi/exercise-e2e/internal/logging"
	"github.com/themizzi/exercise-e2e/internal/repository"
)

// Deps holds everything the commands run against
type Deps struct {
	Config *config.SiteConfig
	Log    *logrus.Logger
	API    *api.Client
	Ledger repository.Store

	closeLedger func() error
}

// Loader builds Deps when a command that needs them starts
type Loader func() (*Deps, error)

// LoadDeps reads the environment, logs to stderr and opens the configured ledger
func LoadDeps() (*Deps, error) {
	cfg, err := config.LoadSiteConfig()
	if err != nil {
		return nil, err
	}

	log := logging.New(cfg.LogLevel, os.Stderr)

	ledger, closeLedger, err := repository.Open(cfg.LedgerEnabled, os.Getenv)
	if err != nil {
		return nil, err
	}
	if !cfg.LedgerEnabled {
		log.Warn("LEDGER_ENABLED is false, accounts are tracked in memory for this command only")
	}

	return NewDeps(cfg, log, ledger, closeLedger), nil
}

// NewDeps assembles Deps from parts. closeLedger may be nil.
func NewDeps(cfg *config.SiteConfig, log *logrus.Logger, ledger repository.Store, closeLedger func() error) *Deps {
	return &Deps{
		Config:      cfg,
		Log:         log,
		API:         api.NewClient(cfg.BaseURL, api.WithLogger(log)),
		Ledger:      ledger,
		closeLedger: closeLedger,
	}
}

// Close releases the ledger connection
func (d *Deps) Close() error {
	if d.closeLedger == nil {
		return nil
	}
	return d.closeLedger()
}
