package account

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/themizzi/exercise-e2e/internal/models"
)

// DefaultSweepBatch bounds how many ledger rows one sweep reads
const DefaultSweepBatch = 500

// SweepReport lists the emails a sweep cleaned up and the ones it could not
type SweepReport struct {
	Deleted []string          `json:"deleted"`
	Failed  map[string]string `json:"failed"`
}

// Sweeper deletes accounts that earlier runs left behind
type Sweeper struct {
	deleter     Deleter
	ledger      Ledger
	log         logrus.FieldLogger
	concurrency int
	limiter     *rate.Limiter
	minAge      time.Duration
	batch       int
	now         func() time.Time
}

// NewSweeper creates a sweeper running at most concurrency deletes at once
// and at most ratePerSec per second. A non-positive rate disables the limit.
// Pending and active accounts touched within minAge belong to a run that may
// still be going and are left alone; failed teardowns are swept at any age.
func NewSweeper(deleter Deleter, ledger Ledger, log logrus.FieldLogger, concurrency int, ratePerSec float64, minAge time.Duration) *Sweeper {
	if concurrency < 1 {
		concurrency = 1
	}
	limit := rate.Inf
	if ratePerSec > 0 {
		limit = rate.Limit(ratePerSec)
	}
	return &Sweeper{
		deleter:     deleter,
		ledger:      ledger,
		log:         log,
		concurrency: concurrency,
		limiter:     rate.NewLimiter(limit, 1),
		minAge:      minAge,
		batch:       DefaultSweepBatch,
		now:         time.Now,
	}
}

// Sweep makes one delete attempt per outstanding account. Per-account
// failures land in the report; only ledger and context errors are returned.
func (s *Sweeper) Sweep(ctx context.Context) (SweepReport, error) {
	report := SweepReport{Failed: make(map[string]string)}

	staleBefore := s.now().Add(-s.minAge)
	accounts, err := s.ledger.ListOutstanding(ctx, staleBefore, s.batch)
	if err != nil {
		return report, fmt.Errorf("failed to list outstanding accounts: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"outstanding":  len(accounts),
		"stale_before": staleBefore,
	}).Info("sweep started")

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, acc := range accounts {
		acc := acc
		g.Go(func() error {
			if err := s.limiter.Wait(gctx); err != nil {
				return err
			}

			cause := s.sweepOne(gctx, acc)

			mu.Lock()
			defer mu.Unlock()
			if cause != nil {
				report.Failed[acc.Email] = cause.Error()
				return nil
			}
			report.Deleted = append(report.Deleted, acc.Email)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report, err
	}

	s.log.WithFields(logrus.Fields{
		"deleted": len(report.Deleted),
		"failed":  len(report.Failed),
	}).Info("sweep finished")

	return report, nil
}

func (s *Sweeper) sweepOne(ctx context.Context, acc *models.Account) error {
	log := s.log.WithFields(logrus.Fields{"email": acc.Email, "run_id": acc.RunID})

	cause := deleteRemote(ctx, s.deleter, acc)
	if cause != nil && !isGone(cause) {
		if err := acc.MarkTeardownFailed(cause.Error()); err == nil {
			if err := s.ledger.UpdateAccountStatus(ctx, acc.Email, acc.Status, acc.LastError); err != nil {
				log.WithError(err).Warn("ledger update failed")
			}
		}
		log.WithError(cause).Warn("sweep delete failed")
		return cause
	}
	if cause != nil {
		log.WithError(cause).Warn("account not found on site, marking deleted")
	}

	if err := acc.MarkDeleted(); err != nil {
		return err
	}
	if err := s.ledger.UpdateAccountStatus(ctx, acc.Email, acc.Status, ""); err != nil && !errors.Is(err, models.ErrInvalidStatusTransition) {
		return fmt.Errorf("failed to mark account deleted: %w", err)
	}
	log.Debug("swept account")
	return nil
}
