package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type paymentSyncer interface {
	SyncPending(ctx context.Context) (int, error)
}

// Scheduler periodically asks the gateway about payments that never got a
// callback and settles the ones it reports as finished.
type Scheduler struct {
	paymentService paymentSyncer
	interval       time.Duration
	logger         logger.Logger
}

func New(
	paymentService paymentSyncer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		paymentService: paymentService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("payment reconciliation started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("payment reconciliation stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	started := time.Now()

	settled, err := s.paymentService.SyncPending(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("failed to sync pending payments",
			logger.Int("settled", settled),
			logger.String("error", err.Error()),
		)
		return
	}

	if settled > 0 {
		s.logger.Info("pending payments settled",
			logger.Int("settled", settled),
			logger.Duration("took", time.Since(started)),
		)
	}
}
