package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/byunyourim/BC-Adapter/internal/model"
	"github.com/byunyourim/BC-Adapter/pkg/batcher"
)

// DepositJournal buffers observed deposits and writes them in batches.
type DepositJournal struct {
	repo    JournalRepository
	metrics JournalMetrics
	batcher *batcher.Batcher[model.DepositRecord]
}

func NewDepositJournal(repo JournalRepository, metrics JournalMetrics, cfg batcher.Config, logger *zap.Logger) (*DepositJournal, error) {
	if repo == nil {
		return nil, errors.New("deposit journal: repository is required")
	}
	if metrics == nil {
		return nil, errors.New("deposit journal: metrics are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	j := &DepositJournal{
		repo:    repo,
		metrics: metrics,
	}
	j.batcher = batcher.New(logger.Named("deposit_journal"), j.flush, cfg)
	return j, nil
}

// Start runs the flush loop until ctx is done or Stop is called.
func (j *DepositJournal) Start(ctx context.Context) {
	j.batcher.Start(ctx)
}

// Stop writes everything still buffered.
func (j *DepositJournal) Stop() {
	j.batcher.Stop()
}

// Record queues one deposit row.
func (j *DepositJournal) Record(ctx context.Context, record model.DepositRecord) error {
	return j.batcher.Add(ctx, record)
}

func (j *DepositJournal) flush(ctx context.Context, records []model.DepositRecord) error {
	err := j.repo.InsertDepositEvents(ctx, records)
	j.metrics.ObserveFlush(err, len(records))
	return err
}
