package clickhouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/byunyourim/BC-Adapter/internal/model"
)

// InsertDepositEvents appends journal rows for observed deposits.
func (r *Repository) InsertDepositEvents(ctx context.Context, records []model.DepositRecord) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_deposit_events", err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	const query = `
INSERT INTO deposit_events (
	tx_hash,
	to_address,
	amount,
	chain,
	matched,
	observed_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare deposit events batch: %w", err)
	}

	for _, rec := range records {
		if err = batch.Append(
			rec.TxHash,
			strings.ToLower(rec.ToAddress),
			rec.Amount,
			string(rec.Chain),
			rec.Matched,
			rec.ObservedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append deposit event %s: %w", rec.TxHash, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("send deposit events batch: %w", err)
	}
	return nil
}
