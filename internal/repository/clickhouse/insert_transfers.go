package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

const insertTransfersQuery = `
INSERT INTO sysclient_transfers (
	blockchain_id,
	id,
	transaction_id,
	source,
	target,
	currency,
	amount,
	transfer_index,
	acknowledgements
) VALUES`

// InsertTransfers stores transfers in ClickHouse. Amounts are kept in their decimal string form.
func (r *Repository) InsertTransfers(ctx context.Context, transfers []model.Transfer) error {
	start := time.Now()
	var err error
	defer func() {
		blockchainID := ""
		if len(transfers) > 0 {
			blockchainID = transfers[0].BlockchainID
		}
		r.metrics.Observe("insert_transfers", blockchainID, err, start)
	}()

	if len(transfers) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransfersQuery)
	if err != nil {
		return fmt.Errorf("prepare transfers batch: %w", err)
	}

	for _, t := range transfers {
		if err = batch.Append(
			t.BlockchainID,
			t.ID,
			t.TransactionID,
			t.Source,
			t.Target,
			t.Amount.Currency,
			t.Amount.Value,
			t.Index,
			t.Acknowledgements,
		); err != nil {
			return fmt.Errorf("append transfer: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transfers: %w", err)
	}
	return nil
}
