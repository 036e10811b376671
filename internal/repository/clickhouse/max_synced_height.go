package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const maxSyncedHeightQuery = `
SELECT coalesce(max(block_height), toUInt64(0)) AS max_height
FROM sysclient_transactions
WHERE blockchain_id = ?`

// MaxSyncedHeight returns the highest block height archived for a blockchain, 0 when none.
func (r *Repository) MaxSyncedHeight(ctx context.Context, blockchainID string) (height uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_synced_height", blockchainID, err, start)
	}()

	rows, err := r.conn.Query(ctx, maxSyncedHeightQuery, blockchainID)
	if err != nil {
		return 0, fmt.Errorf("query max synced height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, fmt.Errorf("max synced height not found")
	}
	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan max synced height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max synced height: %w", err)
	}

	return height, nil
}
