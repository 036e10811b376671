package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const knownTransactionHashesQuery = `
SELECT DISTINCT hash
FROM sysclient_transactions
WHERE blockchain_id = ? AND hash IN ?`

// KnownTransactionHashes returns the subset of hashes already archived for a blockchain.
func (r *Repository) KnownTransactionHashes(ctx context.Context, blockchainID string, hashes []string) (known map[string]struct{}, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("known_transaction_hashes", blockchainID, err, start)
	}()

	known = make(map[string]struct{}, len(hashes))
	if len(hashes) == 0 {
		return known, nil
	}

	rows, err := r.conn.Query(ctx, knownTransactionHashesQuery, blockchainID, hashes)
	if err != nil {
		return nil, fmt.Errorf("query known transaction hashes: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var hash string
		if err = rows.Scan(&hash); err != nil {
			return nil, fmt.Errorf("scan transaction hash: %w", err)
		}
		known[hash] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction hashes: %w", err)
	}

	return known, nil
}
