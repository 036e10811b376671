package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

const insertTransactionsQuery = `
INSERT INTO sysclient_transactions (
	blockchain_id,
	hash,
	id,
	identifier,
	status,
	type,
	block_hash,
	block_height,
	size,
	timestamp,
	fee_currency,
	fee_value,
	sender_address,
	token_amount,
	mint_id,
	raw
) VALUES`

// InsertTransactions stores transactions in ClickHouse.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", firstTransactionChain(txs), err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		var feeCurrency, feeValue *string
		if tx.Fee != nil {
			feeCurrency, feeValue = &tx.Fee.Currency, &tx.Fee.Value
		}
		if err = batch.Append(
			tx.BlockchainID,
			tx.Hash,
			tx.ID,
			tx.Identifier,
			string(tx.Status),
			string(tx.Type),
			tx.BlockHash,
			tx.BlockHeight,
			tx.Size,
			tx.Timestamp,
			feeCurrency,
			feeValue,
			tx.SenderAddress,
			tx.TokenAmount,
			tx.MintID,
			hex.EncodeToString(tx.Raw),
		); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}

func firstTransactionChain(txs []model.Transaction) string {
	if len(txs) == 0 {
		return ""
	}
	return txs[0].BlockchainID
}
