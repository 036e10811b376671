// Package archive keeps a ClickHouse archive of the transactions touching watched addresses.
package archive

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/emitter"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/pkg/batcher"
)

// Config tunes the sync loop and the insert batchers.
type Config struct {
	Interval      time.Duration `long:"sync-interval" env:"SYSCLIENT_SYNC_INTERVAL" description:"pause between sync passes" default:"1m"`
	FlushSize     int           `long:"flush-size" env:"SYSCLIENT_FLUSH_SIZE" description:"rows per insert batch" default:"500"`
	FlushInterval time.Duration `long:"flush-interval" env:"SYSCLIENT_FLUSH_INTERVAL" description:"max time rows wait in a batch" default:"5s"`
	InsertRPS     int           `long:"insert-rps" env:"SYSCLIENT_INSERT_RPS" description:"max insert batches per second, 0 for unlimited" default:"0"`
}

type Service struct {
	source   TransactionSource
	repo     Repository
	emitter  Emitter
	metrics  SyncMetrics
	watches  []Watch
	interval time.Duration
	logger   *zap.Logger

	txBatcher       *batcher.Batcher[model.Transaction]
	transferBatcher *batcher.Batcher[model.Transfer]
}

// NewService builds the sync service. A nil emitter disables event publishing.
func NewService(
	source TransactionSource,
	repo Repository,
	emitter Emitter,
	metrics SyncMetrics,
	watches []Watch,
	cfg Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		source:   source,
		repo:     repo,
		emitter:  emitter,
		metrics:  metrics,
		watches:  watches,
		interval: cfg.Interval,
		logger:   logger,
		txBatcher: batcher.New[model.Transaction](
			logger.Named("txBatcher"),
			repo.InsertTransactions,
			cfg.FlushSize,
			cfg.FlushInterval,
			cfg.InsertRPS,
		),
		transferBatcher: batcher.New[model.Transfer](
			logger.Named("transferBatcher"),
			repo.InsertTransfers,
			cfg.FlushSize,
			cfg.FlushInterval,
			cfg.InsertRPS,
		),
	}
}

// Start launches the insert batchers. SyncOnce needs them running.
func (s *Service) Start(ctx context.Context) {
	s.txBatcher.Start(ctx)
	s.transferBatcher.Start(ctx)
}

// Stop flushes and stops the insert batchers.
func (s *Service) Stop() {
	s.txBatcher.Stop()
	s.transferBatcher.Stop()
}

// Run syncs every watched blockchain, then sleeps for the configured interval, until ctx ends.
// A failed pass is logged and retried on the next tick.
func (s *Service) Run(ctx context.Context) error {
	s.Start(ctx)
	defer s.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.SyncOnce(ctx); err != nil {
			s.logger.Error("sync pass failed", zap.Error(err))
		}

		if err := clock.SleepWithContext(ctx, s.interval); err != nil {
			return err
		}
	}
}

// SyncOnce runs one pass over every watched blockchain and reports the first failure.
func (s *Service) SyncOnce(ctx context.Context) error {
	var firstErr error
	for _, w := range s.watches {
		if err := s.syncBlockchain(ctx, w); err != nil {
			s.logger.Warn("blockchain sync failed", zap.String("blockchain_id", w.BlockchainID), zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("sync %s: %w", w.BlockchainID, err)
			}
		}
	}
	return firstErr
}

func (s *Service) syncBlockchain(ctx context.Context, w Watch) (err error) {
	started := time.Now()
	var fresh []model.Transaction
	defer func() {
		s.metrics.ObserveSync(w.BlockchainID, err, len(fresh), started)
	}()

	height, err := s.repo.MaxSyncedHeight(ctx, w.BlockchainID)
	if err != nil {
		return err
	}

	query := sysclient.TransactionsQuery{
		BlockchainID:     w.BlockchainID,
		Addresses:        w.Addresses,
		IncludeTransfers: true,
	}
	if height > 0 {
		// the last archived block may be partial; known hashes are dropped below
		query.BegHeight = &height
	}
	txs, err := s.source.GetTransactions(ctx, query)
	if err != nil {
		return fmt.Errorf("get transactions: %w", err)
	}

	confirmed := confirmedUnique(txs)
	if len(confirmed) == 0 {
		return nil
	}

	hashes := make([]string, 0, len(confirmed))
	for _, tx := range confirmed {
		hashes = append(hashes, tx.Hash)
	}
	known, err := s.repo.KnownTransactionHashes(ctx, w.BlockchainID, hashes)
	if err != nil {
		return err
	}

	candidates := make([]model.Transaction, 0, len(confirmed))
	for _, tx := range confirmed {
		if _, ok := known[tx.Hash]; !ok {
			candidates = append(candidates, tx)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	for _, tx := range candidates {
		if err = s.txBatcher.Add(ctx, tx); err != nil {
			return err
		}
		for _, t := range tx.Transfers {
			if err = s.transferBatcher.Add(ctx, t); err != nil {
				return err
			}
		}
	}
	if err = s.transferBatcher.Flush(ctx); err != nil {
		return fmt.Errorf("flush transfers: %w", err)
	}
	if err = s.txBatcher.Flush(ctx); err != nil {
		return fmt.Errorf("flush transactions: %w", err)
	}
	fresh = candidates

	s.logger.Info("archived transactions",
		zap.String("blockchain_id", w.BlockchainID),
		zap.Int("count", len(fresh)),
	)

	if s.emitter == nil {
		return nil
	}
	watched := make(map[string]struct{}, len(w.Addresses))
	for _, a := range w.Addresses {
		watched[a] = struct{}{}
	}
	events := make([]emitter.TransactionEvent, 0, len(fresh))
	for _, tx := range fresh {
		events = append(events, emitter.NewTransactionEvent(tx, touchedAddresses(tx, watched)))
	}
	if err = s.emitter.Emit(ctx, events); err != nil {
		return fmt.Errorf("emit events: %w", err)
	}
	return nil
}

// confirmedUnique keeps the first occurrence of every confirmed transaction. Unconfirmed ones are
// picked up by a later pass once they have a height.
func confirmedUnique(txs []model.Transaction) []model.Transaction {
	seen := make(map[string]struct{}, len(txs))
	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.BlockHeight == nil {
			continue
		}
		if _, dup := seen[tx.Hash]; dup {
			continue
		}
		seen[tx.Hash] = struct{}{}
		out = append(out, tx)
	}
	return out
}

func touchedAddresses(tx model.Transaction, watched map[string]struct{}) []string {
	found := make(map[string]struct{})
	add := func(a *string) {
		if a == nil {
			return
		}
		if _, ok := watched[*a]; ok {
			found[*a] = struct{}{}
		}
	}
	for _, out := range tx.Outputs {
		for i := range out.Addresses {
			add(&out.Addresses[i])
		}
	}
	for _, t := range tx.Transfers {
		add(t.Source)
		add(t.Target)
	}
	add(tx.SenderAddress)
	add(tx.FromAddress)

	addresses := make([]string, 0, len(found))
	for a := range found {
		addresses = append(addresses, a)
	}
	slices.Sort(addresses)
	return addresses
}
