// Package backend builds the configured system client.
package backend

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/blockset"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/dispatch"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/explorer"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/noderpc"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/script"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/utxo"
)

var errBlockchainIDRequired = errors.New("blockchain id is required for node and explorer backends")

// New builds the client cfg selects. executor may be nil, in which case an http.Client with
// cfg.HTTPTimeout is used. Every HTTP exchange and every operation is recorded in metrics.
func New(cfg Config, executor dispatch.HTTPExecutor, logger *zap.Logger) (sysclient.Client, error) {
	if executor == nil {
		executor = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	version, ok := model.ParseCapabilityVersion(cfg.Capabilities)
	if !ok {
		return nil, fmt.Errorf("unknown capability version %q", cfg.Capabilities)
	}
	caps := model.LookupCapabilities(version)

	logger = logger.With(zap.String("backend", cfg.Kind))
	observed := dispatch.NewObservedExecutor(executor, metrics.NewDispatcher(cfg.Kind))
	opts := []dispatch.Option{dispatch.WithRateLimit(cfg.RPS)}
	switch cfg.Kind {
	case KindBlockset:
		opts = append(opts, dispatch.WithBearerToken(cfg.Token))
	case KindNode:
		if cfg.RPCUser != "" {
			opts = append(opts, dispatch.WithDecorator(dispatch.BasicAuth(cfg.RPCUser, cfg.RPCPassword)))
		}
	}

	d, err := dispatch.New(cfg.URL, observed, caps, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("init dispatcher: %w", err)
	}

	client, err := build(cfg, d, logger)
	if err != nil {
		return nil, err
	}
	return NewObservedClient(client, metrics.NewClient(cfg.Kind)), nil
}

func build(cfg Config, d *dispatch.Dispatcher, logger *zap.Logger) (sysclient.Client, error) {
	if cfg.Kind == KindBlockset {
		return blockset.New(d, blockset.NewMapper(d.Capabilities(), logger), logger), nil
	}

	if cfg.BlockchainID == "" {
		return nil, errBlockchainIDRequired
	}
	info := utxo.ChainInfo{BlockchainID: cfg.BlockchainID, ConfirmationsUntilFinal: cfg.ConfirmationsUntilFinal}

	switch cfg.Kind {
	case KindNode:
		params, err := script.ChainParams(cfg.Network)
		if err != nil {
			return nil, err
		}
		mapper := noderpc.NewMapper(info, params, logger)
		return noderpc.New(d, mapper, cfg.BlockchainID, logger, noderpc.WithWorkers(cfg.Workers)), nil
	case KindExplorer:
		params, err := script.ChainParams(explorer.Network(cfg.BlockchainID))
		if err != nil {
			return nil, err
		}
		mapper := explorer.NewMapper(info, params, explorer.NewFetcher(d, cfg.BlockchainID), logger)
		return explorer.New(d, mapper, cfg.BlockchainID, logger, explorer.WithWorkers(cfg.Workers)), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Kind)
	}
}
