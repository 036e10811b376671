// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"time"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const healthCheckTimeout = 5 * time.Second

// ExplorerHandler implements ExplorerServiceServer. Health checks the configured backend.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer
	backend Backend
	logger  *zap.Logger
}

// NewExplorerHandler returns an ExplorerHandler instance.
func NewExplorerHandler(backend Backend, logger *zap.Logger) blockinsight7000v1.ExplorerServiceServer {
	return &ExplorerHandler{backend: backend, logger: logger}
}

// Health reports healthy when the backend answers a blockchain listing.
func (h *ExplorerHandler) Health(ctx context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if _, err := h.backend.GetBlockchains(ctx, nil); err != nil {
		h.logger.Warn("backend health check failed", zap.Error(err))
		return nil, status.Errorf(codes.Unavailable, "backend unavailable: %v", err)
	}
	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: "",
	}, nil
}
