package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	archiveSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "archive_sync",
		Name:      "sync_total",
		Help:      "Count of archive sync passes per blockchain.",
	}, []string{"blockchain", "status"})

	archiveSyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "archive_sync",
		Name:      "sync_duration_seconds",
		Help:      "Duration of an archive sync pass.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"blockchain", "status"})

	archiveNewTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "archive_sync",
		Name:      "new_transactions_total",
		Help:      "Count of transactions archived for the first time.",
	}, []string{"blockchain"})

	emitterPublishTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "archive_emitter",
		Name:      "publish_total",
		Help:      "Count of transaction event publish attempts.",
	}, []string{"topic", "status"})
)

// ArchiveSync tracks metrics for the archive sync service.
type ArchiveSync struct{}

// NewArchiveSync constructs an ArchiveSync metrics collector.
func NewArchiveSync() *ArchiveSync {
	return &ArchiveSync{}
}

// ObserveSync records one pass over a blockchain and the number of new transactions found.
func (m ArchiveSync) ObserveSync(blockchainID string, err error, newTransactions int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if blockchainID == "" {
		blockchainID = "unknown"
	}

	archiveSyncTotal.WithLabelValues(blockchainID, status).Inc()
	archiveSyncDuration.WithLabelValues(blockchainID, status).Observe(time.Since(started).Seconds())
	if newTransactions > 0 {
		archiveNewTransactions.WithLabelValues(blockchainID).Add(float64(newTransactions))
	}
}

// Emitter tracks metrics for event publishing.
type Emitter struct {
	topic string
}

// NewEmitter constructs an Emitter metrics collector.
func NewEmitter(topic string) *Emitter {
	if topic == "" {
		topic = "unknown"
	}
	return &Emitter{topic: topic}
}

// ObservePublish records a publish attempt carrying count events.
func (m Emitter) ObservePublish(err error, count int) {
	status := "success"
	if err != nil {
		status = "error"
	}
	emitterPublishTotal.WithLabelValues(m.topic, status).Add(float64(count))
}
