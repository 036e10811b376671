// Package emitter publishes archive events to Kafka.
package emitter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

// TransactionEvent announces a transaction archived for the first time.
type TransactionEvent struct {
	BlockchainID string                  `json:"blockchain_id"`
	ID           string                  `json:"id"`
	Hash         string                  `json:"hash"`
	Status       model.TransactionStatus `json:"status"`
	Type         model.TransactionType   `json:"type,omitempty"`
	BlockHeight  *uint64                 `json:"block_height,omitempty"`
	Timestamp    *time.Time              `json:"timestamp,omitempty"`
	Addresses    []string                `json:"addresses,omitempty"`
}

// NewTransactionEvent builds the event for tx; addresses are the watched addresses it touched.
func NewTransactionEvent(tx model.Transaction, addresses []string) TransactionEvent {
	return TransactionEvent{
		BlockchainID: tx.BlockchainID,
		ID:           tx.ID,
		Hash:         tx.Hash,
		Status:       tx.Status,
		Type:         tx.Type,
		BlockHeight:  tx.BlockHeight,
		Timestamp:    tx.Timestamp,
		Addresses:    addresses,
	}
}

// EventIDHeader carries a random id per message so consumers can drop redeliveries.
const EventIDHeader = "event-id"

// KafkaEmitter writes TransactionEvents as JSON keyed by transaction hash.
type KafkaEmitter struct {
	writer  MessageWriter
	metrics PublishMetrics
	logger  *zap.Logger
}

// NewKafkaEmitter creates an emitter writing to topic on the given brokers.
func NewKafkaEmitter(brokers []string, topic string, batchTimeout time.Duration, metrics PublishMetrics, logger *zap.Logger) *KafkaEmitter {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: batchTimeout,
	}
	return NewEmitter(writer, metrics, logger)
}

// NewEmitter builds an emitter on top of an existing writer.
func NewEmitter(writer MessageWriter, metrics PublishMetrics, logger *zap.Logger) *KafkaEmitter {
	return &KafkaEmitter{
		writer:  writer,
		metrics: metrics,
		logger:  logger.Named("emitter"),
	}
}

// Emit publishes events in one write.
func (k *KafkaEmitter) Emit(ctx context.Context, events []TransactionEvent) (err error) {
	defer func() {
		k.metrics.ObservePublish(err, len(events))
	}()

	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", e.ID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:     []byte(e.Hash),
			Value:   value,
			Headers: []kafka.Header{{Key: EventIDHeader, Value: []byte(uuid.NewString())}},
		})
	}

	if err = k.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write messages: %w", err)
	}

	k.logger.Debug("events published", zap.Int("count", len(events)))
	return nil
}

func (k *KafkaEmitter) Close() error {
	return k.writer.Close()
}
