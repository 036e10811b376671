package emitter

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/segmentio/kafka-go"
)

type (
	// MessageWriter is the part of *kafka.Writer the emitter uses.
	MessageWriter interface {
		WriteMessages(ctx context.Context, msgs ...kafka.Message) error
		Close() error
	}

	PublishMetrics interface {
		ObservePublish(err error, count int)
	}
)
