package kafka_middleware

import (
	"context"
	"sync/atomic"
	"time"

	"drportal/pkg/kafka"
)

// Metrics accumulates Kafka operation counters. All fields are updated
// atomically so a single instance can be shared across middlewares.
type Metrics struct {
	MessagesPublished       int64
	MessagesPublishedFailed int64
	publishDurationTotal    int64

	MessagesConsumed       int64
	MessagesConsumedFailed int64
	consumeDurationTotal   int64
}

var globalMetrics = &Metrics{}

// GetMetrics returns the process-wide metrics instance.
func GetMetrics() *Metrics {
	return globalMetrics
}

// Reset zeroes all counters.
func (m *Metrics) Reset() {
	atomic.StoreInt64(&m.MessagesPublished, 0)
	atomic.StoreInt64(&m.MessagesPublishedFailed, 0)
	atomic.StoreInt64(&m.publishDurationTotal, 0)
	atomic.StoreInt64(&m.MessagesConsumed, 0)
	atomic.StoreInt64(&m.MessagesConsumedFailed, 0)
	atomic.StoreInt64(&m.consumeDurationTotal, 0)
}

// Snapshot captures current counter values for logging.
type Snapshot struct {
	Published          int64
	PublishedFailed    int64
	AvgPublishDuration time.Duration
	Consumed           int64
	ConsumedFailed     int64
	AvgConsumeDuration time.Duration
}

func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Published:          atomic.LoadInt64(&m.MessagesPublished),
		PublishedFailed:    atomic.LoadInt64(&m.MessagesPublishedFailed),
		AvgPublishDuration: m.avgDuration(&m.publishDurationTotal, &m.MessagesPublished),
		Consumed:           atomic.LoadInt64(&m.MessagesConsumed),
		ConsumedFailed:     atomic.LoadInt64(&m.MessagesConsumedFailed),
		AvgConsumeDuration: m.avgDuration(&m.consumeDurationTotal, &m.MessagesConsumed),
	}
}

func (m *Metrics) avgDuration(total, count *int64) time.Duration {
	n := atomic.LoadInt64(count)
	if n == 0 {
		return 0
	}
	return time.Duration(atomic.LoadInt64(total) / n)
}

// MetricsProducerMiddleware counts publish attempts and their latency.
func MetricsProducerMiddleware() kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		start := time.Now()

		err := next(ctx, msg)

		atomic.AddInt64(&globalMetrics.publishDurationTotal, int64(time.Since(start)))
		if err != nil {
			atomic.AddInt64(&globalMetrics.MessagesPublishedFailed, 1)
		} else {
			atomic.AddInt64(&globalMetrics.MessagesPublished, 1)
		}

		return err
	}
}

// MetricsConsumerMiddleware counts handled messages and their latency.
func MetricsConsumerMiddleware() kafka.ConsumerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		start := time.Now()

		err := next(ctx, msg)

		atomic.AddInt64(&globalMetrics.consumeDurationTotal, int64(time.Since(start)))
		if err != nil {
			atomic.AddInt64(&globalMetrics.MessagesConsumedFailed, 1)
		} else {
			atomic.AddInt64(&globalMetrics.MessagesConsumed, 1)
		}

		return err
	}
}
