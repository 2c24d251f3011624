package outbox_relay

import (
	"context"
	"fmt"
	"time"

	"dispatch/pkg/logger"
)

type OutboxRelay struct {
	log       taskLogger
	service   Service
	interval  time.Duration
	batchSize int
}

func NewOutboxRelay(log taskLogger, service Service, interval time.Duration, batchSize int) *OutboxRelay {
	return &OutboxRelay{
		log:       log,
		service:   service,
		interval:  interval,
		batchSize: batchSize,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

// Do публикует одну пачку событий. Недоставленные остаются в outbox до следующего запуска.
func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	published, err := o.service.RelayBatch(ctxWithTimeout, o.batchSize)
	if err != nil {
		return fmt.Errorf("relay outbox batch: %w", err)
	}

	if published > 0 {
		o.log.With(
			logger.NewField("published", published),
		).Info("outbox relay")
	}
	return nil
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
