package pending_dispatch

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type PendingDispatch struct {
	log       taskLogger
	service   Service
	interval  time.Duration
	batchSize int
}

func NewPendingDispatch(log taskLogger, service Service, interval time.Duration, batchSize int) *PendingDispatch {
	return &PendingDispatch{
		log:       log,
		service:   service,
		interval:  interval,
		batchSize: batchSize,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (p *PendingDispatch) TTL() time.Duration {
	return p.interval
}

// Do назначает водителей заказам, ожидающим назначения.
func (p *PendingDispatch) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	assigned, err := p.service.DispatchPending(ctxWithTimeout, p.batchSize)
	if err != nil {
		return err
	}

	if assigned > 0 {
		p.log.With(
			logger.NewField("assigned", assigned),
		).Info("pending dispatch")
	}
	return nil
}

// Info возвращает читаемое описание задачи для логгирования и отладки.
func (p *PendingDispatch) Info() string {
	return "pending dispatch"
}
