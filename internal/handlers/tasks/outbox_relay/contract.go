//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_relay_test
package outbox_relay

import (
	"context"

	"dispatch/pkg/logger"
)

type Service interface {
	RelayBatch(ctx context.Context, batchSize int) (int, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
