//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pending_dispatch_test
package pending_dispatch

import (
	"context"

	"dispatch/pkg/logger"
)

type Service interface {
	DispatchPending(ctx context.Context, batchSize int) (int, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
