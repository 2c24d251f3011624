//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_test
package outbox

import (
	"context"

	"dispatch/internal/entities"

	"github.com/google/uuid"
)

type Repository interface {
	Insert(ctx context.Context, message entities.OutboxMessage) error
	FetchBatchForUpdate(ctx context.Context, limit int) ([]entities.OutboxMessage, error)
	Delete(ctx context.Context, ids []uuid.UUID) (int64, error)
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}

type Producer interface {
	Publish(ctx context.Context, message entities.OutboxMessage) error
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
