//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"dispatch/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (*entities.User, error)
}

type Notifier interface {
	Notify(ctx context.Context, phone, message string) error
}

type (
	ExecuteFn      func(ctx context.Context, event entities.OrderEvent) error
	HandlerFactory interface {
		GetHandler(eventType entities.OrderEventType) (ExecuteFn, error)
	}
)
