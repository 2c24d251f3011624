//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	GetForDriverOnDate(ctx context.Context, driverID int64, date time.Time) ([]entities.Order, error)

	// GetPendingForUpdate блокирует строки до конца транзакции (SKIP LOCKED).
	GetPendingForUpdate(ctx context.Context, limit int) ([]entities.Order, error)
	Assign(ctx context.Context, orderID, driverID int64) (*entities.Order, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (*entities.User, error)
	GetDrivers(ctx context.Context) ([]entities.User, error)
}

type AddressService interface {
	GetAddress(ctx context.Context, id int64) (*entities.Address, error)
}

type DriverSelectionPolicy interface {
	Select(pool []entities.User) (*entities.User, error)
	Name() string
}

type EventPublisher interface {
	Enqueue(ctx context.Context, event entities.OrderEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
