//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_driver_get_test
package orders_driver_get

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	OrdersForDriver(ctx context.Context, driverID int64, date time.Time) ([]entities.Order, error)
}
