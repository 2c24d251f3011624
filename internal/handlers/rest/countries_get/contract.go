//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=countries_get_test
package countries_get

import (
	"context"

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
	GetCountries(ctx context.Context) ([]entities.Country, error)
}
