//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=countries_post_test
package countries_post

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
	CreateCountry(ctx context.Context, countryModify entities.CountryModify) (int64, error)
}
