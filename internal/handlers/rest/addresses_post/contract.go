//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=addresses_post_test
package addresses_post

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
	CreateAddress(ctx context.Context, addressModify entities.AddressModify) (int64, error)
}
