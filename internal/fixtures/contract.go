//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fixtures_test
package fixtures

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type UserService interface {
	CreateUser(ctx context.Context, userModify entities.UserModify) (int64, error)
}

type AddressService interface {
	CreateCountry(ctx context.Context, countryModify entities.CountryModify) (int64, error)
	GetCountries(ctx context.Context) ([]entities.Country, error)
	CreateCity(ctx context.Context, cityModify entities.CityModify) (int64, error)
	GetCities(ctx context.Context, filter entities.CityFilter) ([]entities.City, error)
	CreateAddress(ctx context.Context, addressModify entities.AddressModify) (int64, error)
}

type seedLogger interface {
	Info(msg string, fields ...logger.Field)
}
