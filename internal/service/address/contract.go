//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=address_test
package address

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	CreateCountry(ctx context.Context, countryModify entities.CountryModify) (int64, error)
	GetCountries(ctx context.Context) ([]entities.Country, error)

	CreateCity(ctx context.Context, cityModify entities.CityModify) (int64, error)
	GetCities(ctx context.Context, filter entities.CityFilter) ([]entities.City, error)

	CreateAddress(ctx context.Context, addressModify entities.AddressModify) (int64, error)
	GetAddressByID(ctx context.Context, id int64) (*entities.Address, error)
	GetAddresses(ctx context.Context) ([]entities.Address, error)
}
