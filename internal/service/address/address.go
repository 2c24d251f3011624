package address

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) CreateCountry(ctx context.Context, countryModify entities.CountryModify) (int64, error) {
	if countryModify.Name == nil || countryModify.Slug == nil {
		return 0, ErrMissingRequiredFields
	}
	if !isValidText(*countryModify.Name, maxNameLength) {
		return 0, ErrInvalidName
	}
	if !isValidSlug(*countryModify.Slug) {
		return 0, ErrInvalidSlug
	}

	id, err := s.repository.CreateCountry(ctx, countryModify)
	if err != nil {
		return 0, fmt.Errorf("create country: %w", err)
	}
	return id, nil
}

func (s *Service) GetCountries(ctx context.Context) ([]entities.Country, error) {
	countries, err := s.repository.GetCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get countries: %w", err)
	}
	return countries, nil
}

func (s *Service) CreateCity(ctx context.Context, cityModify entities.CityModify) (int64, error) {
	if cityModify.Name == nil || cityModify.CountryID == nil {
		return 0, ErrMissingRequiredFields
	}
	if !isValidText(*cityModify.Name, maxNameLength) {
		return 0, ErrInvalidName
	}
	if *cityModify.CountryID <= 0 {
		return 0, ErrInvalidCountryID
	}

	id, err := s.repository.CreateCity(ctx, cityModify)
	if err != nil {
		return 0, fmt.Errorf("create city: %w", err)
	}
	return id, nil
}

func (s *Service) GetCities(ctx context.Context, filter entities.CityFilter) ([]entities.City, error) {
	if filter.CountryID != nil && *filter.CountryID <= 0 {
		return nil, ErrInvalidCountryID
	}

	cities, err := s.repository.GetCities(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get cities: %w", err)
	}
	return cities, nil
}

func (s *Service) CreateAddress(ctx context.Context, addressModify entities.AddressModify) (int64, error) {
	if addressModify.Via == nil ||
		addressModify.Number == nil ||
		addressModify.PostalCode == nil ||
		addressModify.CityID == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidText(*addressModify.Via, maxViaLength) {
		return 0, ErrInvalidVia
	}
	if !isValidText(*addressModify.Number, maxShortFieldLength) {
		return 0, ErrInvalidNumber
	}
	if !isValidOptional(addressModify.Door, maxShortFieldLength) ||
		!isValidOptional(addressModify.Floor, maxShortFieldLength) {
		return 0, ErrInvalidDoorOrFloor
	}
	if !isValidPostalCode(*addressModify.PostalCode) {
		return 0, ErrInvalidPostalCode
	}
	if *addressModify.CityID <= 0 {
		return 0, ErrInvalidCityID
	}

	id, err := s.repository.CreateAddress(ctx, addressModify)
	if err != nil {
		return 0, fmt.Errorf("create address: %w", err)
	}
	return id, nil
}

func (s *Service) GetAddress(ctx context.Context, id int64) (*entities.Address, error) {
	if id <= 0 {
		return nil, ErrInvalidAddressID
	}

	address, err := s.repository.GetAddressByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	return address, nil
}

func (s *Service) GetAddresses(ctx context.Context) ([]entities.Address, error) {
	addresses, err := s.repository.GetAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get addresses: %w", err)
	}
	return addresses, nil
}
