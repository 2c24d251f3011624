package fixtures

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/address"
	"dispatch/internal/service/user"
	"dispatch/pkg/logger"

	"github.com/AlekSi/pointer"
)

const (
	UsersPerType  = 5
	AddressCount  = 5
	CountryName   = "Spain"
	CountrySlug   = "spain"
	CityName      = "Madrid"
	PostalCode    = "28028"
	AddressDoor   = "A"
	clientPhone   = "3462263168 %d"
	driverPhone   = "3462262168 %d"
	addressViaFmt = "Pilar de zaragoza %d"
)

// Result идентификаторы созданных записей. Уже существующие пользователи в него не попадают.
type Result struct {
	ClientIDs  []int64
	DriverIDs  []int64
	CountryID  int64
	CityID     int64
	AddressIDs []int64
}

type Seeder struct {
	log       seedLogger
	users     UserService
	addresses AddressService
}

func New(log seedLogger, users UserService, addresses AddressService) *Seeder {
	return &Seeder{
		log:       log,
		users:     users,
		addresses: addresses,
	}
}

// Seed наполняет пустую базу демонстрационными данными через сервисы,
// поэтому данные проходят ту же валидацию, что и запросы API.
// Повторный запуск пропускает существующих пользователей, страну и город,
// а адреса создаёт только вместе с новым городом.
func (s *Seeder) Seed(ctx context.Context) (*Result, error) {
	result := &Result{}

	clients, err := s.seedUsers(ctx, entities.UserClient, clientPhone)
	if err != nil {
		return nil, err
	}
	result.ClientIDs = clients

	drivers, err := s.seedUsers(ctx, entities.UserDriver, driverPhone)
	if err != nil {
		return nil, err
	}
	result.DriverIDs = drivers

	countryID, err := s.seedCountry(ctx)
	if err != nil {
		return nil, err
	}
	result.CountryID = countryID

	cityID, created, err := s.seedCity(ctx, countryID)
	if err != nil {
		return nil, err
	}
	result.CityID = cityID

	if created {
		addressIDs, err := s.seedAddresses(ctx, cityID)
		if err != nil {
			return nil, err
		}
		result.AddressIDs = addressIDs
	}

	s.log.Info("fixtures loaded",
		logger.NewField("clients", len(result.ClientIDs)),
		logger.NewField("drivers", len(result.DriverIDs)),
		logger.NewField("addresses", len(result.AddressIDs)),
	)
	return result, nil
}

func (s *Seeder) seedUsers(ctx context.Context, userType entities.UserType, phoneFmt string) ([]int64, error) {
	ids := make([]int64, 0, UsersPerType)
	for i := range UsersPerType {
		id, err := s.users.CreateUser(ctx, entities.UserModify{
			Name:     pointer.To(fmt.Sprintf("name%d", i)),
			Lastname: pointer.To(fmt.Sprintf("lastname%d", i)),
			Email:    pointer.To(fmt.Sprintf("%s%d@email.com", userType, i)),
			Phone:    pointer.To(fmt.Sprintf(phoneFmt, i)),
			Type:     pointer.To(userType),
		})
		if errors.Is(err, user.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create %s %d: %w", userType, i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *Seeder) seedCountry(ctx context.Context) (int64, error) {
	id, err := s.addresses.CreateCountry(ctx, entities.CountryModify{
		Name: pointer.To(CountryName),
		Slug: pointer.To(CountrySlug),
	})
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, address.ErrConflict) {
		return 0, fmt.Errorf("create country: %w", err)
	}

	countries, err := s.addresses.GetCountries(ctx)
	if err != nil {
		return 0, fmt.Errorf("get countries: %w", err)
	}
	for _, country := range countries {
		if country.Slug == CountrySlug {
			return country.ID, nil
		}
	}
	return 0, fmt.Errorf("country %q: %w", CountrySlug, address.ErrCountryNotFound)
}

func (s *Seeder) seedCity(ctx context.Context, countryID int64) (int64, bool, error) {
	id, err := s.addresses.CreateCity(ctx, entities.CityModify{
		Name:      pointer.To(CityName),
		CountryID: pointer.To(countryID),
	})
	if err == nil {
		return id, true, nil
	}
	if !errors.Is(err, address.ErrConflict) {
		return 0, false, fmt.Errorf("create city: %w", err)
	}

	cities, err := s.addresses.GetCities(ctx, entities.CityFilter{CountryID: pointer.To(countryID)})
	if err != nil {
		return 0, false, fmt.Errorf("get cities: %w", err)
	}
	for _, city := range cities {
		if city.Name == CityName {
			return city.ID, false, nil
		}
	}
	return 0, false, fmt.Errorf("city %q: %w", CityName, address.ErrCityNotFound)
}

func (s *Seeder) seedAddresses(ctx context.Context, cityID int64) ([]int64, error) {
	ids := make([]int64, 0, AddressCount)
	for i := range AddressCount {
		id, err := s.addresses.CreateAddress(ctx, entities.AddressModify{
			Via:        pointer.To(fmt.Sprintf(addressViaFmt, i)),
			Number:     pointer.To(fmt.Sprint(i)),
			Door:       pointer.To(AddressDoor),
			Floor:      pointer.To(fmt.Sprint(i)),
			PostalCode: pointer.To(PostalCode),
			CityID:     pointer.To(cityID),
		})
		if err != nil {
			return nil, fmt.Errorf("create address %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
