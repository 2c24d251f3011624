package address

import (
	"dispatch/internal/entities"
)

func CountryToDomain(c *CountryDB) *entities.Country {
	if c == nil {
		return nil
	}

	return &entities.Country{
		ID:   c.ID,
		Name: c.Name,
		Slug: c.Slug,
	}
}

func CityToDomain(c *CityDB) *entities.City {
	if c == nil {
		return nil
	}

	return &entities.City{
		ID:        c.ID,
		Name:      c.Name,
		CountryID: c.CountryID,
	}
}

func AddressToDomain(a *AddressDB) *entities.Address {
	if a == nil {
		return nil
	}

	return &entities.Address{
		ID:         a.ID,
		Via:        a.Via,
		Number:     a.Number,
		Door:       a.Door,
		Floor:      a.Floor,
		PostalCode: a.PostalCode,
		CityID:     a.CityID,
		CreatedAt:  a.CreatedAt,
	}
}

// toDomainList общий конвертер списков, пустой результат всегда не nil.
func toDomainList[DB any, E any](models []DB, convert func(*DB) *E) []E {
	result := make([]E, len(models))
	for i := range models {
		result[i] = *convert(&models[i])
	}
	return result
}
