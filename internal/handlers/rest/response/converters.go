package response

import (
	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
)

func UserFromEntity(user entities.User) dto.User {
	return dto.User{
		ID:        user.ID,
		Name:      user.Name,
		Lastname:  user.Lastname,
		Email:     user.Email,
		Phone:     user.Phone,
		Type:      user.Type.String(),
		CreatedAt: user.CreatedAt,
	}
}

func CountryFromEntity(country entities.Country) dto.Country {
	return dto.Country{
		ID:   country.ID,
		Name: country.Name,
		Slug: country.Slug,
	}
}

func CityFromEntity(city entities.City) dto.City {
	return dto.City{
		ID:        city.ID,
		Name:      city.Name,
		CountryID: city.CountryID,
	}
}

func AddressFromEntity(address entities.Address) dto.Address {
	return dto.Address{
		ID:         address.ID,
		Via:        address.Via,
		Number:     address.Number,
		Door:       address.Door,
		Floor:      address.Floor,
		PostalCode: address.PostalCode,
		CityID:     address.CityID,
		CreatedAt:  address.CreatedAt,
	}
}

func OrderFromEntity(order entities.Order) dto.Order {
	result := dto.Order{
		ID:                order.ID,
		Name:              order.Name,
		Lastname:          order.Lastname,
		Email:             order.Email,
		Phone:             order.Phone,
		DeliveryDate:      entities.FormatDate(order.DeliveryDate),
		DeliveryStartTime: order.DeliveryStartTime.String(),
		DeliveryEndTime:   order.DeliveryEndTime.String(),
		ClientID:          order.ClientID,
		AddressID:         order.AddressID,
		Status:            order.Assignment.Status.String(),
		CreatedAt:         order.CreatedAt,
	}
	if order.Assignment.IsAssigned() {
		driverID := order.Assignment.DriverID
		result.DriverID = &driverID
	}
	return result
}

// FromEntities конвертирует список, nil превращается в пустой массив JSON.
func FromEntities[E any, D any](items []E, convert func(E) D) []D {
	result := make([]D, 0, len(items))
	for _, item := range items {
		result = append(result, convert(item))
	}
	return result
}
