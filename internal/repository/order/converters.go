package order

import (
	"time"

	"dispatch/internal/entities"

	"github.com/jackc/pgx/v5/pgtype"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	assignment := entities.PendingAssignment()
	if entities.AssignmentStatus(o.Status) == entities.AssignmentAssigned && o.DriverID.Valid {
		assignment = entities.AssignedTo(o.DriverID.Int64)
	}

	return &entities.Order{
		ID:                o.ID,
		Name:              o.Name,
		Lastname:          o.Lastname,
		Email:             o.Email,
		Phone:             o.Phone,
		DeliveryDate:      entities.DateOf(o.DeliveryDate),
		DeliveryStartTime: timeOfDayFromDB(o.DeliveryStartTime),
		DeliveryEndTime:   timeOfDayFromDB(o.DeliveryEndTime),
		ClientID:          o.ClientID,
		AddressID:         o.AddressID,
		Assignment:        assignment,
		CreatedAt:         o.CreatedAt,
	}
}

func FromDomain(order *entities.Order) *OrderDB {
	if order == nil {
		return nil
	}

	orderDB := &OrderDB{
		ID:                order.ID,
		Name:              order.Name,
		Lastname:          order.Lastname,
		Email:             order.Email,
		Phone:             order.Phone,
		DeliveryDate:      entities.DateOf(order.DeliveryDate),
		DeliveryStartTime: timeOfDayToDB(order.DeliveryStartTime),
		DeliveryEndTime:   timeOfDayToDB(order.DeliveryEndTime),
		ClientID:          order.ClientID,
		AddressID:         order.AddressID,
		Status:            order.Assignment.Status.String(),
		CreatedAt:         order.CreatedAt,
	}
	if order.Assignment.IsAssigned() {
		orderDB.DriverID = pgtype.Int8{Int64: order.Assignment.DriverID, Valid: true}
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}

func timeOfDayFromDB(t pgtype.Time) entities.TimeOfDay {
	return entities.TimeOfDay(time.Duration(t.Microseconds) * time.Microsecond)
}

func timeOfDayToDB(t entities.TimeOfDay) pgtype.Time {
	return pgtype.Time{
		Microseconds: int64(t.Duration() / time.Microsecond),
		Valid:        true,
	}
}
