package entities

import (
	"time"

	"github.com/google/uuid"
)

type OrderEventType string

const (
	OrderEventAssigned OrderEventType = "order.assigned"
	OrderEventPending  OrderEventType = "order.pending"
)

func (t OrderEventType) String() string {
	return string(t)
}

// OrderEvent факт о заказе, который уходит наружу через outbox.
type OrderEvent struct {
	ID                uuid.UUID
	Type              OrderEventType
	OrderID           int64
	ClientID          int64
	DriverID          *int64
	DeliveryDate      time.Time
	DeliveryStartTime TimeOfDay
	DeliveryEndTime   TimeOfDay
	OccurredAt        time.Time
}

func NewOrderEvent(order *Order, occurredAt time.Time) OrderEvent {
	event := OrderEvent{
		ID:                uuid.New(),
		Type:              OrderEventPending,
		OrderID:           order.ID,
		ClientID:          order.ClientID,
		DeliveryDate:      order.DeliveryDate,
		DeliveryStartTime: order.DeliveryStartTime,
		DeliveryEndTime:   order.DeliveryEndTime,
		OccurredAt:        occurredAt,
	}
	if order.Assignment.IsAssigned() {
		driverID := order.Assignment.DriverID
		event.Type = OrderEventAssigned
		event.DriverID = &driverID
	}
	return event
}

type OutboxMessage struct {
	ID          uuid.UUID
	EventType   OrderEventType
	AggregateID int64
	Payload     []byte
	Attempts    int
	LastError   string
	CreatedAt   time.Time
}
