package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"

	"github.com/google/uuid"
)

var ErrMalformedEvent = errors.New("malformed order event")

// OrderEventMessage формат события заказа в топике Kafka и в payload outbox.
type OrderEventMessage struct {
	ID                string `json:"event_id"`
	Type              string `json:"event_type"`
	OrderID           int64  `json:"order_id"`
	ClientID          int64  `json:"client_id"`
	DriverID          *int64 `json:"driver_id,omitempty"`
	DeliveryDate      string `json:"delivery_date"`
	DeliveryStartTime string `json:"delivery_start_time"`
	DeliveryEndTime   string `json:"delivery_end_time"`
	OccurredAt        string `json:"occurred_at"`
}

func Encode(event entities.OrderEvent) ([]byte, error) {
	message := OrderEventMessage{
		ID:                event.ID.String(),
		Type:              event.Type.String(),
		OrderID:           event.OrderID,
		ClientID:          event.ClientID,
		DriverID:          event.DriverID,
		DeliveryDate:      entities.FormatDate(event.DeliveryDate),
		DeliveryStartTime: event.DeliveryStartTime.String(),
		DeliveryEndTime:   event.DeliveryEndTime.String(),
		OccurredAt:        event.OccurredAt.UTC().Format(time.RFC3339Nano),
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("marshal order event: %w", err)
	}
	return payload, nil
}

func Decode(payload []byte) (entities.OrderEvent, error) {
	var message OrderEventMessage
	err := json.Unmarshal(payload, &message)
	if err != nil {
		return entities.OrderEvent{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}

	id, err := uuid.Parse(message.ID)
	if err != nil {
		return entities.OrderEvent{}, fmt.Errorf("%w: id: %w", ErrMalformedEvent, err)
	}
	date, err := entities.ParseDeliveryDate(message.DeliveryDate)
	if err != nil {
		return entities.OrderEvent{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	start, err := entities.ParseTimeOfDay(message.DeliveryStartTime)
	if err != nil {
		return entities.OrderEvent{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	end, err := entities.ParseTimeOfDay(message.DeliveryEndTime)
	if err != nil {
		return entities.OrderEvent{}, fmt.Errorf("%w: %w", ErrMalformedEvent, err)
	}
	occurredAt, err := time.Parse(time.RFC3339Nano, message.OccurredAt)
	if err != nil {
		return entities.OrderEvent{}, fmt.Errorf("%w: occurred_at: %w", ErrMalformedEvent, err)
	}

	return entities.OrderEvent{
		ID:                id,
		Type:              entities.OrderEventType(message.Type),
		OrderID:           message.OrderID,
		ClientID:          message.ClientID,
		DriverID:          message.DriverID,
		DeliveryDate:      date,
		DeliveryStartTime: start,
		DeliveryEndTime:   end,
		OccurredAt:        occurredAt,
	}, nil
}
