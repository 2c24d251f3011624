package event_handle

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/notification"
)

type EventHandlerFactory struct {
	userService notification.UserService
	notifier    notification.Notifier
}

func NewEventHandlerFactory(userService notification.UserService, notifier notification.Notifier) *EventHandlerFactory {
	return &EventHandlerFactory{
		userService: userService,
		notifier:    notifier,
	}
}

func (f *EventHandlerFactory) GetHandler(eventType entities.OrderEventType) (notification.ExecuteFn, error) {
	switch eventType {
	case entities.OrderEventAssigned:
		return f.assignedHandler, nil
	case entities.OrderEventPending:
		return f.pendingHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", notification.ErrUndefinedEventType, eventType)
	}
}

func (f *EventHandlerFactory) assignedHandler(ctx context.Context, event entities.OrderEvent) error {
	if event.DriverID == nil {
		return notification.ErrMissingDriver
	}

	driver, err := f.userService.GetUser(ctx, *event.DriverID)
	if err != nil {
		return fmt.Errorf("get driver %d for order %d: %w", *event.DriverID, event.OrderID, err)
	}

	err = f.notifier.Notify(ctx, driver.Phone, AssignedMessage(event))
	if err != nil {
		return fmt.Errorf("notify driver %d about order %d: %w", driver.ID, event.OrderID, err)
	}
	return nil
}

func (f *EventHandlerFactory) pendingHandler(ctx context.Context, event entities.OrderEvent) error {
	client, err := f.userService.GetUser(ctx, event.ClientID)
	if err != nil {
		return fmt.Errorf("get client %d for order %d: %w", event.ClientID, event.OrderID, err)
	}

	err = f.notifier.Notify(ctx, client.Phone, PendingMessage(event))
	if err != nil {
		return fmt.Errorf("notify client %d about order %d: %w", client.ID, event.OrderID, err)
	}
	return nil
}

func AssignedMessage(event entities.OrderEvent) string {
	return fmt.Sprintf("Order #%d assigned to you: delivery on %s between %s and %s",
		event.OrderID,
		entities.FormatDate(event.DeliveryDate),
		event.DeliveryStartTime,
		event.DeliveryEndTime,
	)
}

func PendingMessage(event entities.OrderEvent) string {
	return fmt.Sprintf("Order #%d accepted for %s, a driver will be assigned shortly",
		event.OrderID,
		entities.FormatDate(event.DeliveryDate),
	)
}
