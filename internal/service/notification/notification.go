package notification

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

type Service struct {
	orderRepository OrderRepository
	eventFactory    HandlerFactory
}

func New(orderRepository OrderRepository, eventFactory HandlerFactory) *Service {
	return &Service{
		orderRepository: orderRepository,
		eventFactory:    eventFactory,
	}
}

// ProcessOrderEvent сверяет событие с текущим состоянием заказа и уведомляет получателя.
// Устаревшие события (заказ уже в другом состоянии) возвращают ErrStatusMismatch.
func (s *Service) ProcessOrderEvent(ctx context.Context, event entities.OrderEvent) (*entities.Order, error) {
	order, err := s.orderRepository.GetByID(ctx, event.OrderID)
	if err != nil {
		NotificationsTotal.WithLabelValues(event.Type.String(), resultFailed).Inc()
		return nil, fmt.Errorf("get order %d: %w", event.OrderID, err)
	}

	executeFn, err := s.eventFactory.GetHandler(event.Type)
	if err != nil {
		// неизвестные типы событий просто пропускаем
		if errors.Is(err, ErrUndefinedEventType) {
			NotificationsTotal.WithLabelValues(event.Type.String(), resultSkipped).Inc()
			return order, nil
		}
		return order, err
	}

	err = matchOrderState(order, event)
	if err != nil {
		NotificationsTotal.WithLabelValues(event.Type.String(), resultSkipped).Inc()
		return order, err
	}

	err = executeFn(ctx, event)
	if err != nil {
		NotificationsTotal.WithLabelValues(event.Type.String(), resultFailed).Inc()
		return nil, err
	}

	NotificationsTotal.WithLabelValues(event.Type.String(), resultSent).Inc()
	return order, nil
}

func matchOrderState(order *entities.Order, event entities.OrderEvent) error {
	switch event.Type {
	case entities.OrderEventAssigned:
		if event.DriverID == nil {
			return ErrMissingDriver
		}
		if !order.Assignment.IsAssigned() || order.Assignment.DriverID != *event.DriverID {
			return fmt.Errorf("%w: order %d is %s", ErrStatusMismatch, order.ID, order.Assignment.Status)
		}
	case entities.OrderEventPending:
		if order.Assignment.IsAssigned() {
			return fmt.Errorf("%w: order %d is already assigned", ErrStatusMismatch, order.ID)
		}
	}
	return nil
}
