package order

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

// DispatchPending назначает водителей заказам в pending, начиная с самых старых.
// Возвращает число назначенных заказов. Если водителей по-прежнему нет,
// заказы остаются в pending до следующего прохода.
func (s *Service) DispatchPending(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		return 0, nil
	}

	assigned := 0
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		pending, err := s.repository.GetPendingForUpdate(ctx, batchSize)
		if err != nil {
			return fmt.Errorf("get pending orders: %w", err)
		}
		if len(pending) == 0 {
			return nil
		}

		drivers, err := s.userService.GetDrivers(ctx)
		if err != nil {
			return fmt.Errorf("get drivers: %w", err)
		}
		DriverPoolSize.Set(float64(len(drivers)))

		for _, order := range pending {
			driver, err := s.policy.Select(drivers)
			if errors.Is(err, ErrNoDriverAvailable) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("select driver: %w", err)
			}

			updated, err := s.repository.Assign(ctx, order.ID, driver.ID)
			if err != nil {
				if errors.Is(err, ErrAlreadyAssigned) {
					continue
				}
				return fmt.Errorf("assign order %d: %w", order.ID, err)
			}

			err = s.publisher.Enqueue(ctx, entities.NewOrderEvent(updated, s.now()))
			if err != nil {
				return fmt.Errorf("enqueue order event: %w", err)
			}
			assigned++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	DriverAssignmentsTotal.WithLabelValues(s.policy.Name(), sourceDispatch).Add(float64(assigned))
	return assigned, nil
}
