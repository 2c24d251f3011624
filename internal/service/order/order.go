package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/address"
	"dispatch/internal/service/user"
)

type Settings struct {
	// PendingOnNoDriver сохраняет заказ в pending вместо отказа, если водителей нет.
	PendingOnNoDriver bool
}

type Service struct {
	repository     Repository
	userService    UserService
	addressService AddressService
	policy         DriverSelectionPolicy
	publisher      EventPublisher
	txManager      TxManager
	settings       Settings
	now            func() time.Time
}

func New(
	repository Repository,
	userService UserService,
	addressService AddressService,
	policy DriverSelectionPolicy,
	publisher EventPublisher,
	txManager TxManager,
	settings Settings,
) *Service {
	return &Service{
		repository:     repository,
		userService:    userService,
		addressService: addressService,
		policy:         policy,
		publisher:      publisher,
		txManager:      txManager,
		settings:       settings,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrder валидирует заказ, назначает водителя и сохраняет заказ вместе с событием.
// При ошибке валидации или отсутствии водителя ничего не сохраняется
// (кроме режима PendingOnNoDriver).
func (s *Service) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	violations := validateOrder(&orderModify)
	if len(violations) > 0 {
		OrdersCreatedTotal.WithLabelValues(resultRejected).Inc()
		return nil, &ValidationError{Violations: violations}
	}

	draft := newOrder(&orderModify)

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		violations, err := s.checkReferencedEntities(ctx, &draft)
		if err != nil {
			return err
		}
		if len(violations) > 0 {
			return &ValidationError{Violations: violations}
		}

		assignment, err := s.chooseAssignment(ctx)
		if err != nil {
			return err
		}
		draft.Assignment = assignment

		created, err = s.repository.Create(ctx, draft)
		if err != nil {
			return fmt.Errorf("save order: %w", err)
		}

		err = s.publisher.Enqueue(ctx, entities.NewOrderEvent(created, s.now()))
		if err != nil {
			return fmt.Errorf("enqueue order event: %w", err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			OrdersCreatedTotal.WithLabelValues(resultRejected).Inc()
		case errors.Is(err, ErrNoDriverAvailable):
			OrdersCreatedTotal.WithLabelValues(resultNoDriver).Inc()
		default:
			OrdersCreatedTotal.WithLabelValues(resultStoreError).Inc()
		}
		return nil, err
	}

	if created.Assignment.IsAssigned() {
		OrdersCreatedTotal.WithLabelValues(resultAssigned).Inc()
		DriverAssignmentsTotal.WithLabelValues(s.policy.Name(), sourceCreation).Inc()
	} else {
		OrdersCreatedTotal.WithLabelValues(resultPending).Inc()
	}

	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *Service) GetOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.DeliveryDate != nil {
		date := entities.DateOf(*filter.DeliveryDate)
		filter.DeliveryDate = &date
	}

	orders, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

// OrdersForDriver возвращает заказы водителя на календарную дату, отсортированные
// по началу окна доставки. Неизвестный водитель или пользователь-клиент дают пустой список.
func (s *Service) OrdersForDriver(ctx context.Context, driverID int64, date time.Time) ([]entities.Order, error) {
	if driverID <= 0 {
		return []entities.Order{}, nil
	}

	driver, err := s.userService.GetUser(ctx, driverID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return []entities.Order{}, nil
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}
	if driver.Type != entities.UserDriver {
		return []entities.Order{}, nil
	}

	orders, err := s.repository.GetForDriverOnDate(ctx, driverID, entities.DateOf(date))
	if err != nil {
		return nil, fmt.Errorf("get orders for driver: %w", err)
	}
	return orders, nil
}

func (s *Service) checkReferencedEntities(ctx context.Context, draft *entities.Order) ([]FieldViolation, error) {
	var violations []FieldViolation

	client, err := s.userService.GetUser(ctx, draft.ClientID)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		violations = append(violations, FieldViolation{Field: fieldClientID, Message: "client does not exist"})
	case err != nil:
		return nil, fmt.Errorf("get client: %w", err)
	case client.Type != entities.UserClient:
		violations = append(violations, FieldViolation{Field: fieldClientID, Message: "user is not a client"})
	}

	_, err = s.addressService.GetAddress(ctx, draft.AddressID)
	switch {
	case errors.Is(err, address.ErrAddressNotFound):
		violations = append(violations, FieldViolation{Field: fieldAddressID, Message: "address does not exist"})
	case err != nil:
		return nil, fmt.Errorf("get address: %w", err)
	}

	return violations, nil
}

func (s *Service) chooseAssignment(ctx context.Context) (entities.Assignment, error) {
	drivers, err := s.userService.GetDrivers(ctx)
	if err != nil {
		return entities.Assignment{}, fmt.Errorf("get drivers: %w", err)
	}
	DriverPoolSize.Set(float64(len(drivers)))

	driver, err := s.policy.Select(drivers)
	switch {
	case err == nil:
		return entities.AssignedTo(driver.ID), nil
	case errors.Is(err, ErrNoDriverAvailable) && s.settings.PendingOnNoDriver:
		return entities.PendingAssignment(), nil
	default:
		return entities.Assignment{}, fmt.Errorf("select driver: %w", err)
	}
}

func newOrder(modify *entities.OrderModify) entities.Order {
	return entities.Order{
		Name:              *modify.Name,
		Lastname:          *modify.Lastname,
		Email:             *modify.Email,
		Phone:             *modify.Phone,
		DeliveryDate:      entities.DateOf(*modify.DeliveryDate),
		DeliveryStartTime: *modify.DeliveryStartTime,
		DeliveryEndTime:   *modify.DeliveryEndTime,
		ClientID:          *modify.ClientID,
		AddressID:         *modify.AddressID,
	}
}
