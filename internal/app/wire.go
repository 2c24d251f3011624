//go:build wireinject
// +build wireinject

package app

import (
	"context"

	notifierGateway "dispatch/internal/gateway/http/notifier"
	"dispatch/internal/handlers/tasks/outbox_relay"
	"dispatch/internal/handlers/tasks/pending_dispatch"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/driver_selection"
	"dispatch/internal/pkg/factory/event_handle"
	"dispatch/internal/pkg/kafka"

	addressRepo "dispatch/internal/repository/address"
	orderRepo "dispatch/internal/repository/order"
	outboxRepo "dispatch/internal/repository/outbox"
	userRepo "dispatch/internal/repository/user"
	addressService "dispatch/internal/service/address"
	notificationService "dispatch/internal/service/notification"
	orderService "dispatch/internal/service/order"
	outboxService "dispatch/internal/service/outbox"
	userService "dispatch/internal/service/user"

	"dispatch/pkg/logger"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		storageSet,
		provideServiceAddress,
		provideDriverSelectionPolicy,
		provideOrderSettings,
		provideServiceOutbox,
		provideServiceOrder,

		provideOutboxRelayTask,
		providePendingDispatchTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceUser), new(*userService.Service)),
		wire.Bind(new(ServiceAddress), new(*addressService.Service)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),

		wire.Bind(new(addressService.Repository), new(*addressRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(outboxService.Repository), new(*outboxRepo.Repository)),

		wire.Bind(new(orderService.UserService), new(*userService.Service)),
		wire.Bind(new(orderService.AddressService), new(*addressService.Service)),
		wire.Bind(new(orderService.DriverSelectionPolicy), new(*driver_selection.UniformRandom)),
		wire.Bind(new(orderService.EventPublisher), new(*outboxService.Service)),
		wire.Bind(new(outboxService.Producer), new(*kafka.Producer)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(outboxService.TxManager), new(*tx.Manager)),

		wire.Bind(new(outbox_relay.Service), new(*outboxService.Service)),
		wire.Bind(new(pending_dispatch.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		storageSet,
		provideHTTPClient,
		provideNotifierGateway,
		provideEventHandlerFactory,
		provideNotificationService,

		wire.Bind(new(notificationService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(notificationService.UserService), new(*userService.Service)),
		wire.Bind(new(notificationService.Notifier), new(*notifierGateway.NotifierGateway)),
		wire.Bind(new(notificationService.HandlerFactory), new(*event_handle.EventHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

var storageSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideUserRepository,
	provideAddressRepository,
	provideOrderRepository,
	provideOutboxRepository,

	provideServiceUser,
	wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
)

