package app

import (
	"context"
	"net/http"

	notifierGateway "dispatch/internal/gateway/http/notifier"
	"dispatch/internal/handlers/rest/address_get"
	"dispatch/internal/handlers/rest/addresses_get"
	"dispatch/internal/handlers/rest/addresses_post"
	"dispatch/internal/handlers/rest/cities_get"
	"dispatch/internal/handlers/rest/cities_post"
	"dispatch/internal/handlers/rest/countries_get"
	"dispatch/internal/handlers/rest/countries_post"
	"dispatch/internal/handlers/rest/order_get"
	"dispatch/internal/handlers/rest/orders_driver_get"
	"dispatch/internal/handlers/rest/orders_get"
	"dispatch/internal/handlers/rest/orders_post"
	"dispatch/internal/handlers/rest/user_get"
	"dispatch/internal/handlers/rest/users_get"
	"dispatch/internal/handlers/rest/users_post"
	"dispatch/internal/handlers/tasks/outbox_relay"
	"dispatch/internal/handlers/tasks/pending_dispatch"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/driver_selection"
	"dispatch/internal/pkg/factory/event_handle"
	"dispatch/internal/pkg/httpclient"

	addressRepo "dispatch/internal/repository/address"
	orderRepo "dispatch/internal/repository/order"
	outboxRepo "dispatch/internal/repository/outbox"
	userRepo "dispatch/internal/repository/user"
	addressService "dispatch/internal/service/address"
	notificationService "dispatch/internal/service/notification"
	orderService "dispatch/internal/service/order"
	outboxService "dispatch/internal/service/outbox"
	userService "dispatch/internal/service/user"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceUser       ServiceUser
	ServiceAddress    ServiceAddress
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceUser interface {
	users_post.Service
	user_get.Service
	users_get.Service
}

type ServiceAddress interface {
	countries_post.Service
	countries_get.Service
	cities_post.Service
	cities_get.Service
	addresses_post.Service
	address_get.Service
	addresses_get.Service
}

type ServiceOrder interface {
	orders_post.Service
	order_get.Service
	orders_get.Service
	orders_driver_get.Service
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideAddressRepository(querier *querier.Querier) *addressRepo.Repository {
	return addressRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideServiceUser(repository userService.Repository) *userService.Service {
	return userService.New(repository)
}

func provideServiceAddress(repository addressService.Repository) *addressService.Service {
	return addressService.New(repository)
}

func provideServiceOutbox(
	repository outboxService.Repository,
	producer outboxService.Producer,
	txManager outboxService.TxManager,
) *outboxService.Service {
	return outboxService.New(repository, producer, txManager)
}

func provideDriverSelectionPolicy(cfg *config.Config) (*driver_selection.UniformRandom, error) {
	return driver_selection.New(cfg.Dispatch.Policy)
}

func provideOrderSettings(cfg *config.Config) orderService.Settings {
	return orderService.Settings{
		PendingOnNoDriver: cfg.Dispatch.PendingOnNoDriver,
	}
}

func provideServiceOrder(
	repository orderService.Repository,
	userService orderService.UserService,
	addressService orderService.AddressService,
	policy orderService.DriverSelectionPolicy,
	publisher orderService.EventPublisher,
	txManager orderService.TxManager,
	settings orderService.Settings,
) *orderService.Service {
	return orderService.New(
		repository,
		userService,
		addressService,
		policy,
		publisher,
		txManager,
		settings,
	)
}

func provideOutboxRelayTask(
	log logger.Logger,
	service outbox_relay.Service,
	cfg *config.Config,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, service, cfg.Tasks.OutboxRelayInterval, cfg.Tasks.OutboxBatchSize)
}

func providePendingDispatchTask(
	log logger.Logger,
	service pending_dispatch.Service,
	cfg *config.Config,
) *pending_dispatch.PendingDispatch {
	return pending_dispatch.NewPendingDispatch(log, service, cfg.Tasks.PendingDispatchInterval, cfg.Tasks.PendingDispatchBatchSize)
}

func provideTaskList(
	outboxRelayTask *outbox_relay.OutboxRelay,
	pendingDispatchTask *pending_dispatch.PendingDispatch,
) []background.Task {
	return []background.Task{
		outboxRelayTask,
		pendingDispatchTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return httpclient.NewClient(&cfg.Notifier)
}

func provideNotifierGateway(client *http.Client, cfg *config.Config) *notifierGateway.NotifierGateway {
	return notifierGateway.New(client, cfg.Notifier)
}

func provideEventHandlerFactory(
	userService notificationService.UserService,
	notifier notificationService.Notifier,
) *event_handle.EventHandlerFactory {
	return event_handle.NewEventHandlerFactory(userService, notifier)
}

func provideNotificationService(
	orderRepository notificationService.OrderRepository,
	handlerFactory notificationService.HandlerFactory,
) *notificationService.Service {
	return notificationService.New(orderRepository, handlerFactory)
}
