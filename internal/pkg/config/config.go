package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type (
	Tasks struct {
		OutboxRelayInterval      time.Duration
		OutboxBatchSize          int
		PendingDispatchInterval  time.Duration
		PendingDispatchBatchSize int
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		OrdersRateQPS    int           // отдельный лимит на POST /orders
		OrdersRateBurst  int
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host           string
		Port           string
		User           string
		Password       string
		DBName         string
		SSLMode        string
		MaxConns       int32
		MinConns       int32
		MigrateOnStart bool
	}

	Dispatch struct {
		Policy            string
		PendingOnNoDriver bool
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         []string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
		ProducerRetryMax          int
	}

	KafkaHandlers struct {
		OrderEvents OrderEvents
	}

	OrderEvents struct {
		ProcessTimeout time.Duration
	}

	Notifier struct {
		URL        string
		Token      string
		Timeout    time.Duration
		MaxRetries uint64
	}

	Tracing struct {
		Enabled        bool
		JaegerEndpoint string
		ServiceName    string
	}

	Config struct {
		LogLevel string
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Dispatch Dispatch
		Kafka    Kafka
		Notifier Notifier
		Tracing  Tracing
	}
)

var defaults = map[string]any{
	"LOG_LEVEL": "info",

	"PORT":                        "8080",
	"MIDDLEWARE_REQUEST_TIMEOUT":  "5s",
	"MIDDLEWARE_RATE_LIMIT_QPS":   100,
	"MIDDLEWARE_RATE_LIMIT_BURST": 200,
	"ORDERS_RATE_LIMIT_QPS":       20,
	"ORDERS_RATE_LIMIT_BURST":     20,
	"PPROF_ENABLED":               false,

	"POSTGRES_SSLMODE":          "disable",
	"POSTGRES_MAX_CONNS":        10,
	"POSTGRES_MIN_CONNS":        2,
	"POSTGRES_MIGRATE_ON_START": true,

	"DISPATCH_POLICY":               "uniform_random",
	"DISPATCH_PENDING_ON_NO_DRIVER": false,

	"BACKGROUND_OUTBOX_RELAY_INTERVAL":     "1s",
	"OUTBOX_BATCH_SIZE":                    100,
	"BACKGROUND_PENDING_DISPATCH_INTERVAL": "10s",
	"PENDING_DISPATCH_BATCH_SIZE":          50,

	"KAFKA_TOPIC":                                "order-events",
	"KAFKA_CONSUMER_GROUP":                       "order-events-notifier",
	"KAFKA_HTTP_HEALTHCHECK_PORT":                "8081",
	"KAFKA_SARAMA_VERSION":                       "3.6.0",
	"KAFKA_SARAMA_OFFSETS_AUTOCOMMIT":            true,
	"KAFKA_SARAMA_PRODUCER_RETRY_MAX":            5,
	"KAFKA_HANDLER_ORDER_EVENTS_PROCESS_TIMEOUT": "10s",

	"NOTIFIER_TIMEOUT":     "5s",
	"NOTIFIER_MAX_RETRIES": 5,

	"TRACING_ENABLED":   false,
	"OTEL_SERVICE_NAME": "dispatch",
}

// Load читает конфигурацию из окружения. Файл .env к этому моменту уже
// подгружен в окружение пакетом dotenv.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	cfg, err := loadFromEnv(v)
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// RequireNotifier проверяет настройки, нужные только воркеру уведомлений.
func (c *Config) RequireNotifier() error {
	if c.Notifier.URL == "" {
		return errors.New("NOTIFIER_URL is required")
	}
	if c.Notifier.Timeout <= 0 {
		return errors.New("NOTIFIER_TIMEOUT must be positive")
	}
	return nil
}

func loadFromEnv(v *viper.Viper) (*Config, error) {
	r := &reader{v: v}

	cfg := &Config{
		LogLevel: r.string("LOG_LEVEL"),
		Tasks: Tasks{
			OutboxRelayInterval:      r.duration("BACKGROUND_OUTBOX_RELAY_INTERVAL"),
			OutboxBatchSize:          r.int("OUTBOX_BATCH_SIZE"),
			PendingDispatchInterval:  r.duration("BACKGROUND_PENDING_DISPATCH_INTERVAL"),
			PendingDispatchBatchSize: r.int("PENDING_DISPATCH_BATCH_SIZE"),
		},
		Server: HTTPServer{
			Port:             r.string("PORT"),
			RequestTimeout:   r.duration("MIDDLEWARE_REQUEST_TIMEOUT"),
			RateLimiterQPS:   r.int("MIDDLEWARE_RATE_LIMIT_QPS"),
			RateLimiterBurst: r.int("MIDDLEWARE_RATE_LIMIT_BURST"),
			OrdersRateQPS:    r.int("ORDERS_RATE_LIMIT_QPS"),
			OrdersRateBurst:  r.int("ORDERS_RATE_LIMIT_BURST"),
			PprofEnabled:     r.bool("PPROF_ENABLED"),
			PprofPort:        r.string("PPROF_PORT"),
		},
		Database: Database{
			Host:           r.string("POSTGRES_HOST"),
			Port:           r.string("POSTGRES_PORT"),
			User:           r.string("POSTGRES_USER"),
			Password:       r.string("POSTGRES_PASSWORD"),
			DBName:         r.string("POSTGRES_DB"),
			SSLMode:        r.string("POSTGRES_SSLMODE"),
			MaxConns:       r.int32("POSTGRES_MAX_CONNS"),
			MinConns:       r.int32("POSTGRES_MIN_CONNS"),
			MigrateOnStart: r.bool("POSTGRES_MIGRATE_ON_START"),
		},
		Dispatch: Dispatch{
			Policy:            r.string("DISPATCH_POLICY"),
			PendingOnNoDriver: r.bool("DISPATCH_PENDING_ON_NO_DRIVER"),
		},
		Kafka: Kafka{
			PortHealthcheck: r.string("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Brokers:         r.list("KAFKA_BROKERS"),
			Topic:           r.string("KAFKA_TOPIC"),
			ConsumerGroup:   r.string("KAFKA_CONSUMER_GROUP"),
			Sarama: Sarama{
				Version:                   r.string("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: r.bool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT"),
				ProducerRetryMax:          r.int("KAFKA_SARAMA_PRODUCER_RETRY_MAX"),
			},
			Handlers: KafkaHandlers{
				OrderEvents: OrderEvents{
					ProcessTimeout: r.duration("KAFKA_HANDLER_ORDER_EVENTS_PROCESS_TIMEOUT"),
				},
			},
		},
		Notifier: Notifier{
			URL:        r.string("NOTIFIER_URL"),
			Token:      r.string("NOTIFIER_TOKEN"),
			Timeout:    r.duration("NOTIFIER_TIMEOUT"),
			MaxRetries: r.uint64("NOTIFIER_MAX_RETRIES"),
		},
		Tracing: Tracing{
			Enabled:        r.bool("TRACING_ENABLED"),
			JaegerEndpoint: r.string("JAEGER_ENDPOINT"),
			ServiceName:    r.string("OTEL_SERVICE_NAME"),
		},
	}

	if r.err != nil {
		return nil, fmt.Errorf("loading config: %w", r.err)
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.OrdersRateQPS <= 0 || cfg.Server.OrdersRateBurst <= 0 {
		return errors.New("ORDERS_RATE_LIMIT_QPS and ORDERS_RATE_LIMIT_BURST must be positive")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.MaxConns <= 0 || cfg.Database.MinConns < 0 || cfg.Database.MinConns > cfg.Database.MaxConns {
		return errors.New("POSTGRES_MIN_CONNS and POSTGRES_MAX_CONNS must satisfy 0 <= min <= max, max > 0")
	}

	if cfg.Dispatch.Policy == "" {
		return errors.New("DISPATCH_POLICY is required")
	}

	if cfg.Tasks.OutboxRelayInterval <= 0 {
		return errors.New("BACKGROUND_OUTBOX_RELAY_INTERVAL must be positive")
	}
	if cfg.Tasks.PendingDispatchInterval <= 0 {
		return errors.New("BACKGROUND_PENDING_DISPATCH_INTERVAL must be positive")
	}
	if cfg.Tasks.OutboxBatchSize <= 0 {
		return errors.New("OUTBOX_BATCH_SIZE must be positive")
	}
	if cfg.Tasks.PendingDispatchBatchSize <= 0 {
		return errors.New("PENDING_DISPATCH_BATCH_SIZE must be positive")
	}

	if len(cfg.Kafka.Brokers) == 0 {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.OrderEvents.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_EVENTS_PROCESS_TIMEOUT is required")
	}

	if cfg.Tracing.Enabled && cfg.Tracing.JaegerEndpoint == "" {
		return errors.New("JAEGER_ENDPOINT is required when TRACING_ENABLED=true")
	}

	return nil
}

// reader запоминает первую ошибку разбора, чтобы не проверять err после каждого ключа.
type reader struct {
	v   *viper.Viper
	err error
}

func (r *reader) fail(key string, value any, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("invalid format for %s=%q: %w", key, fmt.Sprint(value), err)
	}
}

func (r *reader) string(key string) string {
	return strings.TrimSpace(r.v.GetString(key))
}

func (r *reader) list(key string) []string {
	raw := r.string(key)
	if raw == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func (r *reader) int(key string) int {
	value := r.v.Get(key)
	res, err := cast.ToIntE(value)
	if err != nil {
		r.fail(key, value, err)
	}
	return res
}

func (r *reader) int32(key string) int32 {
	value := r.v.Get(key)
	res, err := cast.ToInt32E(value)
	if err != nil {
		r.fail(key, value, err)
	}
	return res
}

func (r *reader) uint64(key string) uint64 {
	value := r.v.Get(key)
	res, err := cast.ToUint64E(value)
	if err != nil {
		r.fail(key, value, err)
	}
	return res
}

func (r *reader) bool(key string) bool {
	value := r.v.Get(key)
	res, err := cast.ToBoolE(value)
	if err != nil {
		r.fail(key, value, err)
	}
	return res
}

func (r *reader) duration(key string) time.Duration {
	value := r.v.Get(key)
	res, err := cast.ToDurationE(value)
	if err != nil {
		r.fail(key, value, err)
	}
	return res
}
