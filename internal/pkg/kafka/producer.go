package kafka

import (
	"context"
	"fmt"
	"strconv"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/config"
	"dispatch/pkg/logger"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
)

const (
	HeaderEventType = "event_type"
	HeaderEventID   = "event_id"
)

type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewProducerSaramaConfig(versionStr string, retryMax int) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	// SyncProducer требует Return.Successes
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = retryMax
	cfg.Producer.Partitioner = sarama.NewHashPartitioner

	return cfg, nil
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	saramaConfig, err := NewProducerSaramaConfig(cfg.Sarama.Version, cfg.Sarama.ProducerRetryMax)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", cfg.Brokers),
		logger.NewField("topic", cfg.Topic),
	)

	err = pingKafka(ctx, kafkaLog, cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	syncProducer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return NewProducerWithClient(kafkaLog, syncProducer, cfg.Topic), nil
}

func NewProducerWithClient(log logger.Logger, producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

// Publish отправляет сообщение outbox с ключом id заказа, чтобы события
// одного заказа попадали в одну партицию и читались по порядку.
func (p *Producer) Publish(ctx context.Context, message entities.OutboxMessage) error {
	headers := []sarama.RecordHeader{
		{Key: []byte(HeaderEventType), Value: []byte(message.EventType.String())},
		{Key: []byte(HeaderEventID), Value: []byte(message.ID.String())},
	}
	carrier := NewHeaderCarrier(headers)
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(strconv.FormatInt(message.AggregateID, 10)),
		Value:   sarama.ByteEncoder(message.Payload),
		Headers: carrier.Headers(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send message to %s: %w", p.topic, err)
	}

	p.log.Debug("outbox message published",
		logger.NewField("event_id", message.ID.String()),
		logger.NewField("event_type", message.EventType.String()),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
