package outbox

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/events"

	"github.com/google/uuid"
)

type Service struct {
	repository Repository
	producer   Producer
	txManager  TxManager
}

func New(repository Repository, producer Producer, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		producer:   producer,
		txManager:  txManager,
	}
}

// Enqueue пишет событие в outbox в транзакции вызывающего, если она есть в контексте.
func (s *Service) Enqueue(ctx context.Context, event entities.OrderEvent) error {
	payload, err := events.Encode(event)
	if err != nil {
		return err
	}

	err = s.repository.Insert(ctx, entities.OutboxMessage{
		ID:          event.ID,
		EventType:   event.Type,
		AggregateID: event.OrderID,
		Payload:     payload,
	})
	if err != nil {
		return fmt.Errorf("insert outbox message: %w", err)
	}
	return nil
}

// RelayBatch публикует до batchSize самых старых сообщений. Опубликованные удаляются,
// неудачные остаются в outbox со счетчиком попыток и будут отправлены повторно.
// Возвращает число опубликованных сообщений.
func (s *Service) RelayBatch(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		return 0, nil
	}

	published := 0
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		messages, err := s.repository.FetchBatchForUpdate(ctx, batchSize)
		if err != nil {
			return fmt.Errorf("fetch outbox batch: %w", err)
		}

		delivered := make([]uuid.UUID, 0, len(messages))
		for _, message := range messages {
			err := s.producer.Publish(ctx, message)
			if err != nil {
				OutboxPublishFailuresTotal.WithLabelValues(message.EventType.String()).Inc()

				markErr := s.repository.MarkFailed(ctx, message.ID, err.Error())
				if markErr != nil {
					return fmt.Errorf("mark outbox message %s failed: %w", message.ID, markErr)
				}
				continue
			}

			OutboxPublishedTotal.WithLabelValues(message.EventType.String()).Inc()
			delivered = append(delivered, message.ID)
		}

		_, err = s.repository.Delete(ctx, delivered)
		if err != nil {
			return fmt.Errorf("delete published outbox messages: %w", err)
		}

		published = len(delivered)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return published, nil
}
