package order_events

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/pkg/events"
	"dispatch/internal/pkg/kafka"
	notificationservice "dispatch/internal/service/notification"
	"dispatch/pkg/logger"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "dispatch/kafka-consumer/order_events"

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notificationService:      notificationService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста):
// сообщение не помечается и будет прочитано повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx := otel.GetTextMapPropagator().Extract(sess.Context(), kafka.NewConsumerHeaderCarrier(message.Headers))
	ctx, span := otel.Tracer(tracerName).Start(ctx, "order.events process",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination.name", message.Topic),
			attribute.Int64("messaging.kafka.message.offset", message.Offset),
		),
	)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, h.messageProcessingTimeout)
	defer cancel()

	event, err := events.Decode(message.Value)
	if err != nil {
		span.SetStatus(codes.Error, "bad message")
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event_id", event.ID.String()),
		logger.NewField("event_type", event.Type.String()),
		logger.NewField("order", event.OrderID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.events processing")

	order, err := h.notificationService.ProcessOrderEvent(ctx, event)
	if err != nil {
		span.RecordError(err)

		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notificationservice.ErrStatusMismatch):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.events handler stale event for order")

		default:
			span.SetStatus(codes.Error, "notification failed")
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.events handler failed to notify")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("assignment_status", order.Assignment.Status.String()),
	).Info("order.events: processed")

	sess.MarkMessage(message, "")
	return false
}
