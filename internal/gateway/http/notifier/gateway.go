package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/pkg/config"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	serviceName = "notifier"
	methodName  = "Notify"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 10 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// StatusError ответ шлюза с кодом вне 2xx.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("notifier responded with %d: %s", e.StatusCode, e.Body)
}

type notifyRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type NotifierGateway struct {
	client  client
	retrier retrier
	url     string
	token   string
}

func New(client client, cfg config.Notifier) *NotifierGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      cfg.MaxRetries,
		ShouldRetry:     isRetryable,
	}

	return &NotifierGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		url:     cfg.URL,
		token:   cfg.Token,
	}
}

// Notify отправляет SMS-уведомление на номер phone.
func (n *NotifierGateway) Notify(ctx context.Context, phone, message string) error {
	body, err := json.Marshal(notifyRequest{Phone: phone, Message: message})
	if err != nil {
		return fmt.Errorf("gateway notifier, encode request: %w", err)
	}

	err = n.executeWithMetrics(ctx, func(ctx context.Context) error {
		return n.send(ctx, body)
	})
	if err != nil {
		return fmt.Errorf("gateway notifier, notify: %w", err)
	}
	return nil
}

func (n *NotifierGateway) send(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
}

// isRetryable ретраит 5xx, 429 и транспортные ошибки. Отмена контекста не ретраится.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusTooManyRequests ||
			statusErr.StatusCode >= http.StatusInternalServerError
	}
	return true
}

func (n *NotifierGateway) executeWithMetrics(ctx context.Context, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := n.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := statusCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, methodName, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, methodName, code).Inc()
	}

	return err
}

func statusCode(err error) string {
	if err == nil {
		return strconv.Itoa(http.StatusOK)
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.StatusCode)
	}
	return "UNKNOWN"
}
