package kafka

import (
	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel/propagation"
)

var _ propagation.TextMapCarrier = (*HeaderCarrier)(nil)

// HeaderCarrier переносит контекст трассировки в заголовках сообщения Kafka.
type HeaderCarrier struct {
	headers []sarama.RecordHeader
}

func NewHeaderCarrier(headers []sarama.RecordHeader) *HeaderCarrier {
	return &HeaderCarrier{headers: headers}
}

// NewConsumerHeaderCarrier копирует заголовки полученного сообщения.
func NewConsumerHeaderCarrier(headers []*sarama.RecordHeader) *HeaderCarrier {
	carrier := &HeaderCarrier{headers: make([]sarama.RecordHeader, 0, len(headers))}
	for _, h := range headers {
		if h != nil {
			carrier.headers = append(carrier.headers, *h)
		}
	}
	return carrier
}

func (c *HeaderCarrier) Get(key string) string {
	for _, h := range c.headers {
		if string(h.Key) == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *HeaderCarrier) Set(key, value string) {
	for i, h := range c.headers {
		if string(h.Key) == key {
			c.headers[i].Value = []byte(value)
			return
		}
	}
	c.headers = append(c.headers, sarama.RecordHeader{Key: []byte(key), Value: []byte(value)})
}

func (c *HeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, h := range c.headers {
		keys = append(keys, string(h.Key))
	}
	return keys
}

func (c *HeaderCarrier) Headers() []sarama.RecordHeader {
	return c.headers
}
