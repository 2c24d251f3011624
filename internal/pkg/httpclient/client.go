package httpclient

import (
	"net"
	"net/http"
	"time"

	"dispatch/internal/pkg/config"
)

const (
	DialTimeout         = 3 * time.Second
	KeepaliveTime       = 5 * time.Minute
	IdleConnTimeout     = 90 * time.Second
	MaxIdleConnsPerHost = 10
)

// NewClient возвращает HTTP клиент для внешнего шлюза уведомлений.
// Timeout ограничивает одну попытку, ретраи делает сам шлюз.
func NewClient(cfg *config.Notifier) *http.Client {
	dialer := &net.Dialer{
		Timeout:   DialTimeout,
		KeepAlive: KeepaliveTime,
	}

	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			DialContext:         dialer.DialContext,
			MaxIdleConnsPerHost: MaxIdleConnsPerHost,
			IdleConnTimeout:     IdleConnTimeout,
			TLSHandshakeTimeout: DialTimeout,
		},
	}
}
