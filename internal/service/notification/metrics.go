package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSent    = "sent"
	resultSkipped = "skipped"
	resultFailed  = "failed"
)

var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_notifications_total",
		Help: "Total number of processed order events by outcome",
	},
	[]string{"event_type", "result"},
)
