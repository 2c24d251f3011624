package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultAssigned   = "assigned"
	resultPending    = "pending"
	resultRejected   = "rejected"
	resultNoDriver   = "no_driver"
	resultStoreError = "store_error"

	sourceCreation = "creation"
	sourceDispatch = "dispatch"
)

var (
	OrdersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Order creation attempts by outcome",
		},
		[]string{"result"},
	)

	DriverAssignmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "driver_assignments_total",
			Help: "Driver assignments by selection policy and source",
		},
		[]string{"policy", "source"},
	)

	DriverPoolSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "driver_pool_size",
			Help: "Number of drivers seen at the last selection",
		},
	)
)
