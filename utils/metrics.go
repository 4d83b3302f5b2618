package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated counts orders accepted by the gateway.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "paygate_orders_created_total",
		Help: "Total number of orders created",
	})

	// PaymentsCreated counts payments accepted for processing, by method.
	PaymentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paygate_payments_created_total",
		Help: "Total number of payments created",
	}, []string{"method"})

	// SettlementsResolved counts settlements by terminal outcome.
	SettlementsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paygate_settlements_resolved_total",
		Help: "Total number of payments resolved by the settlement simulator",
	}, []string{"outcome"})
)
