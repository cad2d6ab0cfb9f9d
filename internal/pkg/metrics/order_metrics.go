package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics counts order lifecycle events and holds the latest order totals.
type OrderMetrics struct {
	ordersCreated  prometheus.Counter
	ordersCanceled prometheus.Counter
	priceReused    *prometheus.CounterVec

	activeOrders   prometheus.Gauge
	canceledOrders prometheus.Gauge
}

// NewOrderMetrics registers the collectors on the default registerer.
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func NewOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	return &OrderMetrics{
		ordersCreated: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sales_orders_created_total",
			Help: "Total number of sales orders created",
		}), "sales_orders_created_total"),
		ordersCanceled: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sales_orders_canceled_total",
			Help: "Total number of sales orders canceled",
		}), "sales_orders_canceled_total"),
		priceReused: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sales_price_reuse_total",
			Help: "Orders that took the price of an earlier order of the same article",
		}, []string{"overridden"}), "sales_price_reuse_total"),
		activeOrders: register(registerer, prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sales_orders_active",
			Help: "Number of active sales orders at the last statistics refresh",
		}), "sales_orders_active"),
		canceledOrders: register(registerer, prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sales_orders_canceled",
			Help: "Number of canceled sales orders at the last statistics refresh",
		}), "sales_orders_canceled"),
	}
}

func (m *OrderMetrics) OrdersCreated(count int) {
	m.ordersCreated.Add(float64(count))
}

// PriceReused records a reuse; overridden tells whether the submitted price differed.
func (m *OrderMetrics) PriceReused(overridden bool) {
	m.priceReused.WithLabelValues(strconv.FormatBool(overridden)).Inc()
}

func (m *OrderMetrics) OrderCanceled() {
	m.ordersCanceled.Inc()
}

// SetOrderTotals publishes the totals computed by the statistics job.
func (m *OrderMetrics) SetOrderTotals(active, canceled int64) {
	m.activeOrders.Set(float64(active))
	m.canceledOrders.Set(float64(canceled))
}
