package ports

// OrderMetrics records business counters of the order lifecycle.
type OrderMetrics interface {
	OrdersCreated(count int)
	PriceReused(overridden bool)
	OrderCanceled()
}
