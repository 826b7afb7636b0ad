// Package metrics provides Prometheus metric collection and exposition.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector is the interface the use case layer records against.
type MetricsCollector interface {
	RecordTokenIssued()
	RecordPurchase()
	RecordStockAdjustment()
	RecordStockRejection(reason string)
}

// Collector implements MetricsCollector backed by Prometheus counters.
type Collector struct {
	tokensIssued     prometheus.Counter
	purchases        prometheus.Counter
	stockAdjustments prometheus.Counter
	stockRejections  *prometheus.CounterVec
}

// NewCollector registers the marketplace counters on the given registerer.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		tokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "foodcourt_tokens_issued_total",
			Help: "Number of session tokens issued.",
		}),
		purchases: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "foodcourt_purchases_total",
			Help: "Number of purchase records created.",
		}),
		stockAdjustments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "foodcourt_stock_adjustments_total",
			Help: "Number of successful inventory adjustments.",
		}),
		stockRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "foodcourt_stock_rejections_total",
			Help: "Number of rejected inventory adjustments by reason.",
		}, []string{"reason"}),
	}

	reg.MustRegister(c.tokensIssued, c.purchases, c.stockAdjustments, c.stockRejections)

	return c
}

// RecordTokenIssued counts an issued session token.
func (c *Collector) RecordTokenIssued() {
	c.tokensIssued.Inc()
}

// RecordPurchase counts a created purchase record.
func (c *Collector) RecordPurchase() {
	c.purchases.Inc()
}

// RecordStockAdjustment counts a successful inventory adjustment.
func (c *Collector) RecordStockAdjustment() {
	c.stockAdjustments.Inc()
}

// RecordStockRejection counts a rejected adjustment, labeled by reason
// ("insufficient_stock", "invalid_quantity", "not_found").
func (c *Collector) RecordStockRejection(reason string) {
	c.stockRejections.WithLabelValues(reason).Inc()
}

// SetupMetricsRoute returns the HTTP handler serving the exposition format
// for the given registry.
func SetupMetricsRoute(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
