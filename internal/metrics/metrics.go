package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	CartOps          *prometheus.CounterVec
	RealtimeEvents   *prometheus.CounterVec
	CatalogRefreshes prometheus.Counter
	SSEClients       prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	cartOps := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "storefront_cart_operations_total"},
		[]string{"op", "backend"},
	)
	rtEvents := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "storefront_realtime_events_total"},
		[]string{"kind"},
	)
	refreshes := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_catalog_refreshes_total"})
	sseClients := prometheus.NewGauge(prometheus.GaugeOpts{Name: "storefront_sse_clients"})

	r.MustRegister(cartOps, rtEvents, refreshes, sseClients)
	return &Registry{
		reg:              r,
		CartOps:          cartOps,
		RealtimeEvents:   rtEvents,
		CatalogRefreshes: refreshes,
		SSEClients:       sseClients,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
