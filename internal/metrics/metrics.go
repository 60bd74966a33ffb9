// Package metrics concentra os coletores Prometheus do serviço.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CalculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calculadora_calculations_total",
		Help: "Cálculos executados, por moeda e regime mais vantajoso.",
	}, []string{"currency", "best_regime"})

	RateLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calculadora_rate_lookups_total",
		Help: "Consultas de câmbio por origem (cache, mongo, static, miss).",
	}, []string{"source"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "calculadora_http_request_duration_seconds",
		Help:    "Duração das requisições HTTP.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Handler expõe /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTP registra uma requisição concluída.
func ObserveHTTP(method, route string, status int, d time.Duration) {
	httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
