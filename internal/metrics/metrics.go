// Package metrics holds Prometheus instruments that are used across the
// build engine.  All collectors are registered with the global registry,
// so importing this package in a main is enough to expose them on the
// preview server's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ItemsLoadedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "items_loaded_total",
			Help: "Cumulative number of catalog items loaded across builds.",
		})

	CombinationsGeneratedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "combinations_generated_total",
			Help: "Cumulative number of filter combinations generated.",
		})

	RedirectsGeneratedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "redirects_generated_total",
			Help: "Cumulative number of legacy search redirects generated.",
		})

	BuildErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "build_errors_total",
			Help: "Cumulative number of failed build passes.",
		})

	LastBuildItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "last_build_items",
			Help: "Number of items in the most recent build pass.",
		})

	LastBuildCombinations = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "last_build_combinations",
			Help: "Number of filter combinations in the most recent build pass.",
		})
)

func init() {
	prometheus.MustRegister(
		ItemsLoadedTotal,
		CombinationsGeneratedTotal,
		RedirectsGeneratedTotal,
		BuildErrorsTotal,
		LastBuildItems,
		LastBuildCombinations,
	)
}
