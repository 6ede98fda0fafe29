package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MetricSearchesTotal counts searches by outcome (applied or ignored)
	MetricSearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swatch_searches_total",
		Help: "Total search requests by outcome",
	}, []string{"outcome"})

	// MetricPageMovesTotal counts page navigation requests by action
	MetricPageMovesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swatch_page_moves_total",
		Help: "Total page navigation requests by action",
	}, []string{"action"})

	// MetricReloadsTotal counts catalog reloads by result
	MetricReloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swatch_catalog_reloads_total",
		Help: "Total catalog reloads by result",
	}, []string{"result"})

	// MetricFilteredPalettes tracks the size of the current filtered view
	MetricFilteredPalettes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "swatch_filtered_palettes",
		Help: "Number of palettes matching the active query",
	})

	// MetricWebSocketClients tracks connected websocket clients
	MetricWebSocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "swatch_websocket_clients",
		Help: "Current connected websocket clients",
	})
)
