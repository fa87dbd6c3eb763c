package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PagesVisited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shopfeed_pages_visited_total",
			Help: "Marketplace pages navigated and parsed",
		},
	)
	DiscoveredURLs = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shopfeed_discovered_urls_total",
			Help: "Product URLs collected by the discoverer",
		},
	)
	ProductsAttempted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shopfeed_products_attempted_total",
			Help: "Product pages the pipeline attempted",
		},
	)
	ProductsSucceeded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shopfeed_products_succeeded_total",
			Help: "Products written to the catalog",
		},
	)
	ProductsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shopfeed_products_failed_total",
			Help: "Products discarded or rejected by the store",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(PagesVisited, DiscoveredURLs,
		ProductsAttempted, ProductsSucceeded, ProductsFailed)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
