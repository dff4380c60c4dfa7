package main

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "legalcompose_http_requests_total",
			Help: "Total HTTP requests by route and status code.",
		},
		[]string{"route", "status"},
	)
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "legalcompose_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
	compositionWarnings = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "legalcompose_composition_warnings_total",
			Help: "Total warnings raised across all composed documents.",
		},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration, compositionWarnings)
}

func registerMetricsMiddleware(router *gin.Engine) {
	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		requestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	})
}
