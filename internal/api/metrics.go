package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tastelog",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tastelog",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	imageUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tastelog",
		Name:      "image_uploads_total",
		Help:      "Accepted image uploads by category.",
	}, []string{"category"})

	imageUploadBytes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tastelog",
		Name:      "image_upload_bytes_total",
		Help:      "Bytes of accepted image uploads.",
	})
)
