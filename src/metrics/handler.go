package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"k8s.io/klog/v2"
)

const namespace = "sysmon"

// unmatchedRoute labels requests that did not select any route.
const unmatchedRoute = "unmatched"

// Handler serves the process's own metrics and instruments the API routes.
type Handler struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	handler  http.Handler
}

// NewHandler builds a registry with request instrumentation and build info.
// includeExporterMetrics adds the Go runtime and process collectors,
// maxRequests bounds concurrent scrapes (0 means unlimited).
func NewHandler(includeExporterMetrics bool, maxRequests int) *Handler {
	registry := prometheus.NewRegistry()
	h := &Handler{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Time spent serving HTTP requests by route.",
			Buckets:   []float64{.005, .01, .05, .1, .25, .5, 1, 2, 5},
		}, []string{"route"}),
	}
	registry.MustRegister(h.requests, h.duration, versioncollector.NewCollector(namespace))
	if includeExporterMetrics {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	h.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog:            errorLog{},
		ErrorHandling:       promhttp.ContinueOnError,
		MaxRequestsInFlight: maxRequests,
		Registry:            registry,
	})
	return h
}

// Metrics GET /metrics
func (h *Handler) Metrics(req *restful.Request, resp *restful.Response) {
	h.handler.ServeHTTP(resp, req.Request)
}

// Filter records one request in the counters, use as a container filter.
func (h *Handler) Filter(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()
	chain.ProcessFilter(req, resp)

	route := req.SelectedRoutePath()
	if route == "" {
		route = unmatchedRoute
	}
	h.requests.WithLabelValues(route, req.Request.Method, strconv.Itoa(resp.StatusCode())).Inc()
	h.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

// RequestCounter returns the counter for one route/method/code combination.
func (h *Handler) RequestCounter(route, method string, code int) prometheus.Counter {
	return h.requests.WithLabelValues(route, method, strconv.Itoa(code))
}

type errorLog struct{}

func (errorLog) Println(v ...interface{}) {
	klog.Error(v...)
}
