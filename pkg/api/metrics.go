package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cardigan-project/cardigan/ent/job"
	"github.com/cardigan-project/cardigan/pkg/queue"
	"github.com/cardigan-project/cardigan/pkg/services"
)

// apiMetrics holds the request instrumentation. Each Server owns its own
// registry so several servers can live in one test binary.
type apiMetrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newAPIMetrics(jobs *services.JobService, pool *queue.WorkerPool) *apiMetrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cardigan_http_requests_total",
		Help: "HTTP requests by method, route, and status code.",
	}, []string{"method", "route", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cardigan_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	registry.MustRegister(
		requests,
		duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if jobs != nil {
		registry.MustRegister(newStatsCollector(jobs, pool))
	}

	return &apiMetrics{
		registry: registry,
		requests: requests,
		duration: duration,
	}
}

// statsCollector computes queue and cost metrics from the store at scrape
// time instead of keeping in-process counters, so the numbers survive
// restarts and stay correct with several processes writing.
type statsCollector struct {
	jobs *services.JobService
	pool *queue.WorkerPool

	processed  *prometheus.Desc
	queueDepth *prometheus.Desc
	activeJobs *prometheus.Desc
	cost       *prometheus.Desc
	tokens     *prometheus.Desc
}

func newStatsCollector(jobs *services.JobService, pool *queue.WorkerPool) *statsCollector {
	return &statsCollector{
		jobs: jobs,
		pool: pool,
		processed: prometheus.NewDesc("cardigan_jobs_processed_total",
			"Jobs in a terminal status, by status.", []string{"status"}, nil),
		queueDepth: prometheus.NewDesc("cardigan_queue_depth",
			"Jobs waiting to be claimed.", nil, nil),
		activeJobs: prometheus.NewDesc("cardigan_active_jobs",
			"Jobs currently held by a worker.", nil, nil),
		cost: prometheus.NewDesc("cardigan_llm_cost_dollars_total",
			"Accumulated LLM spend across all phases.", nil, nil),
		tokens: prometheus.NewDesc("cardigan_llm_tokens_total",
			"Accumulated LLM tokens by direction.", []string{"direction"}, nil),
	}
}

func (sc *statsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- sc.processed
	ch <- sc.queueDepth
	ch <- sc.activeJobs
	ch <- sc.cost
	ch <- sc.tokens
}

func (sc *statsCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := sc.jobs.QueueStats(ctx)
	if err != nil {
		return
	}

	for _, status := range []job.Status{job.StatusCompleted, job.StatusFailed, job.StatusCancelled} {
		ch <- prometheus.MustNewConstMetric(sc.processed, prometheus.GaugeValue,
			float64(stats.StatusCounts[string(status)]), string(status))
	}
	ch <- prometheus.MustNewConstMetric(sc.queueDepth, prometheus.GaugeValue,
		float64(stats.StatusCounts[string(job.StatusPending)]))

	active := stats.StatusCounts[string(job.StatusInProgress)]
	if sc.pool != nil {
		active = sc.pool.ActiveCount()
	}
	ch <- prometheus.MustNewConstMetric(sc.activeJobs, prometheus.GaugeValue, float64(active))

	ch <- prometheus.MustNewConstMetric(sc.cost, prometheus.GaugeValue, stats.TotalCost)
	ch <- prometheus.MustNewConstMetric(sc.tokens, prometheus.GaugeValue,
		float64(stats.InputTokens), "input")
	ch <- prometheus.MustNewConstMetric(sc.tokens, prometheus.GaugeValue,
		float64(stats.OutputTokens), "output")
}

// middleware records count and latency per request, labelled by the route
// template so path parameters do not explode the cardinality.
func (m *apiMetrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *apiMetrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
