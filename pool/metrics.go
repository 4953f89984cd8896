package pool

import "github.com/prometheus/client_golang/prometheus"

// Collector exports a pool's state to Prometheus: worker count, queued /
// running / outstanding task gauges, and executed / failed task counters.
// Register it with any prometheus.Registerer:
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(pool.NewCollector(p, "ingest"))
//
// The gauge values are read under the pool lock at scrape time, so one
// scrape sees one coherent snapshot.
type Collector struct {
	pool *Pool

	threadCount *prometheus.Desc
	queued      *prometheus.Desc
	running     *prometheus.Desc
	outstanding *prometheus.Desc
	executed    *prometheus.Desc
	failed      *prometheus.Desc
}

// NewCollector creates a Collector for p. The name labels every metric so
// several pools can share a registry.
func NewCollector(p *Pool, name string) *Collector {
	labels := prometheus.Labels{"pool": name}
	return &Collector{
		pool: p,
		threadCount: prometheus.NewDesc(
			"threadpool_workers",
			"Number of workers in the pool.",
			nil, labels,
		),
		queued: prometheus.NewDesc(
			"threadpool_tasks_queued",
			"Tasks waiting in the queue.",
			nil, labels,
		),
		running: prometheus.NewDesc(
			"threadpool_tasks_running",
			"Tasks currently executing.",
			nil, labels,
		),
		outstanding: prometheus.NewDesc(
			"threadpool_tasks_outstanding",
			"Unfinished tasks, queued plus running.",
			nil, labels,
		),
		executed: prometheus.NewDesc(
			"threadpool_tasks_executed_total",
			"Tasks executed since the pool was created.",
			nil, labels,
		),
		failed: prometheus.NewDesc(
			"threadpool_tasks_failed_total",
			"Tasks that returned an error or panicked.",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.threadCount
	ch <- c.queued
	ch <- c.running
	ch <- c.outstanding
	ch <- c.executed
	ch <- c.failed
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	threads, queued, running, outstanding := c.pool.snapshot()

	ch <- prometheus.MustNewConstMetric(c.threadCount, prometheus.GaugeValue, float64(threads))
	ch <- prometheus.MustNewConstMetric(c.queued, prometheus.GaugeValue, float64(queued))
	ch <- prometheus.MustNewConstMetric(c.running, prometheus.GaugeValue, float64(running))
	ch <- prometheus.MustNewConstMetric(c.outstanding, prometheus.GaugeValue, float64(outstanding))
	ch <- prometheus.MustNewConstMetric(c.executed, prometheus.CounterValue, float64(c.pool.executed.Load()))
	ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(c.pool.failed.Load()))
}

// snapshot reads every count under one lock acquisition.
func (p *Pool) snapshot() (threads, queued, running, outstanding int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.threadCount, p.tasks.queued(), p.tasks.running(), p.tasks.outstanding
}
