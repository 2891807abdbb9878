// Package metrics keeps per-run counters for the retention job and can dump
// them in the node_exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "backup_pruner"

type Collector struct {
	registry *prometheus.Registry

	scanned     prometheus.Counter
	copied      prometheus.Counter
	deleted     prometheus.Counter
	bytesCopied prometheus.Counter
	lastRun     prometheus.Gauge
	lastSuccess prometheus.Gauge
}

// New registers all metrics on a private registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		scanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_scanned_total",
			Help:      "Regular files found in the source directory.",
		}),
		copied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_copied_total",
			Help:      "Files within the retention window copied to the destination.",
		}),
		deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_deleted_total",
			Help:      "Files past the retention window deleted from the source.",
		}),
		bytesCopied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bytes_copied_total",
			Help:      "Bytes copied to the destination.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run finished.",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_success",
			Help:      "1 if the last run completed, 0 if it aborted.",
		}),
	}

	c.registry.MustRegister(c.scanned, c.copied, c.deleted, c.bytesCopied, c.lastRun, c.lastSuccess)
	return c
}

func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func (c *Collector) FileScanned() { c.scanned.Inc() }

func (c *Collector) FileCopied(size int64) {
	c.copied.Inc()
	c.bytesCopied.Add(float64(size))
}

func (c *Collector) FileDeleted() { c.deleted.Inc() }

// Finish stamps the end of a run.
func (c *Collector) Finish(at time.Time, success bool) {
	c.lastRun.Set(float64(at.Unix()))
	if success {
		c.lastSuccess.Set(1)
	} else {
		c.lastSuccess.Set(0)
	}
}

// WriteTextfile writes the registry to path atomically.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
