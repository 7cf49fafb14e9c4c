package collector

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/zgpcy/wallclock/internal/version"
	"github.com/zgpcy/wallclock/internal/wallclock"
)

// StatsSource provides the render history to export
type StatsSource interface {
	Stats() wallclock.Stats
}

// ClockCollector implements prometheus.Collector for wall clock render metrics
type ClockCollector struct {
	source StatsSource

	upMetric             *prometheus.Desc
	rendersTotal         *prometheus.Desc
	renderErrorsTotal    *prometheus.Desc
	lastRenderTimeMetric *prometheus.Desc
	buildInfo            *prometheus.GaugeVec
}

// NewClockCollector creates a new ClockCollector
func NewClockCollector(source StatsSource) *ClockCollector {
	buildInfo := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wallclock_build_info",
			Help: "Build version information",
		},
		[]string{"version", "git_commit", "build_date", "go_version"},
	)

	versionInfo := version.Info()
	buildInfo.With(prometheus.Labels{
		"version":    versionInfo["version"],
		"git_commit": versionInfo["git_commit"],
		"build_date": versionInfo["build_date"],
		"go_version": versionInfo["go_version"],
	}).Set(1)

	return &ClockCollector{
		source: source,
		upMetric: prometheus.NewDesc(
			"wallclock_up",
			"Was the last render successful (1 = success, 0 = failure)",
			nil,
			nil,
		),
		rendersTotal: prometheus.NewDesc(
			"wallclock_renders_total",
			"Total number of successful renders since startup",
			nil,
			nil,
		),
		renderErrorsTotal: prometheus.NewDesc(
			"wallclock_render_errors_total",
			"Total number of failed renders since startup",
			nil,
			nil,
		),
		lastRenderTimeMetric: prometheus.NewDesc(
			"wallclock_last_render_timestamp_seconds",
			"Unix timestamp of the last successful render",
			nil,
			nil,
		),
		buildInfo: buildInfo,
	}
}

// Describe implements prometheus.Collector
func (c *ClockCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.upMetric
	ch <- c.rendersTotal
	ch <- c.renderErrorsTotal
	ch <- c.lastRenderTimeMetric
	c.buildInfo.Describe(ch)
}

// Collect implements prometheus.Collector
func (c *ClockCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()

	upValue := 0.0
	if stats.Renders > 0 && stats.LastError == nil {
		upValue = 1.0
	}
	ch <- prometheus.MustNewConstMetric(c.upMetric, prometheus.GaugeValue, upValue)

	ch <- prometheus.MustNewConstMetric(c.rendersTotal, prometheus.CounterValue, float64(stats.Renders))
	ch <- prometheus.MustNewConstMetric(c.renderErrorsTotal, prometheus.CounterValue, float64(stats.Errors))

	// Not exported before the first successful render
	if !stats.LastRender.IsZero() {
		ch <- prometheus.MustNewConstMetric(
			c.lastRenderTimeMetric,
			prometheus.GaugeValue,
			float64(stats.LastRender.Unix()),
		)
	}

	c.buildInfo.Collect(ch)
}
