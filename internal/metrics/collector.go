package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ProviderInfo describes one configured AI provider.
type ProviderInfo struct {
	Role  string // "primary" or "secondary"
	Name  string
	Model string
}

// Collector implements prometheus.Collector to report process state at scrape time.
type Collector struct {
	version   string
	startTime time.Time
	providers []ProviderInfo

	buildInfo    *prometheus.Desc
	uptime       *prometheus.Desc
	providerInfo *prometheus.Desc
}

// NewCollector creates a collector for the running build and its providers.
func NewCollector(version string, startTime time.Time, providers []ProviderInfo) *Collector {
	return &Collector{
		version:   version,
		startTime: startTime,
		providers: providers,
		buildInfo: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "build_info"),
			"Build version, always 1.",
			[]string{"version"}, nil,
		),
		uptime: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "uptime_seconds"),
			"Seconds since the process started.",
			nil, nil,
		),
		providerInfo: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "ai", "provider_info"),
			"Configured AI providers by fallback role, always 1.",
			[]string{"role", "provider", "model"}, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.buildInfo
	ch <- c.uptime
	ch <- c.providerInfo
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.buildInfo, prometheus.GaugeValue, 1, c.version)
	ch <- prometheus.MustNewConstMetric(c.uptime, prometheus.GaugeValue, time.Since(c.startTime).Seconds())
	for _, p := range c.providers {
		ch <- prometheus.MustNewConstMetric(c.providerInfo, prometheus.GaugeValue, 1, p.Role, p.Name, p.Model)
	}
}
