package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/daemond-dev/steam-market/rate"
)

const namespace = "steam_market"

// LimiterCollector exposes an AdaptiveLimiter's state as prometheus
// metrics, so the pacing loop can be watched in the same dashboards as
// the application using it.
//
// Usage Example:
//
//	adaptive, _ := rate.NewAdaptiveLimiter()
//	client := steam_market.NewClient(steam_market.WithRateLimiter(adaptive))
//	prometheus.MustRegister(metrics.NewLimiterCollector(adaptive))
type LimiterCollector struct {
	limiter *rate.AdaptiveLimiter

	delay       *prometheus.Desc
	errorStreak *prometheus.Desc
	samples     *prometheus.Desc
	windowAvg   *prometheus.Desc
	throttled   *prometheus.Desc
}

var _ prometheus.Collector = &LimiterCollector{}

func NewLimiterCollector(limiter *rate.AdaptiveLimiter) *LimiterCollector {
	return &LimiterCollector{
		limiter: limiter,
		delay: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "limiter", "delay_seconds"),
			"Spacing currently enforced between request starts.",
			nil, nil,
		),
		errorStreak: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "limiter", "error_streak"),
			"Consecutive-failure count driving the exponential backoff.",
			nil, nil,
		),
		samples: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "limiter", "window_samples"),
			"Number of response time samples currently retained.",
			nil, nil,
		),
		windowAvg: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "limiter", "window_avg_seconds"),
			"Mean of the retained response time samples.",
			nil, nil,
		),
		throttled: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "limiter", "throttled_seconds_total"),
			"Cumulative time spent blocking callers to enforce spacing.",
			nil, nil,
		),
	}
}

// Describe implements the prometheus.Collector interface.
func (c *LimiterCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.delay
	ch <- c.errorStreak
	ch <- c.samples
	ch <- c.windowAvg
	ch <- c.throttled
}

// Collect implements the prometheus.Collector interface.
func (c *LimiterCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.limiter.Stats()

	ch <- prometheus.MustNewConstMetric(
		c.delay, prometheus.GaugeValue, stats.Delay.Seconds(),
	)
	ch <- prometheus.MustNewConstMetric(
		c.errorStreak, prometheus.GaugeValue, float64(stats.ErrorStreak),
	)
	ch <- prometheus.MustNewConstMetric(
		c.samples, prometheus.GaugeValue, float64(stats.Samples),
	)
	ch <- prometheus.MustNewConstMetric(
		c.windowAvg, prometheus.GaugeValue, stats.WindowAvg.Seconds(),
	)
	ch <- prometheus.MustNewConstMetric(
		c.throttled, prometheus.CounterValue, stats.Throttled.Seconds(),
	)
}
