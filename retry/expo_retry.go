package retry

import (
	"fmt"
	"time"

	"github.com/daemond-dev/steam-market/logger"
)

type expoConfig struct {
	initial time.Duration
	max     time.Duration
	logger  logger.Logger
}

func defaultExpoConfig() expoConfig {
	return expoConfig{
		initial: 50 * time.Millisecond,
		max:     30 * time.Second,
		logger:  &logger.Noop{},
	}
}

type ExpoConfigOption func(c *expoConfig)

func WithLogger(log logger.Logger) ExpoConfigOption {
	return func(c *expoConfig) {
		c.logger = log
	}
}

func WithInitialDuration(d time.Duration) ExpoConfigOption {
	return func(c *expoConfig) {
		c.initial = d
	}
}

// WithMaxDuration caps the backoff. Doubling stops once the pause
// reaches this value.
func WithMaxDuration(d time.Duration) ExpoConfigOption {
	return func(c *expoConfig) {
		c.max = d
	}
}

type expoRetry struct {
	config expoConfig
}

var _ Retry = &expoRetry{}

func NewExponentialRetry(opts ...ExpoConfigOption) Retry {
	config := defaultExpoConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &expoRetry{config}
}

// Do runs fn until it succeeds, it asks to stop, or attempts is
// exhausted. The pause between attempts starts at the configured initial
// duration and doubles each time, capped at the configured max. With
// attempts < 1, fn never runs and Do returns an error.
//
// Market queries go through here one at a time, so the pauses here add
// to whatever spacing the rate limiter already enforces.
func (r *expoRetry) Do(
	attempts int,
	fnName string,
	fn RetriableFn,
) error {
	if attempts < 1 {
		return fmt.Errorf("attempts must be > 0")
	}

	var lastErr error
	pause := r.config.initial

	for attempt := 0; attempt < attempts; attempt++ {
		err, exitNow := fn(attempt)
		if err == nil {
			return nil
		}
		lastErr = err

		if exitNow {
			return err
		}
		if attempt == attempts-1 {
			break
		}

		r.config.logger.Warnf(
			"retry: %s failed, pausing before next attempt. attempt=%d, maxAttempts=%d, pause=%v, error=%v",
			fnName, attempt, attempts, pause, err,
		)
		time.Sleep(pause)

		pause *= 2
		if pause > r.config.max {
			pause = r.config.max
		}
	}

	r.config.logger.Warnf(
		"retry: %s failed on every attempt, giving up. maxAttempts=%d, error=%v",
		fnName, attempts, lastErr,
	)

	return lastErr
}
