package queue

import (
	"time"

	"github.com/daemond-dev/steam-market/logger"
	"github.com/daemond-dev/steam-market/retry"
)

type ProcessorConfig struct {
	// MaxRetries sets the maximum number of attempts per query.
	// Only transient failures (transport errors, throttling, 5xx) are
	// retried; each attempt goes back through the rate limiter.
	// default: 1
	MaxRetries int

	// Retry configures the retry strategy (exponential backoff, delays, etc.)
	// for failed queries
	// default: retry.NewExponentialRetry
	Retry retry.Retry

	// MaxBufferSize determines the buffer size of the internal request channel
	// to prevent blocking on Add() calls
	// default: 2000
	MaxBufferSize int

	// Logger provides logging functionality for debugging
	// and monitoring query processing
	// default: logger.Noop
	Logger logger.Logger
}

func defaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		MaxRetries: 1,
		Retry: retry.NewExponentialRetry(
			retry.WithInitialDuration(100*time.Millisecond),
			retry.WithMaxDuration(5*time.Second),
			retry.WithLogger(&logger.Noop{}),
		),
		MaxBufferSize: 2000,
		Logger:        &logger.Noop{},
	}
}

func applyProcessorConfig(inConfig ProcessorConfig) ProcessorConfig {
	outConfig := defaultProcessorConfig()
	if inConfig.MaxRetries > 0 {
		outConfig.MaxRetries = inConfig.MaxRetries
	}
	if inConfig.Retry != nil {
		outConfig.Retry = inConfig.Retry
	}
	if inConfig.MaxBufferSize > 0 {
		outConfig.MaxBufferSize = inConfig.MaxBufferSize
	}
	if inConfig.Logger != nil {
		outConfig.Logger = inConfig.Logger
	}

	return outConfig
}
