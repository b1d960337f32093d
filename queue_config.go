package steam_market

import (
	"github.com/daemond-dev/steam-market/logger"
	"github.com/daemond-dev/steam-market/queue"
	"github.com/daemond-dev/steam-market/retry"
)

type queueConfig struct {
	// bufferSize determines the buffer size of the internal request channel
	// to prevent blocking on Add() calls
	// (maps to ProcessorConfig.MaxBufferSize)
	// default: 500
	bufferSize int

	// retryTimes sets the maximum number of attempts for failed queries
	// (maps to ProcessorConfig.MaxRetries)
	// default: 1
	retryTimes int

	// retry configures the retry strategy
	// (exponential backoff, delays, etc.) for failed queries
	// (maps to ProcessorConfig.Retry)
	// default: retry.NewExponentialRetry()
	retry retry.Retry

	// logger provides logging functionality for debugging
	// and monitoring queue processing operations
	// (maps to ProcessorConfig.Logger)
	// default: logger.Noop
	logger logger.Logger

	// responseChan is an optional channel for receiving
	// query responses and errors
	// (passed to each processor for response handling).
	// If nil - the caller won't get any responses
	// from the queue.
	// default: nil
	responseChan chan<- queue.Response
}

func defaultQueueConfig() queueConfig {
	return queueConfig{
		bufferSize:   500,
		retryTimes:   1,
		retry:        retry.NewExponentialRetry(),
		logger:       logger.Noop{},
		responseChan: nil,
	}
}

type QueueConfigOption func(c *queueConfig)

func WithQueueBufferSize(bufferSize int) QueueConfigOption {
	return func(c *queueConfig) {
		c.bufferSize = bufferSize
	}
}

func WithQueueRetryTimes(times int) QueueConfigOption {
	return func(c *queueConfig) {
		c.retryTimes = times
	}
}

func WithQueueRetry(retry retry.Retry) QueueConfigOption {
	return func(c *queueConfig) {
		c.retry = retry
	}
}

func WithQueueLogger(logger logger.Logger) QueueConfigOption {
	return func(c *queueConfig) {
		c.logger = logger
	}
}

func WithQueueResponseListener(res chan queue.Response) QueueConfigOption {
	return func(c *queueConfig) {
		c.responseChan = res
	}
}
