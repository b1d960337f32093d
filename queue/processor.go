package queue

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/daemond-dev/steam-market/logger"
	"github.com/daemond-dev/steam-market/retry"
)

// Processor drains market queries one at a time. Queries are queued with
// Add and fetched serially by a single worker goroutine, so the whole
// stream flows through the client's rate limiter as one logical caller
// and honors its adaptive spacing. Failed transient queries are retried
// via the configured retry strategy, with every attempt paced and
// reported like any other request.
//
// Usage Example:
//
//	processor := queue.NewProcessor(
//	    queue.NewPriceOverviewHandler(client.Prices(), myLogger),
//	    responseChan,        // Optional channel to receive results
//	    queue.ProcessorConfig{
//	        MaxRetries: 3,
//	    },
//	)
//
//	processor.Start()
//	processor.Add(queue.Message{Data: queue.PriceOverviewQuery{AppId: 730, MarketHashName: name}})
//	// ... queries are fetched in order, spaced by the rate limiter
//	processor.Stop()
type Processor interface {
	// Start begins draining queued queries. This method is idempotent -
	// calling Start() multiple times has no effect if already running.
	Start()

	// Stop gracefully shuts down the processor. It closes the queue,
	// waits for queued and in-flight queries to finish, and prepares
	// for a potential restart.
	// This method is idempotent - calling Stop() multiple times
	// has no effect if already stopped.
	Stop()

	// Add queues a query. This method is thread-safe and will block if
	// the internal buffer is full.
	Add(req Message)
}

type processor struct {
	handler  Handler
	reqChan  chan Message
	respChan chan<- Response
	config   ProcessorConfig
	logger   logger.Logger
	retry    retry.Retry
	worker   errgroup.Group
	mu       sync.RWMutex
	running  bool
}

func NewProcessor(
	handler Handler,
	respChan chan<- Response,
	config ProcessorConfig,
) Processor {
	config = applyProcessorConfig(config)

	p := &processor{
		handler:  handler,
		reqChan:  make(chan Message, config.MaxBufferSize),
		respChan: respChan,
		config:   config,
		logger:   config.Logger,
		retry:    config.Retry,
	}
	return p
}

func (p *processor) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}

	p.worker.Go(func() error {
		p.listen()
		return nil
	})
	p.running = true
}

func (p *processor) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}

	// initiate exit from the "listen" loop; the worker drains whatever
	// is still queued before returning
	close(p.reqChan)

	err := p.worker.Wait()
	if err != nil {
		p.logger.Errorf("queue.Processor: failed to wait for the worker: %v", err)
	}

	// override reqChan to handle a Start->Stop->Start case
	// as next call to Add() will panic if the channel is closed
	p.reqChan = make(chan Message, p.config.MaxBufferSize)
	p.running = false
	p.logger.Debugf("queue.Processor: drained")
}

func (p *processor) Add(req Message) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	p.reqChan <- req
}

func (p *processor) listen() {
	p.logger.Debugf("queue.Processor: listening...")

	// Strictly serial: one query in flight at any moment. Concurrency
	// here would undermine the limiter's spacing.
	for req := range p.reqChan {
		p.process(req)
	}
}

func (p *processor) process(req Message) {
	var last Response

	loopErr := p.retry.Do(
		p.config.MaxRetries,
		"queue.Processor.process",
		func(attempt int) (error, retry.ExitStrategy) {
			last = p.handler.Fetch(req)
			if last.Error == nil {
				return nil, retry.StopNow
			}
			if !last.Retry {
				return last.Error, retry.StopNow
			}
			return last.Error, retry.Continue
		},
	)

	if loopErr != nil {
		p.logger.Warnf("queue.Processor: query failed: %v", loopErr)
	}
	p.sendResponse(last)
}

func (p *processor) sendResponse(r Response) {
	if p.respChan != nil {
		p.respChan <- r
	}
}
