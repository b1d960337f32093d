package steam_market

import (
	"github.com/daemond-dev/steam-market/queue"
)

// Queue bundles one paced processor per market endpoint family. All
// processors fetch through the same Client, so everything they issue is
// spaced by the client's shared rate limiter.
type Queue struct {
	config   queueConfig
	client   *Client
	prices   queue.Processor
	orders   queue.Processor
	search   queue.Processor
	listings queue.Processor
}

func NewQueue(client *Client, opts ...QueueConfigOption) *Queue {
	qConfig := defaultQueueConfig()
	for _, o := range opts {
		o(&qConfig)
	}

	pConfig := queue.ProcessorConfig{
		MaxRetries:    qConfig.retryTimes,
		Retry:         qConfig.retry,
		MaxBufferSize: qConfig.bufferSize,
		Logger:        qConfig.logger,
	}

	return &Queue{
		config: qConfig,
		client: client,
		prices: queue.NewProcessor(
			queue.NewPriceOverviewHandler(client.Prices(), qConfig.logger),
			qConfig.responseChan,
			pConfig,
		),
		orders: queue.NewProcessor(
			queue.NewOrderHistogramHandler(client.Orders(), qConfig.logger),
			qConfig.responseChan,
			pConfig,
		),
		search: queue.NewProcessor(
			queue.NewSearchHandler(client.Search(), qConfig.logger),
			qConfig.responseChan,
			pConfig,
		),
		listings: queue.NewProcessor(
			queue.NewListingsHandler(client.Listings(), qConfig.logger),
			qConfig.responseChan,
			pConfig,
		),
	}
}

func (q *Queue) Prices() queue.Processor {
	return q.prices
}

func (q *Queue) Orders() queue.Processor {
	return q.orders
}

func (q *Queue) Search() queue.Processor {
	return q.search
}

func (q *Queue) Listings() queue.Processor {
	return q.listings
}

func (q *Queue) StartAll() {
	for _, p := range q.all() {
		p.Start()
	}
}

func (q *Queue) StopAll() {
	for _, p := range q.all() {
		p.Stop()
	}
}

func (q *Queue) all() []queue.Processor {
	return []queue.Processor{
		q.prices,
		q.orders,
		q.search,
		q.listings,
	}
}
