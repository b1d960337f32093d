package queue

// Message represents one market query to be processed by a Processor.
// It carries the typed query payload plus optional metadata for response
// correlation.
//
// Usage Example:
//
//	message := queue.Message{
//	    Data:     queue.PriceOverviewQuery{AppId: 730, MarketHashName: "AK-47 | Redline (Field-Tested)"},
//	    MetaData: "portfolio-row-17", // Optional tracking identifier
//	}
//	processor.Add(message)
type Message struct {
	// Data contains the typed query for the endpoint the processor
	// serves (PriceOverviewQuery, OrderHistogramQuery, ...)
	Data any
	// MetaData holds optional contextual information that
	// can be used for tracking, correlation, or response handling
	MetaData any
}

// Response represents the result of processing one query. It maintains a
// reference to the original request for correlation and includes retry
// information for error handling.
type Response struct {
	// Data contains the decoded response from the market endpoint
	// or nil if an error occurred
	Data any
	// OriginalReq holds a reference to the original Message that was processed
	OriginalReq Message
	// Error contains any error that occurred during processing
	// or nil if successful
	Error error
	// Retry indicates whether this failed request is worth retrying
	// (only relevant when Error is not nil)
	Retry bool
}

// Handler fetches one query against one market endpoint. The Steam
// Community Market has no bulk endpoints, so unlike a batching pipeline
// the processor drains its queue strictly one query at a time, which is
// what lets a single adaptive limiter pace the whole stream.
//
// Implementations convert Message.Data to the endpoint's typed query,
// perform the call through the rate-limited api client, and classify the
// error as retryable or not.
type Handler interface {
	// Fetch processes a single query and returns its Response. It must
	// not retry internally; retries are driven by the processor so every
	// failed attempt is still paced and reported to the limiter.
	Fetch(message Message) Response
}
