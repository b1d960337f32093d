package retry

// Retry provides a standardized interface for implementing retry logic
// with different strategies. It allows operations to be retried, with configurable
// retry policies such as exponential backoff, maximum attempts, and custom delay
// strategies.
//
// The interface is used by the queue processor for handling transient failures in
// market queries: transport errors, Steam throttling (429) and intermittent 5xx
// responses. Note that the rate.Limiter never retries anything itself; retrying
// is always a caller decision, and every failed attempt still has to be reported
// to the limiter so it can back off.
//
// Usage Example:
//
//	retry := retry.NewExponentialRetry(
//	    retry.WithInitialDuration(100*time.Millisecond),
//	    retry.WithLogger(myLogger),
//	)
//
//	err := retry.Do(3, "price-overview", func(attempt int) (error, retry.ExitStrategy) {
//	    overview, err := client.Prices().Overview(730, "AK-47 | Redline (Field-Tested)")
//	    if err != nil {
//	        if isTransient(err) {
//	            return err, retry.Continue  // Retry this error
//	        }
//	        return err, retry.StopNow     // Don't retry this error
//	    }
//	    return nil, retry.StopNow         // Success, stop retrying
//	})
//
// The RetriableFn function receives the current attempt number (0-based) and returns
// an error and an ExitStrategy. The ExitStrategy determines whether to continue
// retrying (Continue) or stop immediately (StopNow), regardless of remaining attempts.
//
// NOTE: if attempts is 0, the fn is never called.
type Retry interface {
	Do(attempts int, fnName string, fn RetriableFn) error
}

type RetriableFn func(attempt int) (error, ExitStrategy)

type ExitStrategy bool

var StopNow ExitStrategy = true
var Continue ExitStrategy = false
