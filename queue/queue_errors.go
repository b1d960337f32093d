package queue

import (
	"errors"

	steam_errors "github.com/daemond-dev/steam-market/errors"
)

const (
	ErrStrUnexpectedMessageData = "unexpected message data type for this processor"
)

var (
	ErrUnexpectedMessageData = errors.New(ErrStrUnexpectedMessageData)
)

// shouldRetry classifies an endpoint error for the processor: transport
// failures, throttling and 5xx are worth another paced attempt, anything
// else is final.
func shouldRetry(err error) bool {
	var apiErr *steam_errors.ApiError
	if errors.As(err, &apiErr) {
		return apiErr.Transient()
	}
	return false
}
