package logger

// Logger provides a standardized logging interface for the steam-market client.
// It defines methods for different log levels (Debug, Info, Warn, Error) to enable
// consistent logging throughout the client library. This interface allows users
// to plug in their preferred logging implementation (e.g., glog, logrus, zap,
// standard log) or use the provided Noop logger to disable logging entirely.
//
// The logger is used throughout the client for:
// - API request/response debugging
// - Rate limiter pacing decisions and backoff events
// - Queue processing status and errors
// - Retry attempt tracking
//
// Usage Example:
//
//	// Using with a custom logger implementation
//	client := steam_market.NewClient(steam_market.WithLogger(myLogger))
//
//	// Using zap via the bundled adapter
//	client := steam_market.NewClient(steam_market.WithLogger(logger.NewZap(zapLogger.Sugar())))
//
//	// Disable logging entirely
//	client := steam_market.NewClient(steam_market.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
