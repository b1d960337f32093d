package rate

import (
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"
)

const (
	defaultWindowSize = 50
	defaultTarget     = 500 * time.Millisecond
	defaultMinDelay   = 200 * time.Millisecond
	defaultMaxDelay   = 5 * time.Second

	// Failure backoff compounds: the k-th consecutive failure scales the
	// delay by 1.5^k, so failure streaks are punished super-linearly.
	backoffBase = 1.5

	// Asymmetric success adjustments: quick to ease off, slow to speed
	// back up.
	easeOffFactor = 1.2
	speedUpFactor = 0.95
)

type adaptiveConfig struct {
	// windowSize is the number of most recent response times retained
	// for averaging. Delay adjustments only start once the window is at
	// least half full.
	// default: 50
	windowSize int

	// target is the response time the controller steers towards. An
	// average above it eases off; an average below half of it speeds up.
	// default: 500ms
	target time.Duration

	// minDelay and maxDelay bound the enforced spacing at all times.
	// default: 200ms and 5s
	minDelay time.Duration
	maxDelay time.Duration
}

func defaultAdaptiveConfig() adaptiveConfig {
	return adaptiveConfig{
		windowSize: defaultWindowSize,
		target:     defaultTarget,
		minDelay:   defaultMinDelay,
		maxDelay:   defaultMaxDelay,
	}
}

type AdaptiveOption func(c *adaptiveConfig)

func WithWindowSize(size int) AdaptiveOption {
	return func(c *adaptiveConfig) {
		c.windowSize = size
	}
}

func WithTargetResponseTime(target time.Duration) AdaptiveOption {
	return func(c *adaptiveConfig) {
		c.target = target
	}
}

func WithMinDelay(d time.Duration) AdaptiveOption {
	return func(c *adaptiveConfig) {
		c.minDelay = d
	}
}

func WithMaxDelay(d time.Duration) AdaptiveOption {
	return func(c *adaptiveConfig) {
		c.maxDelay = d
	}
}

// AdaptiveLimiter spaces requests out by a delay that adapts to how the
// remote service is doing. Each successful response contributes its round
// trip time to a bounded window; once the window is at least half full,
// the average steers the delay: above target eases off (x1.2), below half
// the target cautiously speeds up (x0.95), in between leaves it alone.
// Transport failures escalate the delay exponentially with the length of
// the current failure streak.
//
// The delay always stays within [minDelay, maxDelay].
//
// One AdaptiveLimiter is meant to pace one logical session. It is safe to
// share across goroutines: both hooks take a single mutex, so concurrent
// callers serialize through the spacing, each honoring the delay computed
// from the shared history at the time it checks in. Before has no
// cancellation; callers that need a cancellable wait must wrap it.
type AdaptiveLimiter struct {
	config adaptiveConfig

	// now and sleep are swapped out in tests.
	now   func() time.Time
	sleep func(d time.Duration)

	mu        sync.Mutex
	window    []time.Duration // ring buffer of recent response times
	head      int
	count     int
	delay     time.Duration
	errStreak int
	lastStart time.Time
	throttled time.Duration
}

var _ Limiter = &AdaptiveLimiter{}

// NewAdaptiveLimiter validates the configuration eagerly: a limiter that
// is constructed successfully can never misbehave at request time.
func NewAdaptiveLimiter(opts ...AdaptiveOption) (*AdaptiveLimiter, error) {
	config := defaultAdaptiveConfig()
	for _, opt := range opts {
		opt(&config)
	}

	if config.windowSize < 1 {
		return nil, fmt.Errorf("rate: window size must be at least 1, got %d", config.windowSize)
	}
	if config.target <= 0 {
		return nil, fmt.Errorf("rate: target response time must be positive, got %v", config.target)
	}
	if config.minDelay < 0 {
		return nil, fmt.Errorf("rate: min delay must not be negative, got %v", config.minDelay)
	}
	if config.minDelay > config.maxDelay {
		return nil, fmt.Errorf(
			"rate: min delay %v must not exceed max delay %v",
			config.minDelay, config.maxDelay,
		)
	}

	return &AdaptiveLimiter{
		config: config,
		now:    time.Now,
		sleep:  time.Sleep,
		window: make([]time.Duration, config.windowSize),
		delay:  config.minDelay,
	}, nil
}

// Before blocks until at least the current delay has passed since the
// previous request started, then marks the new request as started. The
// spacing is best-effort wall clock, not hard real-time.
func (l *AdaptiveLimiter) Before(_ *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.lastStart.IsZero() {
		elapsed := l.now().Sub(l.lastStart)
		if wait := l.delay - elapsed; wait > 0 {
			l.sleep(wait)
			l.throttled += wait
		}
	}
	l.lastStart = l.now()
}

// After records the outcome of a request. A non-nil err counts as a
// failure and escalates the delay; otherwise latency joins the window and
// may trigger an adjustment.
func (l *AdaptiveLimiter) After(_ *http.Request, latency time.Duration, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.errStreak++
		// Compare in float space: on a long streak the scaled value
		// exceeds what time.Duration can hold, and converting first
		// would wrap negative instead of hitting the cap.
		scaled := float64(l.delay) * math.Pow(backoffBase, float64(l.errStreak))
		if scaled >= float64(l.config.maxDelay) {
			l.delay = l.config.maxDelay
		} else {
			l.delay = time.Duration(scaled)
		}
		return
	}

	l.record(latency)

	// Wait for half a window of samples before trusting the average;
	// reacting to single noisy samples makes the loop oscillate.
	if l.count < l.config.windowSize/2 {
		return
	}

	avg := l.average()
	if avg > l.config.target {
		l.delay = minDuration(l.config.maxDelay, scaleDuration(l.delay, easeOffFactor))
	} else if avg < l.config.target/2 {
		l.delay = maxDuration(l.config.minDelay, scaleDuration(l.delay, speedUpFactor))
	}

	// The failure streak unwinds one step per adjustment pass, not per
	// success: recovery from a long streak is deliberately slow.
	if l.errStreak > 0 {
		l.errStreak--
	}
}

// Delay returns the spacing that will be enforced before the next request.
func (l *AdaptiveLimiter) Delay() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.delay
}

// AdaptiveStats is a point-in-time snapshot of the limiter state, suitable
// for logging or exporting as metrics.
type AdaptiveStats struct {
	// Delay is the spacing enforced before the next request.
	Delay time.Duration
	// ErrorStreak is the current consecutive-failure count driving the
	// exponential backoff.
	ErrorStreak int
	// Samples is the number of response times currently retained.
	Samples int
	// WindowAvg is the mean of the retained response times, or 0 if the
	// window is empty.
	WindowAvg time.Duration
	// Throttled is the cumulative time Before has spent blocking callers.
	Throttled time.Duration
}

func (l *AdaptiveLimiter) Stats() AdaptiveStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := AdaptiveStats{
		Delay:       l.delay,
		ErrorStreak: l.errStreak,
		Samples:     l.count,
		Throttled:   l.throttled,
	}
	if l.count > 0 {
		stats.WindowAvg = l.average()
	}
	return stats
}

func (l *AdaptiveLimiter) record(latency time.Duration) {
	if l.count == len(l.window) {
		// Window is full: overwrite the oldest sample.
		l.window[l.head] = latency
		l.head = (l.head + 1) % len(l.window)
		return
	}
	l.window[(l.head+l.count)%len(l.window)] = latency
	l.count++
}

func (l *AdaptiveLimiter) average() time.Duration {
	if l.count == 0 {
		return 0
	}
	var sum time.Duration
	for i := 0; i < l.count; i++ {
		sum += l.window[(l.head+i)%len(l.window)]
	}
	return sum / time.Duration(l.count)
}

func scaleDuration(d time.Duration, factor float64) time.Duration {
	return time.Duration(float64(d) * factor)
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
