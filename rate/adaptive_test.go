package rate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewAdaptiveLimiter_defaults(t *testing.T) {
	l, err := NewAdaptiveLimiter()
	require.NoError(t, err)

	assert.Equal(t, 200*time.Millisecond, l.Delay())
	assert.Equal(t, defaultWindowSize, l.config.windowSize)
	assert.Equal(t, defaultTarget, l.config.target)
	assert.Equal(t, defaultMaxDelay, l.config.maxDelay)
}

func Test_NewAdaptiveLimiter_rejects_bad_config(t *testing.T) {
	testCases := []struct {
		name string
		opts []AdaptiveOption
	}{
		{
			name: "zero window",
			opts: []AdaptiveOption{WithWindowSize(0)},
		},
		{
			name: "negative window",
			opts: []AdaptiveOption{WithWindowSize(-5)},
		},
		{
			name: "zero target",
			opts: []AdaptiveOption{WithTargetResponseTime(0)},
		},
		{
			name: "negative min delay",
			opts: []AdaptiveOption{WithMinDelay(-time.Second)},
		},
		{
			name: "min above max",
			opts: []AdaptiveOption{
				WithMinDelay(2 * time.Second),
				WithMaxDelay(1 * time.Second),
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewAdaptiveLimiter(tt.opts...)
			assert.Error(t, err)
			assert.Nil(t, l)
		})
	}
}

func Test_Adaptive_no_adjustment_before_half_window(t *testing.T) {
	l := makeAdaptive(t, WithWindowSize(10))

	// 4 samples < 10/2: the gate stays closed no matter how slow the
	// responses are.
	for i := 0; i < 4; i++ {
		l.After(nil, 3*time.Second, nil)
		assert.Equal(t, 200*time.Millisecond, l.Delay())
	}

	// 5th sample opens the gate.
	l.After(nil, 3*time.Second, nil)
	assert.Equal(t, 240*time.Millisecond, l.Delay())
}

func Test_Adaptive_failure_backoff_compounds(t *testing.T) {
	l := makeAdaptive(t)

	l.After(nil, 0, fmt.Errorf("connection reset"))
	assert.Equal(t, 300*time.Millisecond, l.Delay()) // 0.2 * 1.5

	l.After(nil, 0, fmt.Errorf("connection reset"))
	assert.Equal(t, 675*time.Millisecond, l.Delay()) // 0.3 * 1.5^2

	l.After(nil, 0, fmt.Errorf("connection reset"))
	assert.Equal(t, 2278125*time.Microsecond, l.Delay()) // 0.675 * 1.5^3
}

func Test_Adaptive_failure_backoff_caps_at_max(t *testing.T) {
	l := makeAdaptive(t)

	prev := l.Delay()
	for i := 0; i < 10; i++ {
		l.After(nil, 0, fmt.Errorf("timeout"))
		assert.GreaterOrEqual(t, l.Delay(), prev)
		assert.LessOrEqual(t, l.Delay(), 5*time.Second)
		prev = l.Delay()
	}
	assert.Equal(t, 5*time.Second, l.Delay())
}

func Test_Adaptive_long_failure_streak_holds_cap(t *testing.T) {
	// A dead endpoint produces failures for as long as the caller keeps
	// trying. The scaled delay blows past what time.Duration can hold
	// around the 53rd consecutive failure; the cap must hold instead of
	// the delay wrapping negative and disabling all spacing.
	l := makeAdaptive(t)

	for i := 0; i < 60; i++ {
		l.After(nil, 0, fmt.Errorf("connection refused"))
		d := l.Delay()
		assert.GreaterOrEqual(t, d, 200*time.Millisecond, "failure %d", i+1)
		assert.LessOrEqual(t, d, 5*time.Second, "failure %d", i+1)
	}

	assert.Equal(t, 5*time.Second, l.Delay())
	assert.Equal(t, 60, l.Stats().ErrorStreak)
}

func Test_Adaptive_eases_off_when_slow(t *testing.T) {
	// Scenario from the original tuning: window 10, target 0.5s. Five
	// 1s responses push the average over target at the 5th sample.
	l := makeAdaptive(t, WithWindowSize(10))

	for i := 0; i < 5; i++ {
		l.After(nil, time.Second, nil)
	}
	assert.Equal(t, 240*time.Millisecond, l.Delay()) // 0.2 * 1.2
}

func Test_Adaptive_speed_up_floors_at_min(t *testing.T) {
	// Fast responses while already at the floor leave the delay alone.
	l := makeAdaptive(t, WithWindowSize(10))

	for i := 0; i < 5; i++ {
		l.After(nil, 100*time.Millisecond, nil)
	}
	assert.Equal(t, 200*time.Millisecond, l.Delay())
}

func Test_Adaptive_speed_up_applies_factor(t *testing.T) {
	// Gate opens at 1 sample (window 2). One failure lifts the delay off
	// the floor, then a fast response walks it back down by 5%.
	l := makeAdaptive(t,
		WithWindowSize(2),
		WithMinDelay(100*time.Millisecond),
	)

	l.After(nil, 0, fmt.Errorf("timeout"))
	assert.Equal(t, 150*time.Millisecond, l.Delay())

	l.After(nil, 100*time.Millisecond, nil)
	assert.Equal(t, 142500*time.Microsecond, l.Delay()) // 0.15 * 0.95
}

func Test_Adaptive_in_band_average_holds_delay(t *testing.T) {
	// avg within [target/2, target] is "good enough": no adjustment in
	// either direction, but the error streak still decays.
	l := makeAdaptive(t, WithWindowSize(4))

	l.After(nil, 0, fmt.Errorf("timeout"))
	raised := l.Delay()
	assert.Equal(t, 300*time.Millisecond, raised)

	for i := 0; i < 4; i++ {
		l.After(nil, 400*time.Millisecond, nil)
		assert.Equal(t, raised, l.Delay())
	}
	assert.Equal(t, 0, l.Stats().ErrorStreak)
}

func Test_Adaptive_error_streak_decays_only_on_adjustment(t *testing.T) {
	l := makeAdaptive(t, WithWindowSize(10))

	l.After(nil, 0, fmt.Errorf("timeout"))
	l.After(nil, 0, fmt.Errorf("timeout"))
	assert.Equal(t, 2, l.Stats().ErrorStreak)

	// Successes before the gate opens do not unwind the streak.
	l.After(nil, 100*time.Millisecond, nil)
	l.After(nil, 100*time.Millisecond, nil)
	assert.Equal(t, 2, l.Stats().ErrorStreak)

	// 5th sample opens the gate; each adjustment pass decays one step,
	// so unwinding a streak of 2 takes two more samples past the gate.
	l.After(nil, 100*time.Millisecond, nil)
	l.After(nil, 100*time.Millisecond, nil)
	l.After(nil, 100*time.Millisecond, nil)
	assert.Equal(t, 1, l.Stats().ErrorStreak)

	l.After(nil, 100*time.Millisecond, nil)
	assert.Equal(t, 0, l.Stats().ErrorStreak)
}

func Test_Adaptive_window_evicts_oldest(t *testing.T) {
	l := makeAdaptive(t, WithWindowSize(4))

	// Fill the window with slow samples, then push them out with fast
	// ones; the average must only see the retained four.
	for i := 0; i < 4; i++ {
		l.After(nil, 2*time.Second, nil)
	}
	for i := 0; i < 4; i++ {
		l.After(nil, 100*time.Millisecond, nil)
	}

	assert.Equal(t, 100*time.Millisecond, l.Stats().WindowAvg)
	assert.Equal(t, 4, l.Stats().Samples)
}

func Test_Adaptive_delay_stays_in_bounds(t *testing.T) {
	l := makeAdaptive(t, WithWindowSize(6))

	events := []func(){
		func() { l.After(nil, 0, fmt.Errorf("timeout")) },
		func() { l.After(nil, 50*time.Millisecond, nil) },
		func() { l.After(nil, 3*time.Second, nil) },
	}
	for i := 0; i < 200; i++ {
		events[i%len(events)]()
		d := l.Delay()
		assert.GreaterOrEqual(t, d, 200*time.Millisecond)
		assert.LessOrEqual(t, d, 5*time.Second)
	}
}

func Test_Adaptive_Before_waits_out_remaining_delay(t *testing.T) {
	l := makeAdaptive(t)

	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	var slept []time.Duration
	l.now = clock.now
	l.sleep = func(d time.Duration) {
		slept = append(slept, d)
		clock.advance(d)
	}

	// First request ever: nothing to wait for.
	l.Before(nil)
	assert.Empty(t, slept)

	// 50ms later, 150ms of the 200ms spacing is still outstanding.
	clock.advance(50 * time.Millisecond)
	l.Before(nil)
	require.Len(t, slept, 1)
	assert.Equal(t, 150*time.Millisecond, slept[0])

	// Enough time has passed on its own: no wait.
	clock.advance(300 * time.Millisecond)
	l.Before(nil)
	assert.Len(t, slept, 1)

	assert.Equal(t, 150*time.Millisecond, l.Stats().Throttled)
}

func Test_Adaptive_Before_spacing_wall_clock(t *testing.T) {
	l := makeAdaptive(t,
		WithMinDelay(20*time.Millisecond),
		WithMaxDelay(time.Second),
	)

	l.Before(nil)
	start := time.Now()
	l.Before(nil)
	gap := time.Since(start)

	assert.GreaterOrEqual(t, gap, 20*time.Millisecond)
}

func makeAdaptive(t *testing.T, opts ...AdaptiveOption) *AdaptiveLimiter {
	t.Helper()
	l, err := NewAdaptiveLimiter(opts...)
	require.NoError(t, err)
	return l
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}
