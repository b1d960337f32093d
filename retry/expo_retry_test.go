package retry

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Expo_Do_success_stops_early(t *testing.T) {
	count := 0

	r := makeExpoRetry()
	err := r.Do(5, "price-overview", func(attempt int) (error, ExitStrategy) {
		count++
		if count < 3 {
			return fmt.Errorf("throttled"), Continue
		}
		return nil, StopNow
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func Test_Expo_Do_exhausts_attempts(t *testing.T) {
	fetchErr := fmt.Errorf("connection reset")
	count := 0

	r := makeExpoRetry()
	err := r.Do(2, "price-overview", func(attempt int) (error, ExitStrategy) {
		assert.Equal(t, count, attempt)
		count++
		return fetchErr, Continue
	})

	assert.True(t, errors.Is(err, fetchErr))
	assert.Equal(t, 2, count)
}

func Test_Expo_Do_returns_last_error(t *testing.T) {
	first := fmt.Errorf("throttled")
	second := fmt.Errorf("server error")
	count := 0

	r := makeExpoRetry()
	err := r.Do(2, "item-orders", func(attempt int) (error, ExitStrategy) {
		count++
		if count == 1 {
			return first, Continue
		}
		return second, Continue
	})

	assert.True(t, errors.Is(err, second))
}

func Test_Expo_Do_StopNow_skips_remaining_attempts(t *testing.T) {
	finalErr := fmt.Errorf("item not found")
	count := 0

	r := makeExpoRetry()
	err := r.Do(10, "item-orders", func(attempt int) (error, ExitStrategy) {
		count++
		if count == 2 {
			return finalErr, StopNow
		}
		return fmt.Errorf("throttled"), Continue
	})

	assert.True(t, errors.Is(err, finalErr))
	assert.Equal(t, 2, count)
}

func Test_Expo_Do_rejects_zero_attempts(t *testing.T) {
	r := makeExpoRetry()
	err := r.Do(0, "search", func(attempt int) (error, ExitStrategy) {
		assert.Fail(t, "must never run")
		return nil, Continue
	})

	assert.Error(t, err)
}

func makeExpoRetry() *expoRetry {
	return NewExponentialRetry(
		WithInitialDuration(0 * time.Millisecond),
	).(*expoRetry)
}
