package generation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThrottle_DisabledForNonPositiveRate(t *testing.T) {
	assert.Nil(t, NewThrottle(0))
	assert.Nil(t, NewThrottle(-1))
}

func TestThrottle_NilNeverBlocks(t *testing.T) {
	var throttle *Throttle

	for i := 0; i < 100; i++ {
		require.NoError(t, throttle.Wait(context.Background()))
	}
}

func TestThrottle_PacesRequests(t *testing.T) {
	throttle := NewThrottle(100) // 10ms between requests after the burst.
	require.NotNil(t, throttle)

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, throttle.Wait(context.Background()))
	}

	// Burst of one, then two paced waits.
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}

func TestThrottle_CancelledContext(t *testing.T) {
	throttle := NewThrottle(0.001) // Far slower than the test runs.
	require.NoError(t, throttle.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, throttle.Wait(ctx))
}
