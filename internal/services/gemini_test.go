package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRetryGenerateSucceedsAfterFailure(t *testing.T) {
	calls := 0
	result, err := retryGenerate(context.Background(), 3, zap.NewNop(), func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("transient")
		}
		return "generated text", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "generated text", result)
	assert.Equal(t, 3, calls)
}

func TestRetryGenerateExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := retryGenerate(context.Background(), 2, zap.NewNop(), func() (string, error) {
		calls++
		return "", errors.New("always failing")
	})

	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.Contains(t, err.Error(), "failed after 2 attempts")
	assert.Contains(t, err.Error(), "always failing")
}

func TestRetryGenerateClampsAttempts(t *testing.T) {
	// Zero or negative retry budgets still get one attempt, and the error
	// wraps the real failure.
	for _, maxRetries := range []int{0, -1} {
		calls := 0
		_, err := retryGenerate(context.Background(), maxRetries, zap.NewNop(), func() (string, error) {
			calls++
			return "", errors.New("upstream unavailable")
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.Contains(t, err.Error(), "failed after 1 attempts")
		assert.Contains(t, err.Error(), "upstream unavailable")
	}
}

func TestRetryGenerateStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	_, err := retryGenerate(ctx, 5, zap.NewNop(), func() (string, error) {
		calls++
		cancel()
		return "", errors.New("transient")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Contains(t, err.Error(), "context cancelled")
}
