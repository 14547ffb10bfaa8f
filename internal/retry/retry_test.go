package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errNotFound = errors.New("not found")

func TestDoSucceedsAfterRetries(t *testing.T) {
	calls := 0
	err := Policy{Attempts: 5, Interval: time.Millisecond}.Do(context.Background(), func(attempt int) error {
		calls++
		if attempt < 3 {
			return errNotFound
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoExhausted(t *testing.T) {
	calls := 0
	err := Policy{Attempts: 3, Interval: time.Millisecond}.Do(context.Background(), func(int) error {
		calls++
		return errNotFound
	})
	assert.ErrorIs(t, err, ErrExhausted)
	assert.ErrorIs(t, err, errNotFound)
	assert.Equal(t, 3, calls)
}

func TestDoPermanent(t *testing.T) {
	calls := 0
	err := Policy{Attempts: 3, Interval: time.Millisecond}.Do(context.Background(), func(int) error {
		calls++
		return Permanent(errNotFound)
	})
	assert.ErrorIs(t, err, errNotFound)
	assert.NotErrorIs(t, err, ErrExhausted)
	assert.Equal(t, 1, calls)
	assert.Nil(t, Permanent(nil))
}

func TestDoCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Policy{Attempts: 10, Interval: time.Hour}.Do(ctx, func(int) error {
		calls++
		cancel()
		return errNotFound
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, errNotFound)
	assert.Equal(t, 1, calls)
}

func TestDoZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	_ = Policy{}.Do(context.Background(), func(int) error {
		calls++
		return errNotFound
	})
	assert.Equal(t, 1, calls)
}
