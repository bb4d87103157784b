package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCachesWithinTTL(t *testing.T) {
	c := NewCache()
	calls := 0
	loader := func(ctx context.Context) (any, error) {
		calls++
		return "locations", nil
	}

	v, err := c.Fetch(context.Background(), "locations", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, "locations", v)

	_, err = c.Fetch(context.Background(), "locations", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestFetchReloadsAfterExpiry(t *testing.T) {
	c := NewCache()
	calls := 0
	loader := func(ctx context.Context) (any, error) {
		calls++
		return calls, nil
	}

	_, err := c.Fetch(context.Background(), "k", -time.Second, loader)
	require.NoError(t, err)

	v, err := c.Fetch(context.Background(), "k", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestFetchErrorNotCached(t *testing.T) {
	c := NewCache()
	calls := 0
	loader := func(ctx context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("upstream down")
		}
		return "ok", nil
	}

	_, err := c.Fetch(context.Background(), "k", time.Minute, loader)
	assert.Error(t, err)

	v, err := c.Fetch(context.Background(), "k", time.Minute, loader)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

func TestConcurrentFetchDeduplicated(t *testing.T) {
	c := NewCache()
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	loader := func(ctx context.Context) (any, error) {
		calls.Add(1)
		close(started)
		<-release
		return "v", nil
	}

	var wg sync.WaitGroup
	results := make([]any, 5)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = c.Fetch(context.Background(), "k", time.Minute, loader)
	}()
	<-started

	for i := 1; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.Fetch(context.Background(), "k", time.Minute, func(ctx context.Context) (any, error) {
				calls.Add(1)
				return "other", nil
			})
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, "v", r)
	}
}

func TestWaiterHonorsContextCancel(t *testing.T) {
	c := NewCache()
	started := make(chan struct{})
	release := make(chan struct{})
	defer close(release)

	go c.Fetch(context.Background(), "k", time.Minute, func(ctx context.Context) (any, error) {
		close(started)
		<-release
		return "v", nil
	})
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Fetch(ctx, "k", time.Minute, func(ctx context.Context) (any, error) {
		return "never", nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPutReplacesByKey(t *testing.T) {
	c := NewCache()
	c.Put("k", "old", time.Minute)
	c.Put("k", "new", time.Minute)

	v, ok := c.Peek("k")
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestPeekMissesExpired(t *testing.T) {
	c := NewCache()
	c.Put("k", "v", -time.Second)

	_, ok := c.Peek("k")
	assert.False(t, ok)
}

func TestInvalidateAndSweep(t *testing.T) {
	c := NewCache()
	c.Put("live", "v", time.Minute)
	c.Put("stale1", "v", -time.Second)
	c.Put("stale2", "v", -time.Second)

	c.Invalidate("live")
	_, ok := c.Peek("live")
	assert.False(t, ok)

	assert.Equal(t, 2, c.Sweep())
	assert.Equal(t, 0, c.Sweep())
}
