package moderation

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueIsolatesFailures(t *testing.T) {
	q := NewQueue(context.Background(), 2, 16, nil)
	var done atomic.Int32

	assert.True(t, q.Submit(func(context.Context) error { return errors.New("boom") }))
	assert.True(t, q.Submit(func(context.Context) error { panic("decoder exploded") }))
	for range 5 {
		assert.True(t, q.Submit(func(context.Context) error {
			done.Add(1)
			return nil
		}))
	}
	q.Close()

	assert.Equal(t, int32(5), done.Load())
}

func TestQueueFull(t *testing.T) {
	q := NewQueue(context.Background(), 1, 1, nil)
	started := make(chan struct{})
	release := make(chan struct{})

	assert.True(t, q.Submit(func(context.Context) error {
		close(started)
		<-release
		return nil
	}))
	<-started
	assert.True(t, q.Submit(func(context.Context) error { return nil }))
	assert.False(t, q.Submit(func(context.Context) error { return nil }))

	close(release)
	q.Close()
}

func TestQueueClosed(t *testing.T) {
	q := NewQueue(context.Background(), 1, 1, nil)
	q.Close()
	q.Close()
	assert.False(t, q.Submit(func(context.Context) error { return nil }))
}

func TestQueueStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := NewQueue(ctx, 1, 4, nil)
	started := make(chan struct{})

	assert.True(t, q.Submit(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}))
	<-started
	cancel()

	assert.ErrorIs(t, q.Close(), context.Canceled)
}

func TestQueueCloseDrains(t *testing.T) {
	q := NewQueue(context.Background(), 1, 4, nil)
	var done atomic.Int32
	for range 3 {
		assert.True(t, q.Submit(func(context.Context) error {
			done.Add(1)
			return nil
		}))
	}

	assert.NoError(t, q.Close())
	assert.Equal(t, int32(3), done.Load())
}
