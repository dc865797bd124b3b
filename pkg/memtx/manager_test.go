package memtx

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoSerializable_MutualExclusion(t *testing.T) {
	m := NewTransactionManager()
	ctx := context.Background()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.DoSerializable(ctx, func(ctx context.Context) error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestDoSerializable_PropagatesError(t *testing.T) {
	m := NewTransactionManager()
	want := errors.New("boom")

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return want
	})
	assert.ErrorIs(t, err, want)
}

func TestDoSerializable_CancelledContext(t *testing.T) {
	m := NewTransactionManager()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := m.DoSerializable(ctx, func(ctx context.Context) error {
		called = true
		return nil
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestDoAndDoReadOnly_ShareTheLock(t *testing.T) {
	m := NewTransactionManager()
	ctx := context.Background()

	value := 0
	require.NoError(t, m.Do(ctx, func(ctx context.Context) error {
		value = 42
		return nil
	}))

	var read int
	require.NoError(t, m.DoReadOnly(ctx, func(ctx context.Context) error {
		read = value
		return nil
	}))
	assert.Equal(t, 42, read)
}
