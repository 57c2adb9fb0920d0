package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailpreview/pkg/broadcast"
)

func receive[T any](t *testing.T, sub broadcast.Subscriber[T]) (broadcast.Message[T], bool) {
	t.Helper()
	select {
	case msg, ok := <-sub.Receive():
		return msg, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
	return broadcast.Message[T]{}, false
}

func TestMemoryBroadcaster_FanOut(t *testing.T) {
	t.Parallel()

	b := broadcast.NewMemoryBroadcaster[uint64](4)
	defer b.Close()

	ctx := context.Background()
	s1 := b.Subscribe(ctx)
	s2 := b.Subscribe(ctx)
	assert.Equal(t, 2, b.Len())

	require.NoError(t, b.Broadcast(ctx, broadcast.Message[uint64]{Data: 7}))

	m1, ok := receive(t, s1)
	require.True(t, ok)
	assert.EqualValues(t, 7, m1.Data)
	m2, ok := receive(t, s2)
	require.True(t, ok)
	assert.EqualValues(t, 7, m2.Data)
}

func TestMemoryBroadcaster_SkipsFullBufferButKeepsSubscriber(t *testing.T) {
	t.Parallel()

	b := broadcast.NewMemoryBroadcaster[int](1)
	defer b.Close()

	ctx := context.Background()
	sub := b.Subscribe(ctx)

	require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 1}))
	require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 2}))

	msg, ok := receive(t, sub)
	require.True(t, ok)
	assert.Equal(t, 1, msg.Data)
	assert.Equal(t, 1, b.Len())

	require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 3}))
	msg, ok = receive(t, sub)
	require.True(t, ok)
	assert.Equal(t, 3, msg.Data)
}

func TestMemoryBroadcaster_ContextCancelUnsubscribes(t *testing.T) {
	t.Parallel()

	b := broadcast.NewMemoryBroadcaster[int](1)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub := b.Subscribe(ctx)
	cancel()

	_, ok := receive(t, sub)
	assert.False(t, ok)
	assert.Eventually(t, func() bool { return b.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestMemoryBroadcaster_SubscriberClose(t *testing.T) {
	t.Parallel()

	b := broadcast.NewMemoryBroadcaster[int](1)
	defer b.Close()

	sub := b.Subscribe(context.Background())
	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())
	assert.Equal(t, 0, b.Len())
}

func TestMemoryBroadcaster_Close(t *testing.T) {
	t.Parallel()

	b := broadcast.NewMemoryBroadcaster[int](1)
	sub := b.Subscribe(context.Background())

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	_, ok := receive(t, sub)
	assert.False(t, ok)

	assert.ErrorIs(t, b.Broadcast(context.Background(), broadcast.Message[int]{}), broadcast.ErrClosed)

	late := b.Subscribe(context.Background())
	_, ok = receive(t, late)
	assert.False(t, ok)
}
