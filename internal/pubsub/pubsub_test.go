package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan Event[T]) Event[T] {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event[T]{}
}

func TestBroker_PublishToSubscribers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := NewBroker[string]()
	a := b.Subscribe(ctx)
	c := b.Subscribe(ctx)

	b.Publish(UpdatedEvent, "commits")

	require.Equal(t, Event[string]{Type: UpdatedEvent, Payload: "commits"}, receive(t, a))
	require.Equal(t, Event[string]{Type: UpdatedEvent, Payload: "commits"}, receive(t, c))
}

func TestBroker_ContextCancelUnsubscribes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := NewBroker[int]()
	ch := b.Subscribe(ctx)
	require.Equal(t, 1, b.SubscriberCount())

	cancel()

	require.Eventually(t, func() bool { return b.SubscriberCount() == 0 }, time.Second, 5*time.Millisecond)
	_, ok := <-ch
	require.False(t, ok)
}

func TestBroker_Shutdown(t *testing.T) {
	b := NewBroker[int]()
	ch := b.Subscribe(context.Background())

	b.Shutdown()
	b.Shutdown()
	b.Publish(UpdatedEvent, 1)

	_, ok := <-ch
	require.False(t, ok)

	late := b.Subscribe(context.Background())
	_, ok = <-late
	require.False(t, ok)
}

func TestBroker_FullBufferDoesNotBlock(t *testing.T) {
	b := NewBroker[int]()
	_ = b.Subscribe(context.Background())

	done := make(chan struct{})
	go func() {
		for i := range defaultBufferSize * 2 {
			b.Publish(UpdatedEvent, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}

func TestContinuousListener(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := NewBroker[string]()
	l := NewContinuousListener(ctx, b)

	b.Publish(UpdatedEvent, "pullRequests")

	msg := l.Listen()()
	ev, ok := msg.(Event[string])
	require.True(t, ok)
	require.Equal(t, "pullRequests", ev.Payload)

	cancel()
	require.Eventually(t, func() bool { return b.SubscriberCount() == 0 }, time.Second, 5*time.Millisecond)
	require.Nil(t, l.Listen()())
}
