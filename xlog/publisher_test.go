package xlog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.codegraph.dev/jsoncodegen/xlog"
)

func TestPublisherFanOut(t *testing.T) {
	t.Parallel()

	pub := xlog.NewPublisher()

	subA := pub.Subscribe()
	subB := pub.Subscribe()

	n, err := pub.Write([]byte("line1"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	for _, sub := range []*xlog.Subscription{subA, subB} {
		select {
		case entry := <-sub.C():
			assert.Equal(t, "line1", string(entry))
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for entry")
		}
	}
}

func TestPublisherDropsOldestWhenFull(t *testing.T) {
	t.Parallel()

	pub := xlog.NewPublisher(xlog.WithBufferSize(1))
	sub := pub.Subscribe()

	_, err := pub.Write([]byte("first"))
	require.NoError(t, err)

	_, err = pub.Write([]byte("second"))
	require.NoError(t, err)

	select {
	case entry := <-sub.C():
		assert.Equal(t, "second", string(entry))
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for entry")
	}
}

func TestPublisherCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	pub := xlog.NewPublisher()
	sub := pub.Subscribe()

	require.NoError(t, pub.Close())
	require.NoError(t, pub.Close())

	_, ok := <-sub.C()
	assert.False(t, ok, "subscription channel should be closed")

	n, err := pub.Write([]byte("ignored"))
	require.NoError(t, err)
	assert.Equal(t, len("ignored"), n)
}

func TestSubscribeAfterClose(t *testing.T) {
	t.Parallel()

	pub := xlog.NewPublisher()
	require.NoError(t, pub.Close())

	sub := pub.Subscribe()

	_, ok := <-sub.C()
	assert.False(t, ok)
}
