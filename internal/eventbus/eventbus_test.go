package eventbus_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanpama/trailgen/internal/eventbus"
)

type ping struct{ n int }

type pong struct{}

func TestPublishSubscribe(t *testing.T) {
	bus := eventbus.New()
	var got []int
	unsubscribe := eventbus.Subscribe(bus, func(ctx context.Context, e ping) { got = append(got, e.n) })
	eventbus.Subscribe(bus, func(ctx context.Context, e ping) { got = append(got, e.n*10) })
	eventbus.Subscribe(bus, func(ctx context.Context, e pong) { t.Fatal("pong handler called for ping") })

	eventbus.Publish(context.Background(), bus, ping{n: 1})
	require.Equal(t, []int{1, 10}, got)

	unsubscribe()
	eventbus.Publish(context.Background(), bus, ping{n: 2})
	require.Equal(t, []int{1, 10, 20}, got)
}

func TestNilBus(t *testing.T) {
	var bus *eventbus.Bus
	unsubscribe := eventbus.Subscribe(bus, func(ctx context.Context, e ping) { t.Fatal("unexpected") })
	eventbus.Publish(context.Background(), bus, ping{})
	unsubscribe()
}
