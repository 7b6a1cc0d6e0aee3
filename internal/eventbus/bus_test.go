package eventbus

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactok-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startBus(t *testing.T) (context.Context, *Bus) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	bus := New(slog.New(slog.NewTextHandler(io.Discard, nil)))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = bus.Start(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		<-done
	})

	return ctx, bus
}

func receive(t *testing.T, ch <-chan entity.Event) entity.Event {
	t.Helper()

	select {
	case evt := <-ch:
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return entity.Event{}
	}
}

func TestBus_DeliversToSubscribersOfTheGame(t *testing.T) {
	ctx, bus := startBus(t)

	// Given: one subscriber per game
	first, unsubFirst := bus.Subscribe("game-1")
	defer unsubFirst()
	second, unsubSecond := bus.Subscribe("game-2")
	defer unsubSecond()

	// When: an event for game-2 and then one for game-1 are published
	require.NoError(t, bus.Publish(ctx, entity.Event{Kind: entity.EventGameReset, GameID: "game-2"}))
	require.NoError(t, bus.Publish(ctx, entity.Event{Kind: entity.EventMoveApplied, GameID: "game-1", Index: 4}))

	// Then: each subscriber only sees its own game
	got := receive(t, first)
	assert.Equal(t, entity.EventMoveApplied, got.Kind)
	assert.Equal(t, 4, got.Index)

	got = receive(t, second)
	assert.Equal(t, entity.EventGameReset, got.Kind)

	select {
	case evt := <-first:
		t.Fatalf("unexpected event for game-1: %+v", evt)
	default:
	}
}

func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	ctx, bus := startBus(t)

	ch, unsubscribe := bus.Subscribe("game-1")
	unsubscribe()

	require.NoError(t, bus.Publish(ctx, entity.Event{Kind: entity.EventMoveApplied, GameID: "game-1"}))

	select {
	case evt := <-ch:
		t.Fatalf("unexpected event after unsubscribe: %+v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_PublishHonoursContext(t *testing.T) {
	// Given: a bus that was never started
	bus := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// When: publishing with a cancelled context
	err := bus.Publish(ctx, entity.Event{GameID: "game-1"})

	// Then: the call returns instead of blocking
	require.ErrorIs(t, err, context.Canceled)
}
