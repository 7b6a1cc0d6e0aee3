// Package eventbus fans game events out to the clients watching a game.
package eventbus

import (
	"context"
	"log/slog"

	"github.com/rocketscienceinc/tictactok-backend/internal/entity"
	"github.com/twipi/pubsub"
)

const subscriberBuffer = 16

type Bus struct {
	logger *slog.Logger
	sendCh chan entity.Event
	sub    pubsub.Subscriber[entity.Event]
}

func New(logger *slog.Logger) *Bus {
	return &Bus{
		logger: logger,
		sendCh: make(chan entity.Event),
	}
}

// Start delivers published events until ctx is done.
func (that *Bus) Start(ctx context.Context) error {
	return that.sub.Listen(ctx, that.sendCh)
}

// Publish hands evt to the bus. It blocks until the bus takes it or ctx is done.
func (that *Bus) Publish(ctx context.Context, evt entity.Event) error {
	select {
	case that.sendCh <- evt:
		that.logger.Debug(
			"event published",
			"gameID", evt.GameID,
			"kind", evt.Kind)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe returns a channel receiving the events of gameID and a function
// that must be called once the caller stops reading.
func (that *Bus) Subscribe(gameID string) (<-chan entity.Event, func()) {
	ch := make(chan entity.Event, subscriberBuffer)

	that.sub.Subscribe(ch, func(evt entity.Event) bool {
		return evt.GameID == gameID
	})

	unsubscribe := func() {
		done := make(chan struct{})
		go func() {
			that.sub.Unsubscribe(ch)
			close(done)
		}()

		// keep draining so an in-flight delivery cannot wedge the bus
		for {
			select {
			case <-ch:
			case <-done:
				return
			}
		}
	}

	return ch, unsubscribe
}
