package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/rocketscienceinc/tictactok-backend/internal/apperror"
	"github.com/rocketscienceinc/tictactok-backend/internal/entity"
)

// MemoryGameRepository keeps games in process memory. Games are copied on the
// way in and out so callers never share state with the store.
type MemoryGameRepository struct {
	logger *slog.Logger
	games  *xsync.MapOf[string, entity.Game]
	ttl    time.Duration
}

func NewMemoryGameRepository(logger *slog.Logger, ttl time.Duration) *MemoryGameRepository {
	return &MemoryGameRepository{
		logger: logger,
		games:  xsync.NewMapOf[string, entity.Game](),
		ttl:    ttl,
	}
}

func (that *MemoryGameRepository) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.games.Store(game.ID, *game)
	return nil
}

func (that *MemoryGameRepository) GetByID(_ context.Context, id string) (*entity.Game, error) {
	game, ok := that.games.Load(id)
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	return &game, nil
}

// Sweep drops games not updated within the ttl before now and returns how many went.
func (that *MemoryGameRepository) Sweep(now time.Time) int {
	if that.ttl <= 0 {
		return 0
	}

	deadline := now.Add(-that.ttl)

	expired := 0
	that.games.Range(func(id string, _ entity.Game) bool {
		if that.expire(id, deadline) {
			expired++
		}
		return true
	})

	return expired
}

// expire deletes id if its current value was last updated before deadline.
// The check runs on the stored value, so a write racing the sweep is kept.
func (that *MemoryGameRepository) expire(id string, deadline time.Time) bool {
	deleted := false

	that.games.Compute(id, func(game entity.Game, loaded bool) (entity.Game, bool) {
		if !loaded {
			return game, true
		}

		if !game.UpdatedAt.Before(deadline) {
			return game, false
		}

		that.logger.Debug(
			"game expired, deleting",
			"gameID", id,
			"updated_at", game.UpdatedAt)
		deleted = true

		return game, true
	})

	return deleted
}

// RunSweeper calls Sweep every interval until ctx is done.
func (that *MemoryGameRepository) RunSweeper(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if expired := that.Sweep(now); expired > 0 {
				that.logger.Info("expired games swept", "count", expired)
			}
		}
	}
}
