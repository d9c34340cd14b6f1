package faceoff

import (
	"context"

	"github.com/kinoline/kinoline/internal/arena"
	"github.com/kinoline/kinoline/internal/lock"
	"github.com/kinoline/kinoline/pkg/api"
	"go-micro.dev/v4/logger"
	"google.golang.org/protobuf/types/known/emptypb"
)

const lockKey = "faceoff"

// Faceoff is the handler of arena operations
type Faceoff struct {
	Arena   *arena.Arena
	Catalog Catalog
	Locker  lock.Locker
}

func (f *Faceoff) Prep(ctx context.Context, req *api.PrepRequest, _ *emptypb.Empty) error {
	defer f.Locker.Lock(lockKey).Unlock()

	item, err := f.Catalog.GetItem(ctx, req.Id)
	if err != nil {
		logger.Errorf("Prep combatant failed: %s", err)
		return err
	}

	if err = f.Arena.Prep(*item); err != nil {
		logger.Errorf("Prep combatant failed: %s", err)
		return err
	}
	return nil
}

func (f *Faceoff) Clear(ctx context.Context, _ *emptypb.Empty, _ *emptypb.Empty) error {
	defer f.Locker.Lock(lockKey).Unlock()

	f.Arena.Clear()
	return nil
}

func (f *Faceoff) Combatants(ctx context.Context, _ *emptypb.Empty, resp *api.ListItemsResponse) error {
	defer f.Locker.Lock(lockKey).Unlock()

	combatants := f.Arena.Combatants()
	resp.Items = make([]*api.Item, len(combatants))
	for i := range combatants {
		resp.Items[i] = api.FromModel(combatants[i])
	}
	return nil
}

func (f *Faceoff) Battle(ctx context.Context, _ *emptypb.Empty, resp *api.BattleResponse) error {
	defer f.Locker.Lock(lockKey).Unlock()

	winner, err := f.Arena.Battle(ctx)
	if err != nil {
		logger.Errorf("Faceoff failed: %s", err)
		return err
	}
	resp.Winner = api.FromModel(winner)
	return nil
}
