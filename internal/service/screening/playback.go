package screening

import (
	"context"

	"github.com/kinoline/kinoline/pkg/api"
	"go-micro.dev/v4/logger"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *Screening) GoTo(ctx context.Context, req *api.GoToRequest, _ *emptypb.Empty) error {
	defer s.Locker.Lock(lockKey).Unlock()

	if err := s.Queue.SetCursor(req.Position); err != nil {
		logger.Errorf("Set cursor failed: %s", err)
		return err
	}
	return nil
}

func (s *Screening) Rewind(ctx context.Context, _ *emptypb.Empty, _ *emptypb.Empty) error {
	defer s.Locker.Lock(lockKey).Unlock()

	if err := s.Queue.Rewind(); err != nil {
		logger.Errorf("Rewind failed: %s", err)
		return err
	}
	return nil
}

func (s *Screening) PlayCurrent(ctx context.Context, _ *emptypb.Empty, resp *api.ItemResponse) error {
	defer s.Locker.Lock(lockKey).Unlock()

	item, err := s.Queue.ConsumeCurrent(ctx)
	if err != nil {
		logger.Errorf("Play current failed: %s", err)
		return err
	}
	resp.Item = api.FromModel(item)
	return nil
}

func (s *Screening) PlayAll(ctx context.Context, _ *emptypb.Empty, resp *api.PlayedResponse) error {
	defer s.Locker.Lock(lockKey).Unlock()

	items, err := s.Queue.ConsumeAll(ctx)
	if err != nil {
		logger.Errorf("Play all failed: %s", err)
		return err
	}

	resp.Items = make([]*api.Item, len(items))
	for i := range items {
		resp.Items[i] = api.FromModel(items[i])
	}
	return nil
}

func (s *Screening) PlayRest(ctx context.Context, _ *emptypb.Empty, resp *api.PlayedResponse) error {
	defer s.Locker.Lock(lockKey).Unlock()

	items, err := s.Queue.ConsumeRemaining(ctx)
	if err != nil {
		logger.Errorf("Play rest failed: %s", err)
		return err
	}

	resp.Items = make([]*api.Item, len(items))
	for i := range items {
		resp.Items[i] = api.FromModel(items[i])
	}
	return nil
}
