package screening

import (
	"context"

	"github.com/kinoline/kinoline/pkg/api"
	"go-micro.dev/v4/logger"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *Screening) GetAll(ctx context.Context, _ *emptypb.Empty, resp *api.QueueResponse) error {
	defer s.Locker.Lock(lockKey).Unlock()

	items, err := s.Queue.Items()
	if err != nil {
		logger.Errorf("Get screening queue failed: %s", err)
		return err
	}

	resp.Items = make([]*api.Item, len(items))
	for i := range items {
		resp.Items[i] = api.FromModel(items[i])
	}
	resp.Cursor = s.Queue.Cursor()
	return nil
}

func (s *Screening) GetById(ctx context.Context, req *api.GetByIdRequest, resp *api.ItemResponse) error {
	defer s.Locker.Lock(lockKey).Unlock()

	item, err := s.Queue.GetByID(req.Id)
	if err != nil {
		logger.Errorf("Get queued item failed: %s", err)
		return err
	}
	resp.Item = api.FromModel(item)
	return nil
}

func (s *Screening) GetByPosition(ctx context.Context, req *api.GetByPositionRequest, resp *api.ItemResponse) error {
	defer s.Locker.Lock(lockKey).Unlock()

	item, err := s.Queue.GetByPosition(req.Position)
	if err != nil {
		logger.Errorf("Get queued item failed: %s", err)
		return err
	}
	resp.Item = api.FromModel(item)
	return nil
}

func (s *Screening) GetCurrent(ctx context.Context, _ *emptypb.Empty, resp *api.ItemResponse) error {
	defer s.Locker.Lock(lockKey).Unlock()

	item, err := s.Queue.Current()
	if err != nil {
		logger.Errorf("Get current item failed: %s", err)
		return err
	}
	resp.Item = api.FromModel(item)
	return nil
}

// Status reports the queue length and total duration; both are defined for an
// empty queue
func (s *Screening) Status(ctx context.Context, _ *emptypb.Empty, resp *api.StatusResponse) error {
	defer s.Locker.Lock(lockKey).Unlock()

	resp.Length = s.Queue.Len()
	resp.TotalDuration = s.Queue.TotalDuration()
	return nil
}
