package screening

import (
	"context"

	"github.com/kinoline/kinoline/pkg/api"
	"go-micro.dev/v4/logger"
	"google.golang.org/protobuf/types/known/emptypb"
)

func (s *Screening) MoveToPosition(ctx context.Context, req *api.MoveToPositionRequest, _ *emptypb.Empty) error {
	defer s.Locker.Lock(lockKey).Unlock()

	if err := s.Queue.MoveToPosition(req.Id, req.Position); err != nil {
		logger.Errorf("Move queued item failed: %s", err)
		return err
	}
	return nil
}

func (s *Screening) MoveToBeginning(ctx context.Context, req *api.MoveRequest, _ *emptypb.Empty) error {
	defer s.Locker.Lock(lockKey).Unlock()

	if err := s.Queue.MoveToBeginning(req.Id); err != nil {
		logger.Errorf("Move queued item failed: %s", err)
		return err
	}
	return nil
}

func (s *Screening) MoveToEnd(ctx context.Context, req *api.MoveRequest, _ *emptypb.Empty) error {
	defer s.Locker.Lock(lockKey).Unlock()

	if err := s.Queue.MoveToEnd(req.Id); err != nil {
		logger.Errorf("Move queued item failed: %s", err)
		return err
	}
	return nil
}

func (s *Screening) Swap(ctx context.Context, req *api.SwapRequest, _ *emptypb.Empty) error {
	defer s.Locker.Lock(lockKey).Unlock()

	if err := s.Queue.Swap(req.FirstId, req.SecondId); err != nil {
		logger.Errorf("Swap queued items failed: %s", err)
		return err
	}
	return nil
}
