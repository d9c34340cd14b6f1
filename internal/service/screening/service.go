package screening

import (
	"context"

	"github.com/kinoline/kinoline/internal/lock"
	"github.com/kinoline/kinoline/internal/playlist"
	"github.com/kinoline/kinoline/pkg/api"
	"go-micro.dev/v4/logger"
	"google.golang.org/protobuf/types/known/emptypb"
)

// The queue itself is not safe for concurrent use; every handler holds this
// lock for the whole operation.
const lockKey = "screening"

// Screening is the handler of the screening queue operations
type Screening struct {
	Queue   *playlist.Playlist
	Catalog Catalog
	Locker  lock.Locker
}

func (s *Screening) Add(ctx context.Context, req *api.AddRequest, _ *emptypb.Empty) error {
	defer s.Locker.Lock(lockKey).Unlock()

	item, err := s.Catalog.GetItem(ctx, req.Id)
	if err != nil {
		logger.Errorf("Add to screening queue failed: %s", err)
		return err
	}

	if err = s.Queue.Add(*item); err != nil {
		logger.Errorf("Add to screening queue failed: %s", err)
		return err
	}
	logger.Infof("Queued '%s' (id %d)", item.Title, item.ID)
	return nil
}

func (s *Screening) RemoveById(ctx context.Context, req *api.RemoveByIdRequest, _ *emptypb.Empty) error {
	defer s.Locker.Lock(lockKey).Unlock()

	if err := s.Queue.RemoveByID(req.Id); err != nil {
		logger.Errorf("Remove from screening queue failed: %s", err)
		return err
	}
	return nil
}

func (s *Screening) RemoveByPosition(ctx context.Context, req *api.RemoveByPositionRequest, _ *emptypb.Empty) error {
	defer s.Locker.Lock(lockKey).Unlock()

	if err := s.Queue.RemoveByPosition(req.Position); err != nil {
		logger.Errorf("Remove from screening queue failed: %s", err)
		return err
	}
	return nil
}

func (s *Screening) Clear(ctx context.Context, _ *emptypb.Empty, _ *emptypb.Empty) error {
	defer s.Locker.Lock(lockKey).Unlock()

	s.Queue.Clear()
	return nil
}
