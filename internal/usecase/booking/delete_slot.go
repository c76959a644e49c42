package booking

import (
	"context"

	"github.com/studiobela/salon-booking/internal/audit"
	"github.com/studiobela/salon-booking/internal/cache"
	domain "github.com/studiobela/salon-booking/internal/domain/slot"
)

// ======================================================
// DELETE SLOT (manutenção administrativa)
// ======================================================

type DeleteSlot struct {
	repo  domain.Repository
	cache *cache.DayCache
	audit *audit.Dispatcher
}

func NewDeleteSlot(
	repo domain.Repository,
	dayCache *cache.DayCache,
	auditDispatcher *audit.Dispatcher,
) *DeleteSlot {
	return &DeleteSlot{
		repo:  repo,
		cache: dayCache,
		audit: auditDispatcher,
	}
}

func (uc *DeleteSlot) Execute(ctx context.Context, id uint) error {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, s.Date)

	uc.audit.Dispatch(audit.Event{
		Action:   "slot_deleted",
		Entity:   "slot",
		EntityID: &s.ID,
	})

	return nil
}
