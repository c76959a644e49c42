package booking

import (
	"context"

	"github.com/studiobela/salon-booking/internal/audit"
	"github.com/studiobela/salon-booking/internal/cache"
	domain "github.com/studiobela/salon-booking/internal/domain/slot"
	"github.com/studiobela/salon-booking/internal/models"
)

// ======================================================
// UPDATE SLOT (manutenção administrativa)
// ======================================================

type UpdateSlot struct {
	repo  domain.Repository
	cache *cache.DayCache
	audit *audit.Dispatcher
}

func NewUpdateSlot(
	repo domain.Repository,
	dayCache *cache.DayCache,
	auditDispatcher *audit.Dispatcher,
) *UpdateSlot {
	return &UpdateSlot{
		repo:  repo,
		cache: dayCache,
		audit: auditDispatcher,
	}
}

// Execute altera apenas os dados do cliente anexados ao horário. Status não
// é editável por aqui: uma vez reservado, o horário não volta a ficar
// disponível.
func (uc *UpdateSlot) Execute(
	ctx context.Context,
	id uint,
	fields domain.UpdateFields,
) (*models.Slot, error) {

	updated, err := uc.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, updated.Date)

	uc.audit.Dispatch(audit.Event{
		Action:   "slot_updated",
		Entity:   "slot",
		EntityID: &updated.ID,
	})

	return updated, nil
}
