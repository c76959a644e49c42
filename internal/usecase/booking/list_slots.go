package booking

import (
	"context"

	"github.com/studiobela/salon-booking/internal/cache"
	domain "github.com/studiobela/salon-booking/internal/domain/slot"
	"github.com/studiobela/salon-booking/internal/httperr"
	"github.com/studiobela/salon-booking/internal/models"
)

type ListSlots struct {
	repo  domain.Repository
	cache *cache.DayCache
}

func NewListSlots(repo domain.Repository, dayCache *cache.DayCache) *ListSlots {
	return &ListSlots{
		repo:  repo,
		cache: dayCache,
	}
}

func (uc *ListSlots) Execute(
	ctx context.Context,
	date string,
) ([]models.Slot, error) {

	if !isValidDate(date) {
		return nil, httperr.ErrBusiness("validation_failed")
	}

	if slots, ok := uc.cache.Get(ctx, date); ok {
		return slots, nil
	}

	slots, err := uc.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, date, slots)

	return slots, nil
}
