package booking

import (
	"context"
	"time"

	"github.com/studiobela/salon-booking/internal/audit"
	"github.com/studiobela/salon-booking/internal/cache"
	domain "github.com/studiobela/salon-booking/internal/domain/slot"
	"github.com/studiobela/salon-booking/internal/httperr"
	"github.com/studiobela/salon-booking/internal/models"
)

// ======================================================
// SEED SLOTS
// ======================================================

type SeedSlotsInput struct {
	StartDate string
	EndDate   string
	Times     []string
}

type SeedSlots struct {
	repo  domain.Repository
	cache *cache.DayCache
	audit *audit.Dispatcher
}

func NewSeedSlots(
	repo domain.Repository,
	dayCache *cache.DayCache,
	auditDispatcher *audit.Dispatcher,
) *SeedSlots {
	return &SeedSlots{
		repo:  repo,
		cache: dayCache,
		audit: auditDispatcher,
	}
}

// Execute garante exatamente um horário available para cada combinação de
// dia no intervalo [start, end] e hora da grade diária. Chaves que já
// existem ficam intocadas, então rodar duas vezes com os mesmos argumentos
// não cria duplicata nem mexe em reservas feitas no meio do caminho.
//
// Operação administrativa: não deve rodar concorrente consigo mesma sobre
// intervalos que se sobrepõem.
func (uc *SeedSlots) Execute(
	ctx context.Context,
	in SeedSlotsInput,
) (int, error) {

	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return 0, httperr.ErrBusiness("validation_failed")
	}

	end, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return 0, httperr.ErrBusiness("validation_failed")
	}

	if end.Before(start) || len(in.Times) == 0 {
		return 0, httperr.ErrBusiness("validation_failed")
	}

	for _, hm := range in.Times {
		if !isValidTime(hm) {
			return 0, httperr.ErrBusiness("validation_failed")
		}
	}

	var slots []models.Slot
	var dates []string

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format(dateLayout)
		dates = append(dates, dateStr)

		for _, hm := range in.Times {
			slots = append(slots, models.Slot{
				Date:   dateStr,
				Time:   hm,
				Status: string(domain.InitialStatus()),
			})
		}
	}

	created, err := uc.repo.CreateMissing(ctx, slots)
	if err != nil {
		return 0, err
	}

	uc.cache.Invalidate(ctx, dates...)

	uc.audit.Dispatch(audit.Event{
		Action: "slots_seeded",
		Entity: "slot",
		Metadata: map[string]any{
			"start_date": in.StartDate,
			"end_date":   in.EndDate,
			"times":      in.Times,
			"created":    created,
		},
	})

	return created, nil
}
