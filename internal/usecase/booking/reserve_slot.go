package booking

import (
	"context"
	"strings"

	"github.com/studiobela/salon-booking/internal/audit"
	"github.com/studiobela/salon-booking/internal/cache"
	domain "github.com/studiobela/salon-booking/internal/domain/slot"
	"github.com/studiobela/salon-booking/internal/events"
	"github.com/studiobela/salon-booking/internal/httperr"
	"github.com/studiobela/salon-booking/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type ReserveSlotInput struct {
	Date string
	Time string

	Customer string
	Email    string
	Phone    string

	Services    []string
	SpecialDate string
	Message     string
}

type Confirmation struct {
	Customer string `json:"customer"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// ======================================================
// USE CASE
// ======================================================

type ReserveSlot struct {
	repo      domain.Repository
	publisher events.Publisher
	cache     *cache.DayCache
	audit     *audit.Dispatcher
}

func NewReserveSlot(
	repo domain.Repository,
	publisher events.Publisher,
	dayCache *cache.DayCache,
	auditDispatcher *audit.Dispatcher,
) *ReserveSlot {
	return &ReserveSlot{
		repo:      repo,
		publisher: publisher,
		cache:     dayCache,
		audit:     auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ReserveSlot) Execute(
	ctx context.Context,
	in ReserveSlotInput,
) (*Confirmation, error) {

	// --------------------------------------------------
	// 1. Validação (nenhuma mutação em caso de erro)
	// --------------------------------------------------
	if err := validate(in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Check-then-reserve atômico no repositório
	// --------------------------------------------------
	reserved, err := uc.repo.Reserve(ctx, in.Date, in.Time, domain.Reservation{
		Customer:    strings.TrimSpace(in.Customer),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Services:    in.Services,
		SpecialDate: in.SpecialDate,
		Message:     in.Message,
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Pós-commit: cache, broadcast, auditoria
	// --------------------------------------------------
	uc.cache.Invalidate(ctx, in.Date)

	uc.publisher.Publish(events.Event{
		Customer: reserved.Customer,
		Date:     reserved.Date,
		Time:     reserved.Time,
	})

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_confirmed",
		Entity:   "slot",
		EntityID: &reserved.ID,
		Metadata: map[string]any{
			"date": reserved.Date,
			"time": reserved.Time,
		},
	})

	return &Confirmation{
		Customer: reserved.Customer,
		Date:     reserved.Date,
		Time:     reserved.Time,
	}, nil
}

func validate(in ReserveSlotInput) error {
	if !isValidDate(in.Date) {
		return httperr.ErrBusiness("validation_failed")
	}
	if !isValidTime(in.Time) {
		return httperr.ErrBusiness("validation_failed")
	}
	if strings.TrimSpace(in.Customer) == "" {
		return httperr.ErrBusiness("validation_failed")
	}
	if email := strings.TrimSpace(in.Email); email != "" && !validators.IsEmailValid(email) {
		return httperr.ErrBusiness("validation_failed")
	}
	return nil
}
