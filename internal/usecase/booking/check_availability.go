package booking

import (
	"context"

	domain "github.com/studiobela/salon-booking/internal/domain/slot"
	"github.com/studiobela/salon-booking/internal/httperr"
)

// ======================================================
// CHECK AVAILABILITY
// ======================================================

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute responde se a chave (date, time) pode ser reservada agora.
// Leitura pura: um único SELECT, sem efeito colateral, seguro de rodar em
// paralelo com reservas em andamento.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	date string,
	time string,
) (bool, string, error) {

	s, err := uc.repo.GetByKey(ctx, date, time)
	if err != nil {
		if httperr.IsBusiness(err, "slot_not_found") {
			return false, "slot_not_found", nil
		}
		return false, "", err
	}

	if domain.Status(s.Status) != domain.StatusAvailable {
		return false, "slot_unavailable", nil
	}

	return true, "", nil
}
