package slot

import "github.com/studiobela/salon-booking/internal/httperr"

// ===============================
// Slot Status
// ===============================

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
)

// ===============================
// Validations
// ===============================

// CanReserve define se um horário pode ser reservado.
// "reserved" é terminal: não existe caminho de volta para "available".
func CanReserve(current Status) error {
	if current != StatusAvailable {
		return httperr.ErrBusiness("slot_unavailable")
	}
	return nil
}

func InitialStatus() Status {
	return StatusAvailable
}
