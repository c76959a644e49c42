package slot

import (
	"context"

	"github.com/studiobela/salon-booking/internal/models"
)

// Reservation carrega os dados do cliente anexados a um horário no momento
// da reserva.
type Reservation struct {
	Customer    string
	Email       string
	Phone       string
	Services    []string
	SpecialDate string
	Message     string
}

type UpdateFields struct {
	Customer    *string
	Email       *string
	Phone       *string
	Services    []string
	SpecialDate *string
	Message     *string
}

type Repository interface {
	// -------- Lookup --------
	GetByKey(
		ctx context.Context,
		date string,
		time string,
	) (*models.Slot, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Slot, error)

	ListByDate(
		ctx context.Context,
		date string,
	) ([]models.Slot, error)

	// -------- Reserve (check-then-write atômico) --------
	Reserve(
		ctx context.Context,
		date string,
		time string,
		res Reservation,
	) (*models.Slot, error)

	// -------- Seed --------
	CreateMissing(
		ctx context.Context,
		slots []models.Slot,
	) (int, error)

	// -------- Maintenance --------
	Update(
		ctx context.Context,
		id uint,
		fields UpdateFields,
	) (*models.Slot, error)

	Delete(
		ctx context.Context,
		id uint,
	) error
}
