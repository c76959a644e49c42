package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/studiobela/salon-booking/internal/domain/slot"
	"github.com/studiobela/salon-booking/internal/httperr"
	"github.com/studiobela/salon-booking/internal/models"
)

type SlotGormRepository struct {
	db *gorm.DB
}

func NewSlotGormRepository(db *gorm.DB) *SlotGormRepository {
	return &SlotGormRepository{db: db}
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *SlotGormRepository) GetByKey(
	ctx context.Context,
	date string,
	time string,
) (*models.Slot, error) {

	var s models.Slot
	if err := r.db.WithContext(ctx).
		Where("date = ? AND time = ?", date, time).
		First(&s).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("slot_not_found")
		}
		return nil, err
	}
	return &s, nil
}

func (r *SlotGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Slot, error) {

	var s models.Slot
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("slot_not_found")
		}
		return nil, err
	}
	return &s, nil
}

func (r *SlotGormRepository) ListByDate(
	ctx context.Context,
	date string,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// --------------------------------------------------
// Reserve
// --------------------------------------------------

// Reserve executa o check-then-write como um único UPDATE condicional:
// a linha só muda se ainda estiver "available". Duas reservas concorrentes
// na mesma chave disputam a mesma linha e apenas uma vê RowsAffected = 1;
// chaves diferentes nunca se bloqueiam.
func (r *SlotGormRepository) Reserve(
	ctx context.Context,
	date string,
	time string,
	res domain.Reservation,
) (*models.Slot, error) {

	var reserved models.Slot

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		result := tx.Model(&models.Slot{}).
			Where(
				"date = ? AND time = ? AND status = ?",
				date, time, string(domain.StatusAvailable),
			).
			Updates(map[string]any{
				"status":       string(domain.StatusReserved),
				"customer":     res.Customer,
				"email":        res.Email,
				"phone":        res.Phone,
				"services":     models.ServiceList(res.Services),
				"special_date": res.SpecialDate,
				"message":      res.Message,
			})

		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			// Distingue "não existe" de "já reservado".
			var existing models.Slot
			if err := tx.
				Where("date = ? AND time = ?", date, time).
				First(&existing).Error; err != nil {

				if errors.Is(err, gorm.ErrRecordNotFound) {
					return httperr.ErrBusiness("slot_not_found")
				}
				return err
			}
			if err := domain.CanReserve(domain.Status(existing.Status)); err != nil {
				return err
			}
			// corrida perdida entre o UPDATE e o SELECT de releitura
			return httperr.ErrBusiness("slot_unavailable")
		}

		return tx.
			Where("date = ? AND time = ?", date, time).
			First(&reserved).Error
	})

	if err != nil {
		return nil, err
	}

	return &reserved, nil
}

// --------------------------------------------------
// Seed
// --------------------------------------------------

// CreateMissing insere apenas os horários cuja chave (date, time) ainda não
// existe. O ON CONFLICT DO NOTHING sobre o índice único torna a operação
// idempotente e preserva reservas já feitas.
func (r *SlotGormRepository) CreateMissing(
	ctx context.Context,
	slots []models.Slot,
) (int, error) {

	if len(slots) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}, {Name: "time"}},
			DoNothing: true,
		}).
		Create(&slots)

	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}

// --------------------------------------------------
// Maintenance
// --------------------------------------------------

func (r *SlotGormRepository) Update(
	ctx context.Context,
	id uint,
	fields domain.UpdateFields,
) (*models.Slot, error) {

	var updated models.Slot

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var s models.Slot
		if err := tx.First(&s, id).Error; err != nil {

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrBusiness("slot_not_found")
			}
			return err
		}

		values := map[string]any{}
		if fields.Customer != nil {
			values["customer"] = *fields.Customer
		}
		if fields.Email != nil {
			values["email"] = *fields.Email
		}
		if fields.Phone != nil {
			values["phone"] = *fields.Phone
		}
		if fields.Services != nil {
			values["services"] = models.ServiceList(fields.Services)
		}
		if fields.SpecialDate != nil {
			values["special_date"] = *fields.SpecialDate
		}
		if fields.Message != nil {
			values["message"] = *fields.Message
		}

		if len(values) == 0 {
			updated = s
			return nil
		}

		if err := tx.Model(&s).Updates(values).Error; err != nil {
			return err
		}

		return tx.First(&updated, id).Error
	})

	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *SlotGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	result := r.db.WithContext(ctx).Delete(&models.Slot{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return httperr.ErrBusiness("slot_not_found")
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*SlotGormRepository)(nil)
