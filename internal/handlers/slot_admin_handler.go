package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/studiobela/salon-booking/internal/domain/slot"
	"github.com/studiobela/salon-booking/internal/httperr"
	"github.com/studiobela/salon-booking/internal/httpresp"
	"github.com/studiobela/salon-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER (manutenção administrativa de horários)
// ======================================================

type SlotAdminHandler struct {
	listSlotsUC  *booking.ListSlots
	seedSlotsUC  *booking.SeedSlots
	updateSlotUC *booking.UpdateSlot
	deleteSlotUC *booking.DeleteSlot
}

func NewSlotAdminHandler(
	listSlotsUC *booking.ListSlots,
	seedSlotsUC *booking.SeedSlots,
	updateSlotUC *booking.UpdateSlot,
	deleteSlotUC *booking.DeleteSlot,
) *SlotAdminHandler {
	return &SlotAdminHandler{
		listSlotsUC:  listSlotsUC,
		seedSlotsUC:  seedSlotsUC,
		updateSlotUC: updateSlotUC,
		deleteSlotUC: deleteSlotUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SeedSlotsRequest struct {
	StartDate string   `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string   `json:"end_date" binding:"required"`   // YYYY-MM-DD
	Times     []string `json:"times" binding:"required"`      // ["09:00", ...]
}

type UpdateSlotRequest struct {
	Customer    *string  `json:"customer"`
	Email       *string  `json:"email"`
	Phone       *string  `json:"phone"`
	Services    []string `json:"services"`
	SpecialDate *string  `json:"special_date"`
	Message     *string  `json:"message"`
}

// ======================================================
// LIST
// ======================================================

func (h *SlotAdminHandler) List(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	slots, err := h.listSlotsUC.Execute(c.Request.Context(), date)
	if err != nil {
		if httperr.IsBusiness(err, "validation_failed") {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		httperr.Internal(c, "failed_to_list_slots", "Erro ao listar horários.")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// SEED
// ======================================================

func (h *SlotAdminHandler) Seed(c *gin.Context) {
	var req SeedSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	created, err := h.seedSlotsUC.Execute(
		c.Request.Context(),
		booking.SeedSlotsInput{
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
			Times:     req.Times,
		},
	)
	if err != nil {
		if httperr.IsBusiness(err, "validation_failed") {
			httperr.BadRequest(c, "validation_failed", "Intervalo ou horários inválidos.")
			return
		}
		httperr.Internal(c, "seed_failed", "Erro ao gerar horários.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"created": created})
}

// ======================================================
// UPDATE
// ======================================================

func (h *SlotAdminHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updated, err := h.updateSlotUC.Execute(
		c.Request.Context(),
		uint(id),
		domain.UpdateFields{
			Customer:    req.Customer,
			Email:       req.Email,
			Phone:       req.Phone,
			Services:    req.Services,
			SpecialDate: req.SpecialDate,
			Message:     req.Message,
		},
	)
	if err != nil {
		if httperr.IsBusiness(err, "slot_not_found") {
			httperr.NotFound(c, "slot_not_found", "Horário não encontrado.")
			return
		}
		httperr.Internal(c, "update_failed", "Erro ao atualizar horário.")
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// DELETE
// ======================================================

func (h *SlotAdminHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.deleteSlotUC.Execute(c.Request.Context(), uint(id)); err != nil {
		if httperr.IsBusiness(err, "slot_not_found") {
			httperr.NotFound(c, "slot_not_found", "Horário não encontrado.")
			return
		}
		httperr.Internal(c, "delete_failed", "Erro ao remover horário.")
		return
	}

	c.Status(http.StatusNoContent)
}
