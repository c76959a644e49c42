package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studiobela/salon-booking/internal/httperr"
	"github.com/studiobela/salon-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	checkAvailabilityUC *booking.CheckAvailability
	reserveSlotUC       *booking.ReserveSlot
}

func NewBookingHandler(
	checkAvailabilityUC *booking.CheckAvailability,
	reserveSlotUC *booking.ReserveSlot,
) *BookingHandler {
	return &BookingHandler{
		checkAvailabilityUC: checkAvailabilityUC,
		reserveSlotUC:       reserveSlotUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ConfirmBookingRequest struct {
	Customer string `json:"customer" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm

	Services    []string `json:"services"`
	SpecialDate string   `json:"special_date"`
	Message     string   `json:"message"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	date := c.Query("date")
	timeStr := c.Query("time")

	if date == "" || timeStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e hora obrigatórias.")
		return
	}

	available, reason, err := h.checkAvailabilityUC.Execute(
		c.Request.Context(),
		date,
		timeStr,
	)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao verificar disponibilidade.")
		return
	}

	message := "Horário disponível!"
	switch reason {
	case "slot_not_found":
		message = "Horário não existe."
	case "slot_unavailable":
		message = "Horário já reservado."
	}

	c.JSON(http.StatusOK, gin.H{
		"available": available,
		"reason":    reason,
		"message":   message,
	})
}

// ======================================================
// CONFIRM
// ======================================================

func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var req ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Campos obrigatórios ausentes.")
		return
	}

	confirmation, err := h.reserveSlotUC.Execute(
		c.Request.Context(),
		booking.ReserveSlotInput{
			Date:        req.Date,
			Time:        req.Time,
			Customer:    req.Customer,
			Email:       req.Email,
			Phone:       req.Phone,
			Services:    req.Services,
			SpecialDate: req.SpecialDate,
			Message:     req.Message,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "validation_failed"):
			httperr.BadRequest(c, "validation_failed", "Campos obrigatórios ausentes ou inválidos.")
		case httperr.IsBusiness(err, "slot_not_found"):
			httperr.BadRequest(c, "slot_not_found", "Horário não encontrado.")
		case httperr.IsBusiness(err, "slot_unavailable"):
			httperr.BadRequest(c, "slot_unavailable", "Horário já reservado.")
		default:
			httperr.Internal(c, "booking_failed", "Erro interno ao confirmar agendamento.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"message":      "Agendamento confirmado com sucesso!",
		"confirmation": confirmation,
	})
}
