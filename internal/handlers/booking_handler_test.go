package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/studiobela/salon-booking/internal/audit"
	"github.com/studiobela/salon-booking/internal/events"
	infraRepo "github.com/studiobela/salon-booking/internal/infra/repository"
	"github.com/studiobela/salon-booking/internal/models"
	"github.com/studiobela/salon-booking/internal/usecase/booking"
)

func newTestRouter(t *testing.T) (*gin.Engine, *events.Hub, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Slot{}, &models.AuditLog{}))

	repo := infraRepo.NewSlotGormRepository(db)
	hub := events.NewHub(zap.NewNop())
	auditDispatcher := audit.NewDispatcher(audit.New(db))

	bookingHandler := NewBookingHandler(
		booking.NewCheckAvailability(repo),
		booking.NewReserveSlot(repo, hub, nil, auditDispatcher),
	)
	slotAdminHandler := NewSlotAdminHandler(
		booking.NewListSlots(repo, nil),
		booking.NewSeedSlots(repo, nil, auditDispatcher),
		booking.NewUpdateSlot(repo, nil, auditDispatcher),
		booking.NewDeleteSlot(repo, nil, auditDispatcher),
	)

	r := gin.New()
	r.GET("/api/public/availability", bookingHandler.CheckAvailability)
	r.POST("/api/public/bookings", bookingHandler.ConfirmBooking)
	r.GET("/api/admin/slots", slotAdminHandler.List)
	r.POST("/api/admin/slots/seed", slotAdminHandler.Seed)
	r.PATCH("/api/admin/slots/:id", slotAdminHandler.Update)
	r.DELETE("/api/admin/slots/:id", slotAdminHandler.Delete)

	return r, hub, db
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedRouter(t *testing.T, r *gin.Engine) {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/api/admin/slots/seed", gin.H{
		"start_date": "2024-12-01",
		"end_date":   "2024-12-02",
		"times":      []string{"09:00", "10:00"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCheckAvailabilityMissingParams(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/public/availability?date=2024-12-01", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckAvailabilityFlow(t *testing.T) {
	r, _, _ := newTestRouter(t)
	seedRouter(t, r)

	w := doJSON(r, http.MethodGet, "/api/public/availability?date=2024-12-01&time=09:00", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Available bool   `json:"available"`
		Reason    string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Empty(t, resp.Reason)

	w = doJSON(r, http.MethodGet, "/api/public/availability?date=2024-12-01&time=23:00", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.Equal(t, "slot_not_found", resp.Reason)
}

func TestConfirmBookingSuccess(t *testing.T) {
	r, hub, _ := newTestRouter(t)
	seedRouter(t, r)

	_, ch := hub.Subscribe()

	w := doJSON(r, http.MethodPost, "/api/public/bookings", gin.H{
		"customer": "Ana",
		"email":    "ana@example.com",
		"date":     "2024-12-01",
		"time":     "09:00",
		"services": []string{"corte"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success      bool   `json:"success"`
		Message      string `json:"message"`
		Confirmation struct {
			Customer string `json:"customer"`
			Date     string `json:"date"`
			Time     string `json:"time"`
		} `json:"confirmation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Ana", resp.Confirmation.Customer)
	assert.Equal(t, "2024-12-01", resp.Confirmation.Date)
	assert.Equal(t, "09:00", resp.Confirmation.Time)

	// o assinante conectado recebeu a confirmação
	ev := <-ch
	assert.Equal(t, events.Event{Customer: "Ana", Date: "2024-12-01", Time: "09:00"}, ev)

	// disponível não mais
	w = doJSON(r, http.MethodGet, "/api/public/availability?date=2024-12-01&time=09:00", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available":false`)
}

func TestConfirmBookingErrors(t *testing.T) {
	r, _, _ := newTestRouter(t)
	seedRouter(t, r)

	// binding: cliente ausente
	w := doJSON(r, http.MethodPost, "/api/public/bookings", gin.H{
		"date": "2024-12-01",
		"time": "09:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_request")

	// chave inexistente
	w = doJSON(r, http.MethodPost, "/api/public/bookings", gin.H{
		"customer": "Ana",
		"date":     "2024-12-01",
		"time":     "23:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "slot_not_found")

	// primeira reserva passa, segunda falha
	w = doJSON(r, http.MethodPost, "/api/public/bookings", gin.H{
		"customer": "Ana",
		"date":     "2024-12-01",
		"time":     "09:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/public/bookings", gin.H{
		"customer": "Bia",
		"date":     "2024-12-01",
		"time":     "09:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "slot_unavailable")
}

func TestAdminListSlots(t *testing.T) {
	r, _, _ := newTestRouter(t)
	seedRouter(t, r)

	w := doJSON(r, http.MethodGet, "/api/admin/slots?date=2024-12-01", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data  []models.Slot `json:"data"`
		Total int           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "09:00", resp.Data[0].Time)

	w = doJSON(r, http.MethodGet, "/api/admin/slots", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminUpdateAndDelete(t *testing.T) {
	r, _, db := newTestRouter(t)
	seedRouter(t, r)

	var s models.Slot
	require.NoError(t, db.Where("date = ? AND time = ?", "2024-12-01", "09:00").First(&s).Error)

	w := doJSON(r, http.MethodPatch, fmt.Sprintf("/api/admin/slots/%d", s.ID), gin.H{
		"phone": "11999990000",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "11999990000")

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/admin/slots/%d", s.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/admin/slots/%d", s.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPatch, "/api/admin/slots/abc", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminSeedValidation(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/admin/slots/seed", gin.H{
		"start_date": "2024-12-02",
		"end_date":   "2024-12-01",
		"times":      []string{"09:00"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_failed")
}
