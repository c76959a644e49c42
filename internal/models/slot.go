package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// ServiceList é persistida como texto separado por vírgula, no mesmo
// formato da base original do salão.
type ServiceList []string

func (s ServiceList) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "", nil
	}
	return strings.Join(s, ", "), nil
}

func (s *ServiceList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*s = nil
	case string:
		*s = splitServices(v)
	case []byte:
		*s = splitServices(string(v))
	default:
		return fmt.Errorf("unsupported type for ServiceList: %T", value)
	}
	return nil
}

func splitServices(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Slot é a unidade de capacidade do salão: um par (data, hora) único.
type Slot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_slots_date_time" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;not null;uniqueIndex:idx_slots_date_time" json:"time"`  // HH:mm

	Status string `gorm:"size:20;default:'available'" json:"status"`

	Customer string `gorm:"size:100" json:"customer"`
	Email    string `gorm:"size:100" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`

	Services ServiceList `gorm:"type:text" json:"services"`

	SpecialDate string `gorm:"size:255" json:"special_date"`
	Message     string `gorm:"size:255" json:"message"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
