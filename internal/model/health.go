package model

import (
	"time"

	"github.com/google/uuid"
)

// HealthStatus enum constants
const (
	HealthUnknown = "UNKNOWN"
	HealthUp      = "UP"
	HealthDown    = "DOWN"
)

// HealthCheck is one observation of the upstream /health endpoint
type HealthCheck struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Status         string    `gorm:"type:varchar(10);not null;index" json:"status"` // UNKNOWN, UP, DOWN
	ResponseTimeMs *int64    `json:"response_time_ms"`                              // nil when the connection failed
	StatusCode     int       `json:"status_code,omitempty"`
	ErrorMessage   string    `gorm:"type:text" json:"error_message,omitempty"`
	CheckedAt      time.Time `gorm:"index" json:"checked_at"`
}
