package handlers

import (
	"net/http"
	"time"

	"fintrack/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint. The db is nil when
// the in-memory backend is active; only database readiness is probed.
type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports API and storage readiness
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			traceID := getTraceID(c)
			errorResponse := errors.NewErrorResponse(
				errors.SystemServiceUnavailable,
				traceID,
				errors.WithDetails("Database connection failed"),
			)
			return c.JSON(http.StatusServiceUnavailable, errorResponse)
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
