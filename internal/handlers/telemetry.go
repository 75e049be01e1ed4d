package handlers

import (
	"net/http"
	"time"

	"solar_kiosk/internal/models"
	"solar_kiosk/internal/service"

	"github.com/gin-gonic/gin"
)

const maxSummaryWindow = 24 * time.Hour

// AirQualityRequest is the payload of PUT /api/v1/telemetry/air-quality.
type AirQualityRequest struct {
	// One of Excellent, Good, Moderate, Poor, Hazardous
	AirQuality string `json:"air_quality" binding:"required" example:"Moderate"`
}

// @Summary      Current telemetry snapshot
// @Tags         telemetry
// @Produce      json
// @Success      200  {object}  models.TelemetrySnapshot
// @Router       /api/v1/telemetry [get]
func (h *Handler) getTelemetry(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Telemetry.CurrentSnapshot())
}

// @Summary      Set air quality
// @Description  The periodic tick never changes the label; this is the only way to update it
// @Tags         telemetry
// @Accept       json
// @Produce      json
// @Param        body  body      AirQualityRequest  true  "Label"
// @Success      200   {object}  map[string]interface{}  "status, telemetry"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/telemetry/air-quality [put]
func (h *Handler) setAirQuality(c *gin.Context) {
	var req AirQualityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	snap, err := h.services.Telemetry.SetAirQuality(c.Request.Context(), models.AirQuality(req.AirQuality))
	if err != nil {
		h.respondError(c, "air_quality_rejected", err, "air_quality", req.AirQuality)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusUpdated, "telemetry": snap})
}

// @Summary      Environment summary
// @Description  Aggregates the telemetry recorded over the window; alert is set once the max temperature reaches 30°C
// @Tags         telemetry
// @Produce      json
// @Param        window  query     string  false  "Go duration, up to 24h"  example(15m)
// @Success      200     {object}  models.EnvironmentSummary
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/v1/environment/summary [get]
func (h *Handler) getEnvironmentSummary(c *gin.Context) {
	window := service.DefaultSummaryWindow
	if qs := c.Query("window"); qs != "" {
		d, err := time.ParseDuration(qs)
		if err != nil || d <= 0 || d > maxSummaryWindow {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'window'; use a Go duration such as 15m, at most 24h"})
			return
		}
		window = d
	}
	sum, err := h.services.Environment.Summary(c.Request.Context(), window)
	if err != nil {
		h.respondError(c, "environment_summary_failed", err, "window", window.String())
		return
	}
	c.JSON(http.StatusOK, sum)
}
