package handlers

import (
	"errors"
	"net/http"

	"solar_kiosk/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK        = "ok"
	statusStarted   = "started"
	statusCancelled = "cancelled"
	statusUpdated   = "updated"

	errInternal        = "internal error"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// statusFor maps engine errors to HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidSelection),
		errors.Is(err, service.ErrInvalidAirQuality),
		errors.Is(err, service.ErrInvalidWindow),
		service.IsInvalidFilter(err):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrSessionAlreadyActive):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError answers with the mapped status. Client errors carry the error text; server errors do not.
func (h *Handler) respondError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		h.logAndJSONError(c, code, errInternal, logKey, err, kv...)
		return
	}
	if h.log != nil {
		h.log.Infow(logKey, append([]interface{}{"err", err}, kv...)...)
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

// StartSessionRequest is the payload of POST /api/v1/session/start.
type StartSessionRequest struct {
	// Device to charge, see /api/v1/catalog/devices
	DeviceID string `json:"device_id" binding:"required" example:"smartphone"`
	// Payment method, see /api/v1/catalog/payment-methods
	PaymentMethodID string `json:"payment_method_id" binding:"required" example:"wave"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Current charging session
// @Tags         session
// @Produce      json
// @Success      200  {object}  models.ChargingSession
// @Router       /api/v1/session [get]
func (h *Handler) getSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Sessions.Current())
}

// @Summary      Start charging
// @Description  Fails with 400 for an unknown device or payment method and 409 while a session is active
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      StartSessionRequest  true  "Selection"
// @Success      200   {object}  map[string]interface{}  "status, session"
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/session/start [post]
func (h *Handler) startSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	sess, err := h.services.Sessions.Start(c.Request.Context(), req.DeviceID, req.PaymentMethodID)
	if err != nil {
		h.respondError(c, "session_start_rejected", err, "device", req.DeviceID, "payment_method", req.PaymentMethodID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusStarted, "session": sess})
}

// @Summary      Cancel charging
// @Description  Always succeeds; resets the kiosk to idle
// @Tags         session
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, session"
// @Router       /api/v1/session/cancel [post]
func (h *Handler) cancelSession(c *gin.Context) {
	sess := h.services.Sessions.Cancel(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": statusCancelled, "session": sess})
}
