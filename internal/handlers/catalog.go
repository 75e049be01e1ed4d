package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Device catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, devices"
// @Router       /api/v1/catalog/devices [get]
func (h *Handler) listDevices(c *gin.Context) {
	devices := h.services.Catalog.Devices()
	c.JSON(http.StatusOK, gin.H{"count": len(devices), "devices": devices})
}

// @Summary      Payment methods
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, payment_methods"
// @Router       /api/v1/catalog/payment-methods [get]
func (h *Handler) listPaymentMethods(c *gin.Context) {
	methods := h.services.Catalog.PaymentMethods()
	c.JSON(http.StatusOK, gin.H{"count": len(methods), "payment_methods": methods})
}

// @Summary      Kiosk stations
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, stations"
// @Router       /api/v1/stations [get]
func (h *Handler) listStations(c *gin.Context) {
	stations := h.services.Catalog.Stations()
	c.JSON(http.StatusOK, gin.H{"count": len(stations), "stations": stations})
}
