// File: handlers/availability.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kanishkk18/events/models"
	availabilitySvc "github.com/kanishkk18/events/services/availability"
)

// AvailabilityHandler exposes the host's weekly rules and the guest-facing
// slot listings.
type AvailabilityHandler struct {
	Service availabilitySvc.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availabilitySvc.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

func (h *AvailabilityHandler) GetMyAvailabilityHandler(c *gin.Context) {
	userID := c.GetString("userID")

	schedule, err := h.Service.GetUserAvailability(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to fetch availability")
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": schedule})
}

func (h *AvailabilityHandler) UpdateAvailabilityHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req models.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.UpdateUserAvailability(c.Request.Context(), userID, req); err != nil {
		respondError(c, err, "failed to update availability")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated successfully"})
}

// GetEventAvailabilityHandler serves the public slot listing for an event.
// Without a query parameter it projects each configured weekday onto its
// nearest future date; with ?date=YYYY-MM-DD it answers for that date only.
func (h *AvailabilityHandler) GetEventAvailabilityHandler(c *gin.Context) {
	eventID := c.Param("eventId")

	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date, expected YYYY-MM-DD"})
			return
		}
		day, err := h.Service.GetEventAvailabilityForDate(c.Request.Context(), eventID, date)
		if err != nil {
			respondError(c, err, "failed to fetch availability")
			return
		}
		c.JSON(http.StatusOK, gin.H{"day": day})
		return
	}

	days, err := h.Service.GetEventAvailability(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err, "failed to fetch availability")
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}
