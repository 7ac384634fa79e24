// File: handlers/event.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kanishkk18/events/models"
	eventSvc "github.com/kanishkk18/events/services/event"
)

// EventHandler exposes event template CRUD and the public profile listings.
type EventHandler struct {
	Service eventSvc.EventService
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc eventSvc.EventService) *EventHandler {
	return &EventHandler{Service: svc}
}

func (h *EventHandler) CreateEventHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	event, err := h.Service.CreateEvent(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "failed to create event")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Event created successfully", "event": event})
}

func (h *EventHandler) ListUserEventsHandler(c *gin.Context) {
	userID := c.GetString("userID")

	events, err := h.Service.ListUserEvents(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list events")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *EventHandler) ListPublicEventsHandler(c *gin.Context) {
	username := c.Param("username")

	host, events, err := h.Service.ListPublicEvents(c.Request.Context(), username)
	if err != nil {
		respondError(c, err, "failed to list events")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"name":     host.Name,
			"username": host.Username,
			"imageUrl": host.ImageURL,
		},
		"events": events,
	})
}

func (h *EventHandler) GetPublicEventHandler(c *gin.Context) {
	username := c.Param("username")
	slug := c.Param("slug")

	event, err := h.Service.GetPublicEvent(c.Request.Context(), username, slug)
	if err != nil {
		respondError(c, err, "failed to fetch event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}

func (h *EventHandler) ToggleEventPrivacyHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		EventID string `json:"eventId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	event, err := h.Service.TogglePrivacy(c.Request.Context(), userID, req.EventID)
	if err != nil {
		respondError(c, err, "failed to update event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event privacy updated", "event": event})
}

func (h *EventHandler) DeleteEventHandler(c *gin.Context) {
	userID := c.GetString("userID")
	eventID := c.Param("eventId")

	if err := h.Service.DeleteEvent(c.Request.Context(), userID, eventID); err != nil {
		respondError(c, err, "failed to delete event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
