// File: handlers/meeting.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	meetingRepo "github.com/kanishkk18/events/database/repository/meeting"
	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/services/scheduling"
)

// MeetingHandler exposes the public booking endpoint and the host's meeting
// management endpoints.
type MeetingHandler struct {
	Engine      scheduling.SchedulingEngine
	MeetingRepo meetingRepo.MeetingRepository

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewMeetingHandler constructs a MeetingHandler.
func NewMeetingHandler(engine scheduling.SchedulingEngine, repo meetingRepo.MeetingRepository) *MeetingHandler {
	return &MeetingHandler{Engine: engine, MeetingRepo: repo, now: time.Now}
}

// CreateMeetingHandler is public: guests book without an account.
func (h *MeetingHandler) CreateMeetingHandler(c *gin.Context) {
	var req models.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid startTime, expected RFC 3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid endTime, expected RFC 3339"})
		return
	}

	meeting, err := h.Engine.CreateMeeting(c.Request.Context(), scheduling.CreateMeetingInput{
		EventID:        req.EventID,
		StartTime:      start,
		EndTime:        end,
		GuestName:      req.GuestName,
		GuestEmail:     req.GuestEmail,
		AdditionalInfo: req.AdditionalInfo,
	})
	if err != nil {
		respondError(c, err, "failed to create meeting")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Meeting scheduled successfully", "meeting": meeting})
}

func (h *MeetingHandler) CancelMeetingHandler(c *gin.Context) {
	userID := c.GetString("userID")
	meetingID := c.Param("meetingId")

	if err := h.Engine.CancelMeeting(c.Request.Context(), userID, meetingID); err != nil {
		respondError(c, err, "failed to cancel meeting")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meeting cancelled successfully"})
}

// ListUserMeetingsHandler lists the host's meetings, optionally filtered with
// ?filter=upcoming|past|cancelled. Anything else, or no filter, returns all.
func (h *MeetingHandler) ListUserMeetingsHandler(c *gin.Context) {
	userID := c.GetString("userID")

	meetings, err := h.MeetingRepo.ListByHost(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "failed to list meetings")
		return
	}

	filter := c.Query("filter")
	if filter != "" {
		now := h.now()
		filtered := make([]models.Meeting, 0, len(meetings))
		for _, m := range meetings {
			switch filter {
			case "upcoming":
				if m.Status == models.MeetingScheduled && m.StartTime.After(now) {
					filtered = append(filtered, m)
				}
			case "past":
				if m.Status == models.MeetingScheduled && !m.StartTime.After(now) {
					filtered = append(filtered, m)
				}
			case "cancelled":
				if m.Status == models.MeetingCancelled {
					filtered = append(filtered, m)
				}
			default:
				filtered = append(filtered, m)
			}
		}
		meetings = filtered
	}

	c.JSON(http.StatusOK, gin.H{"meetings": meetings})
}
