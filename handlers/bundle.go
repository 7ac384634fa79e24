// File: handlers/bundle.go
package handlers

import (
	userRepoPkg "github.com/kanishkk18/events/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints.
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	MeHandler       gin.HandlerFunc

	// Event template endpoints.
	CreateEventHandler        gin.HandlerFunc
	ListUserEventsHandler     gin.HandlerFunc
	ListPublicEventsHandler   gin.HandlerFunc
	GetPublicEventHandler     gin.HandlerFunc
	ToggleEventPrivacyHandler gin.HandlerFunc
	DeleteEventHandler        gin.HandlerFunc

	// Availability endpoints.
	GetMyAvailabilityHandler    gin.HandlerFunc
	UpdateAvailabilityHandler   gin.HandlerFunc
	GetEventAvailabilityHandler gin.HandlerFunc

	// Meeting (booking) endpoints.
	CreateMeetingHandler    gin.HandlerFunc
	CancelMeetingHandler    gin.HandlerFunc
	ListUserMeetingsHandler gin.HandlerFunc

	// Integration endpoints.
	CheckIntegrationHandler   gin.HandlerFunc
	ConnectIntegrationHandler gin.HandlerFunc
	GoogleCallbackHandler     gin.HandlerFunc
}
