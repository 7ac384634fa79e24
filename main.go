// File: events/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kanishkk18/events/config"
	"github.com/kanishkk18/events/cron"
	"github.com/kanishkk18/events/database"
	availabilityRepoPkg "github.com/kanishkk18/events/database/repository/availability"
	eventRepoPkg "github.com/kanishkk18/events/database/repository/event"
	integrationRepoPkg "github.com/kanishkk18/events/database/repository/integration"
	meetingRepoPkg "github.com/kanishkk18/events/database/repository/meeting"
	userRepoPkg "github.com/kanishkk18/events/database/repository/user"
	"github.com/kanishkk18/events/handlers"
	"github.com/kanishkk18/events/routes"
	availabilitySvc "github.com/kanishkk18/events/services/availability"
	"github.com/kanishkk18/events/services/calendarsync"
	eventSvc "github.com/kanishkk18/events/services/event"
	"github.com/kanishkk18/events/services/scheduling"
	userSvc "github.com/kanishkk18/events/services/user"
	"github.com/kanishkk18/events/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	meetingRepo := meetingRepoPkg.NewMongoMeetingRepo()
	integrationRepo := integrationRepoPkg.NewMongoIntegrationRepo()

	// services.
	userService := &userSvc.DefaultUserService{
		Repo: userRepo,
	}
	eventService := &eventSvc.DefaultEventService{
		Repo:     eventRepo,
		UserRepo: userRepo,
	}
	availabilityService := &availabilitySvc.DefaultAvailabilityService{
		AvailabilityRepo: availabilityRepo,
		EventRepo:        eventRepo,
		MeetingRepo:      meetingRepo,
	}

	oauthConfig := calendarsync.NewGoogleOAuthConfig()
	calendarProvider := calendarsync.NewGoogleCalendarProvider(integrationRepo, oauthConfig)

	schedulingEngine := &scheduling.DefaultSchedulingEngine{
		EventRepo:       eventRepo,
		MeetingRepo:     meetingRepo,
		IntegrationRepo: integrationRepo,
		UserRepo:        userRepo,
		Calendar:        calendarProvider,
		Locks:           scheduling.NewRedisHostLocker(utils.GetLockClient()),
	}

	// Background worker that refreshes provider tokens before they expire.
	cron.InitTokenRefreshWorker(integrationRepo, calendarProvider)

	authHandler := handlers.NewAuthHandler(userService)
	eventHandler := handlers.NewEventHandler(eventService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	meetingHandler := handlers.NewMeetingHandler(schedulingEngine, meetingRepo)
	integrationHandler := handlers.NewIntegrationHandler(integrationRepo, oauthConfig)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,
		MeHandler:       authHandler.MeHandler,

		// Event template endpoints.
		CreateEventHandler:        eventHandler.CreateEventHandler,
		ListUserEventsHandler:     eventHandler.ListUserEventsHandler,
		ListPublicEventsHandler:   eventHandler.ListPublicEventsHandler,
		GetPublicEventHandler:     eventHandler.GetPublicEventHandler,
		ToggleEventPrivacyHandler: eventHandler.ToggleEventPrivacyHandler,
		DeleteEventHandler:        eventHandler.DeleteEventHandler,

		// Availability endpoints.
		GetMyAvailabilityHandler:    availabilityHandler.GetMyAvailabilityHandler,
		UpdateAvailabilityHandler:   availabilityHandler.UpdateAvailabilityHandler,
		GetEventAvailabilityHandler: availabilityHandler.GetEventAvailabilityHandler,

		// Meeting (booking) endpoints.
		CreateMeetingHandler:    meetingHandler.CreateMeetingHandler,
		CancelMeetingHandler:    meetingHandler.CancelMeetingHandler,
		ListUserMeetingsHandler: meetingHandler.ListUserMeetingsHandler,

		// Integration endpoints.
		CheckIntegrationHandler:   integrationHandler.CheckIntegrationHandler,
		ConnectIntegrationHandler: integrationHandler.ConnectIntegrationHandler,
		GoogleCallbackHandler:     integrationHandler.GoogleCallbackHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
