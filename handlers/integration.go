// File: handlers/integration.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/kanishkk18/events/config"
	integrationRepo "github.com/kanishkk18/events/database/repository/integration"
	"github.com/kanishkk18/events/models"
	"github.com/kanishkk18/events/services/tasks"
	"github.com/kanishkk18/events/utils"
)

const oauthStateTTL = 10 * time.Minute

// IntegrationHandler drives the OAuth connection flow for calendar providers
// and answers connection-status checks.
type IntegrationHandler struct {
	Repo  integrationRepo.IntegrationRepository
	OAuth *oauth2.Config
}

// NewIntegrationHandler constructs an IntegrationHandler.
func NewIntegrationHandler(repo integrationRepo.IntegrationRepository, oauthCfg *oauth2.Config) *IntegrationHandler {
	return &IntegrationHandler{Repo: repo, OAuth: oauthCfg}
}

// CheckIntegrationHandler reports whether the host has a given provider
// connected. Token material never leaves the server.
func (h *IntegrationHandler) CheckIntegrationHandler(c *gin.Context) {
	userID := c.GetString("userID")

	appType := models.IntegrationAppType(c.Param("appType"))
	if !appType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "unknown app type"})
		return
	}

	integration, err := h.Repo.GetByUserAndType(c.Request.Context(), userID, appType)
	if err != nil {
		respondError(c, err, "failed to check integration")
		return
	}
	c.JSON(http.StatusOK, gin.H{"connected": integration != nil})
}

// ConnectIntegrationHandler starts the OAuth flow. The state token ties the
// provider callback back to the authenticated host; it lives in Redis with a
// short TTL and is single use.
func (h *IntegrationHandler) ConnectIntegrationHandler(c *gin.Context) {
	userID := c.GetString("userID")

	appType := models.IntegrationAppType(c.Param("appType"))
	if appType != models.AppGoogleMeetAndCalendar {
		c.JSON(http.StatusBadRequest, gin.H{"message": "unsupported app type"})
		return
	}

	state := uuid.NewString()
	cache := utils.GetCacheClient()
	if err := cache.Set(c.Request.Context(), "oauth_state:"+state, userID, oauthStateTTL).Err(); err != nil {
		utils.GetLogger().Error("failed to store oauth state", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to start connection"})
		return
	}

	url := h.OAuth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GoogleCallbackHandler completes the OAuth flow: it validates the state
// token, exchanges the code, stores the token pair, and schedules the first
// proactive refresh.
func (h *IntegrationHandler) GoogleCallbackHandler(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		c.Redirect(http.StatusFound, config.AppConfig.FrontendOrigin+"/integrations?error=invalid_callback")
		return
	}

	cache := utils.GetCacheClient()
	key := "oauth_state:" + state
	userID, err := cache.Get(c.Request.Context(), key).Result()
	if err != nil || userID == "" {
		c.Redirect(http.StatusFound, config.AppConfig.FrontendOrigin+"/integrations?error=invalid_state")
		return
	}
	cache.Del(c.Request.Context(), key)

	token, err := h.OAuth.Exchange(c.Request.Context(), code)
	if err != nil {
		utils.GetLogger().Error("oauth code exchange failed", zap.Error(err))
		c.Redirect(http.StatusFound, config.AppConfig.FrontendOrigin+"/integrations?error=exchange_failed")
		return
	}

	integration := &models.Integration{
		ID:          uuid.NewString(),
		UserID:      userID,
		AppType:     models.AppGoogleMeetAndCalendar,
		AccessToken: token.AccessToken,
		CreatedAt:   time.Now(),
	}
	if token.RefreshToken != "" {
		rt := token.RefreshToken
		integration.RefreshToken = &rt
	}
	if !token.Expiry.IsZero() {
		ms := token.Expiry.UnixMilli()
		integration.ExpiryDate = &ms
	}

	if err := h.Repo.Upsert(c.Request.Context(), integration); err != nil {
		utils.GetLogger().Error("failed to store integration", zap.Error(err))
		c.Redirect(http.StatusFound, config.AppConfig.FrontendOrigin+"/integrations?error=store_failed")
		return
	}

	// Re-fetch so a reconnect schedules the refresh against the row that
	// survived the upsert, not a freshly generated id.
	if stored, err := h.Repo.GetByUserAndType(c.Request.Context(), userID, models.AppGoogleMeetAndCalendar); err == nil && stored != nil && !token.Expiry.IsZero() {
		tasks.EnqueueTokenRefresh(stored.ID, token.Expiry)
	}

	c.Redirect(http.StatusFound, config.AppConfig.FrontendOrigin+"/integrations?connected=google")
}
