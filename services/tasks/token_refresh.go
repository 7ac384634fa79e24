package tasks

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/hibiken/asynq"

	"github.com/kanishkk18/events/config"
	"github.com/kanishkk18/events/utils"

	"go.uber.org/zap"
)

// TypeTokenRefresh is the task type for proactive provider-token refresh.
const TypeTokenRefresh = "integration:refresh_token"

// RefreshMargin is how long before expiry a proactive refresh fires.
const RefreshMargin = 5 * time.Minute

// TokenRefreshPayload identifies the credential to refresh.
type TokenRefreshPayload struct {
	IntegrationID string `json:"integrationId"`
}

// NewTokenRefreshTask builds a refresh task scheduled shortly before the
// access token expires.
func NewTokenRefreshTask(payload TokenRefreshPayload, expiry time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	fireAt := expiry.Add(-RefreshMargin)
	task := asynq.NewTask(TypeTokenRefresh, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

var (
	clientOnce sync.Once
	client     *asynq.Client
)

// GetTaskClient returns the shared asynq enqueue client.
func GetTaskClient() *asynq.Client {
	clientOnce.Do(func() {
		client = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisTaskQueueDB,
		})
	})
	return client
}

// EnqueueTokenRefresh schedules a proactive refresh for the integration.
// Failures are logged and swallowed: the sync adapter refreshes on demand
// anyway, the proactive path only hides the refresh latency from guests.
func EnqueueTokenRefresh(integrationID string, expiry time.Time) {
	logger := utils.GetLogger()

	task, opts, err := NewTokenRefreshTask(TokenRefreshPayload{IntegrationID: integrationID}, expiry)
	if err != nil {
		logger.Warn("failed to build token refresh task", zap.Error(err))
		return
	}
	if _, err := GetTaskClient().Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue token refresh task",
			zap.String("integrationID", integrationID), zap.Error(err))
	}
}
