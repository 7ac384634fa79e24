package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"github.com/kanishkk18/events/config"
	integrationRepo "github.com/kanishkk18/events/database/repository/integration"
	"github.com/kanishkk18/events/services/calendarsync"
	"github.com/kanishkk18/events/services/tasks"
)

// InitTokenRefreshWorker runs the async worker in background. It refreshes
// provider access tokens shortly before they expire so the interactive
// booking path rarely pays the refresh round-trip.
func InitTokenRefreshWorker(repo integrationRepo.IntegrationRepository, provider *calendarsync.GoogleCalendarProvider) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeTokenRefresh, handleTokenRefreshTask(repo, provider))

	go func() {
		log.Println("[TokenRefreshWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[TokenRefreshWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[TokenRefreshWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleTokenRefreshTask(repo integrationRepo.IntegrationRepository, provider *calendarsync.GoogleCalendarProvider) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.TokenRefreshPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[TokenRefreshHandler] invalid payload: %v", err)
			return err
		}

		integration, err := repo.GetByID(ctx, p.IntegrationID)
		if err != nil {
			return err
		}
		if integration == nil {
			// Host disconnected the integration; nothing left to refresh.
			log.Printf("[TokenRefreshHandler] integration %s no longer exists", p.IntegrationID)
			return nil
		}

		if _, err := provider.RefreshAccessToken(ctx, integration); err != nil {
			log.Printf("[TokenRefreshHandler] refresh failed for %s: %v", p.IntegrationID, err)
			return err
		}

		// Chain the next proactive refresh off the new expiry.
		if integration.ExpiryDate != nil {
			tasks.EnqueueTokenRefresh(integration.ID, time.UnixMilli(*integration.ExpiryDate))
		}
		return nil
	}
}
