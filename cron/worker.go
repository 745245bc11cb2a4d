package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/kanata-kan/explorekg-backend-sub001/config"
	"github.com/kanata-kan/explorekg-backend-sub001/models"
	"github.com/kanata-kan/explorekg-backend-sub001/services/notification"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeNotificationDispatch = "notification:dispatch"

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// AsynqPublisher enqueues lifecycle notifications for asynchronous delivery.
// Publishing is fire-and-forget: an enqueue failure is logged and never
// surfaced to the booking operation that emitted the event.
type AsynqPublisher struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewAsynqPublisher(logger *zap.Logger) *AsynqPublisher {
	return &AsynqPublisher{
		client: asynq.NewClient(redisOpts()),
		logger: logger,
	}
}

// Publish enqueues the notification on a queue matching its priority.
func (p *AsynqPublisher) Publish(ctx context.Context, n models.Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		p.logger.Error("failed to marshal notification", zap.Error(err))
		return
	}

	queue := "default"
	switch notification.PriorityFor(n.Type) {
	case models.PriorityHigh:
		queue = "critical"
	case models.PriorityLow:
		queue = "low"
	}

	task := asynq.NewTask(TypeNotificationDispatch, payload)
	if _, err := p.client.Enqueue(task, asynq.Queue(queue), asynq.MaxRetry(3)); err != nil {
		p.logger.Error("failed to enqueue notification",
			zap.String("type", string(n.Type)), zap.Error(err))
	}
}

// Close releases the underlying asynq client.
func (p *AsynqPublisher) Close() error {
	return p.client.Close()
}

// InitNotificationWorker runs the async delivery worker in the background.
func InitNotificationWorker(dispatcher *notification.Dispatcher) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeNotificationDispatch, handleNotificationTask(dispatcher))

	// Start async worker with retry logic
	go func() {
		log.Println("[NotificationWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleNotificationTask(dispatcher *notification.Dispatcher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var n models.Notification
		if err := json.Unmarshal(task.Payload(), &n); err != nil {
			log.Printf("[NotificationHandler] Invalid payload: %v", err)
			return err
		}

		// Delivery failures are summarized inside Dispatch and only logged.
		// Returning nil keeps asynq from retrying a partially delivered
		// event; per-channel retry policy belongs to the channels.
		dispatcher.Dispatch(ctx, n)
		return nil
	}
}
