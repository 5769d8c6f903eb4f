package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/campushire/talent-hub/adapters/event"
	"github.com/campushire/talent-hub/adapters/persistence"
	"github.com/campushire/talent-hub/internal/config"
	"github.com/campushire/talent-hub/internal/domain/moderation"
	"github.com/campushire/talent-hub/internal/domain/notification"
	"github.com/campushire/talent-hub/pkg/logger"
)

func main() {
	fmt.Println("Starting Talent Hub Notification Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	notificationRepo := persistence.NewPostgresNotificationRepo(dbPool, appLogger)

	// Kafka Consumer
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicNotifications,
		GroupID:  "notification-delivery-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicNotifications)

	ctx := context.Background()
	for {
		// FetchMessage, not ReadMessage: with a GroupID, ReadMessage commits
		// the offset at read time, so a failed store would lose the message.
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to fetch message from Kafka: %v", err)
			continue
		}

		log.Printf("Received message from [Topic: %s], [Key: %s]", msg.Topic, string(msg.Key))

		if err := processMessage(ctx, notificationRepo, msg); err != nil {
			// Offset stays uncommitted; the message is redelivered.
			log.Printf("ERROR: Failed to store notification, will retry: %v", err)
			continue
		}

		commitMessage(consumer, msg)
	}
}

// processMessage stores one notification intent. Malformed payloads are
// skipped with a nil return so their offset gets committed.
func processMessage(ctx context.Context, repo notification.Repository, msg kafka.Message) error {
	var intent moderation.NotificationIntent
	if err := json.Unmarshal(msg.Value, &intent); err != nil {
		log.Printf("ERROR: Failed to unmarshal notification intent: %v. Skipping.", err)
		return nil
	}

	n := &notification.Notification{
		ID:          uuid.New(),
		RecipientID: intent.RecipientID,
		Kind:        intent.Kind,
		Message:     intent.Message,
		CreatedAt:   time.Now().UTC(),
	}
	if !intent.OccurredAt.IsZero() {
		n.CreatedAt = intent.OccurredAt
	}

	return repo.Save(ctx, n)
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
