package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/campushire/talent-hub/internal/config"
	"github.com/campushire/talent-hub/internal/domain/moderation"
	"github.com/campushire/talent-hub/pkg/logger"
)

const (
	TopicNotifications = "talent.notifications"
)

// KafkaNotifier publishes notification intents for the worker to deliver.
// It satisfies moderation.Notifier.
type KafkaNotifier struct {
	writer *kafka.Writer
	logger logger.Logger
}

func NewKafkaNotifier(cfg config.Config, log logger.Logger) (*KafkaNotifier, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicNotifications,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka notification producer successfully.")

	return &KafkaNotifier{writer: writer, logger: log}, nil
}

func (n *KafkaNotifier) Notify(ctx context.Context, intent moderation.NotificationIntent) error {
	payload, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("cannot marshal notification intent: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(intent.RecipientID.String()),
		Value: payload,
	}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("cannot publish notification intent: %w", err)
	}
	return nil
}

func (n *KafkaNotifier) Close() {
	if n.writer != nil {
		n.writer.Close()
	}
	n.logger.Info("Closed Kafka notification producer")
}
