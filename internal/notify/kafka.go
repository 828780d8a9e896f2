package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/auth"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/config"
	"github.com/segmentio/kafka-go"
)

type Event struct {
	Level    Level     `json:"level"`
	Message  string    `json:"message"`
	Identity string    `json:"identity,omitempty"`
	At       time.Time `json:"at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka публикует уведомления в топик. Writer асинхронный, поэтому
// отправка не блокирует подтверждение доставки.
type Kafka struct {
	logger *slog.Logger
	writer messageWriter
}

func NewKafka(logger *slog.Logger, cfg config.Kafka) *Kafka {
	logger = logger.With(slog.String("notifier", "kafka"))
	return &Kafka{
		logger: logger,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.NotificationsTopic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: cfg.BatchTimeout,
			Async:        true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					logger.Error("failed to publish notifications", slog.Int("count", len(messages)), slog.Any("error", err))
				}
			},
		},
	}
}

func (k *Kafka) NotifySuccess(ctx context.Context, message string) {
	k.publish(ctx, LevelSuccess, message)
}

func (k *Kafka) NotifyError(ctx context.Context, message string) {
	k.publish(ctx, LevelError, message)
}

func (k *Kafka) publish(ctx context.Context, level Level, message string) {
	identity, _ := auth.IdentityFromContext(ctx)
	event := Event{Level: level, Message: message, Identity: identity, At: time.Now().UTC()}

	data, err := json.Marshal(event)
	if err != nil {
		k.logger.Error("failed to marshal notification", slog.Any("error", err))
		return
	}

	// контекст запроса не передаём: его отмена не должна терять уведомление
	if err := k.writer.WriteMessages(context.Background(), kafka.Message{Key: []byte(identity), Value: data}); err != nil {
		k.logger.Error("failed to enqueue notification", slog.Any("error", err))
	}
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}
