package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/config"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderSaver interface {
	SaveOrder(ctx context.Context, order entities.Order) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	saver    OrderSaver
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, saver OrderSaver) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.AssignmentsTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		saver:    saver,
	}
}

// Consume читает назначения до отмены ctx. Сообщение, которое не удалось
// обработать, уходит в DLQ и коммитится.
func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.handle(ctx, m)
	}
}

func (h *kafkaHandler) handle(ctx context.Context, m kafka.Message) {
	start := time.Now()
	defer func() {
		assignmentProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	// В операции сохранения уже есть retry
	if err := h.handleAssignment(ctx, m); err != nil {
		assignmentsFailed.Inc()
		h.logger.Error("failed to handle message", slog.String("key", string(m.Key)), slog.Any("error", err))

		// В библиотеке уже есть retry
		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		assignmentsDLQ.Inc()
	} else {
		assignmentsProcessed.Inc()
	}

	if err := h.reader.CommitMessages(ctx, m); err != nil {
		commitErrors.Inc()
		h.logger.Error("failed to commit message", slog.Any("error", err))
	}
}

func (h *kafkaHandler) handleAssignment(ctx context.Context, m kafka.Message) error {
	var assignment Assignment
	if err := json.Unmarshal(m.Value, &assignment); err != nil {
		return fmt.Errorf("failed to unmarshal assignment: %w", err)
	}

	if err := h.validate.Struct(assignment); err != nil {
		return fmt.Errorf("%w: %w", entities.ErrInvalidOrder, err)
	}

	return h.saver.SaveOrder(ctx, AssignmentJSONToEntity(assignment))
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	dlq := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	}
	return h.dlq.WriteMessages(ctx, dlq)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
