package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level
	Message string
	At      time.Time
}

type Notifier interface {
	NotifySuccess(ctx context.Context, message string)
	NotifyError(ctx context.Context, message string)
}

const defaultInboxLimit = 20

// Inbox копит уведомления сессии до следующего ответа клиенту. При
// переполнении самые старые вытесняются.
type Inbox struct {
	mu    sync.Mutex
	items []Notification
	limit int
}

func NewInbox(limit int) *Inbox {
	if limit <= 0 {
		limit = defaultInboxLimit
	}
	return &Inbox{limit: limit}
}

func (i *Inbox) NotifySuccess(_ context.Context, message string) {
	i.push(LevelSuccess, message)
}

func (i *Inbox) NotifyError(_ context.Context, message string) {
	i.push(LevelError, message)
}

func (i *Inbox) push(level Level, message string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.items = append(i.items, Notification{Level: level, Message: message, At: time.Now().UTC()})
	if len(i.items) > i.limit {
		i.items = i.items[len(i.items)-i.limit:]
	}
}

// Drain возвращает накопленные уведомления и очищает ящик.
func (i *Inbox) Drain() []Notification {
	i.mu.Lock()
	defer i.mu.Unlock()

	items := i.items
	i.items = nil
	if items == nil {
		return []Notification{}
	}
	return items
}

type Logger struct {
	logger *slog.Logger
}

func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{logger: logger.With(slog.String("notifier", "log"))}
}

func (l *Logger) NotifySuccess(ctx context.Context, message string) {
	l.logger.InfoContext(ctx, "driver notified", slog.String("level", string(LevelSuccess)), slog.String("message", message))
}

func (l *Logger) NotifyError(ctx context.Context, message string) {
	l.logger.WarnContext(ctx, "driver notified", slog.String("level", string(LevelError)), slog.String("message", message))
}

// Multi рассылает уведомление всем получателям по порядку.
type Multi []Notifier

func (m Multi) NotifySuccess(ctx context.Context, message string) {
	for _, n := range m {
		n.NotifySuccess(ctx, message)
	}
}

func (m Multi) NotifyError(ctx context.Context, message string) {
	for _, n := range m {
		n.NotifyError(ctx, message)
	}
}
