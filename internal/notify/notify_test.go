package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/auth"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInbox(t *testing.T) {
	inbox := NewInbox(2)
	ctx := context.Background()

	assert.Empty(t, inbox.Drain())

	inbox.NotifySuccess(ctx, "one")
	inbox.NotifyError(ctx, "two")
	inbox.NotifySuccess(ctx, "three")

	items := inbox.Drain()
	require.Len(t, items, 2)
	assert.Equal(t, "two", items[0].Message)
	assert.Equal(t, LevelError, items[0].Level)
	assert.Equal(t, "three", items[1].Message)
	assert.Equal(t, LevelSuccess, items[1].Level)

	assert.Empty(t, inbox.Drain())
}

func TestMulti(t *testing.T) {
	a, b := NewInbox(0), NewInbox(0)
	m := Multi{a, b}

	m.NotifySuccess(context.Background(), "ok")
	m.NotifyError(context.Background(), "fail")

	for _, inbox := range []*Inbox{a, b} {
		items := inbox.Drain()
		require.Len(t, items, 2)
		assert.Equal(t, LevelSuccess, items[0].Level)
		assert.Equal(t, LevelError, items[1].Level)
	}
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error { return nil }

func TestKafka(t *testing.T) {
	w := &fakeWriter{}
	k := &Kafka{logger: slog.New(slog.NewTextHandler(io.Discard, nil)), writer: w}

	ctx := auth.WithIdentity(context.Background(), "driver@example.com")
	k.NotifySuccess(ctx, "delivery confirmed")
	k.NotifyError(context.Background(), "failed")

	require.Len(t, w.messages, 2)
	assert.Equal(t, "driver@example.com", string(w.messages[0].Key))

	var event Event
	require.NoError(t, json.Unmarshal(w.messages[0].Value, &event))
	assert.Equal(t, LevelSuccess, event.Level)
	assert.Equal(t, "delivery confirmed", event.Message)
	assert.Equal(t, "driver@example.com", event.Identity)

	var anonymous Event
	require.NoError(t, json.Unmarshal(w.messages[1].Value, &anonymous))
	assert.Equal(t, LevelError, anonymous.Level)
	assert.Empty(t, anonymous.Identity)

	w.err = errors.New("queue full")
	assert.NotPanics(t, func() { k.NotifySuccess(ctx, "again") })
}
