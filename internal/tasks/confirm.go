package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/entities"
)

type State int

const (
	StateIdle State = iota
	StateStaged
	StateCommitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStaged:
		return "staged"
	case StateCommitting:
		return "committing"
	default:
		return "unknown"
	}
}

var (
	ErrNotIdle        = errors.New("another order is already staged")
	ErrNothingStaged  = errors.New("no order staged for confirmation")
	ErrCommitInFlight = errors.New("delivery confirmation already in flight")
	ErrOrderNotActive = errors.New("order is not active")
)

const (
	MsgDeliveryConfirmed = "delivery confirmed"
	MsgDeliveryFailed    = "failed to submit delivery"
)

type OrderUpdater interface {
	UpdateOrder(ctx context.Context, orderID string, patch entities.OrderPatch) (entities.Order, error)
}

// Notifier получает уведомления для водителя. Результат не ожидается.
type Notifier interface {
	NotifySuccess(ctx context.Context, message string)
	NotifyError(ctx context.Context, message string)
}

type ConfirmationOption func(c *Confirmation)

func WithClock(now func() time.Time) ConfirmationOption {
	return func(c *Confirmation) {
		c.now = now
	}
}

// WithTimeout ограничивает время обновления в хранилище. Истечение
// обрабатывается как обычная ошибка: заказ остаётся выбранным.
func WithTimeout(d time.Duration) ConfirmationOption {
	return func(c *Confirmation) {
		c.timeout = d
	}
}

// WithOnCommitted задаёт обновление списка заказов после успешного подтверждения.
func WithOnCommitted(fn func(ctx context.Context, order entities.Order)) ConfirmationOption {
	return func(c *Confirmation) {
		c.onCommitted = fn
	}
}

// Confirmation ведёт подтверждение доставки: Idle -> Staged -> Committing -> Idle.
// При ошибке обновления возвращается в Staged с тем же заказом, кроме
// ErrOrderClosed: тогда выбор сбрасывается в Idle. Одновременно
// в полёте может быть только одно обновление.
type Confirmation struct {
	mu     sync.Mutex
	state  State
	staged entities.Order

	updater     OrderUpdater
	notifier    Notifier
	now         func() time.Time
	timeout     time.Duration
	onCommitted func(ctx context.Context, order entities.Order)
}

func NewConfirmation(updater OrderUpdater, notifier Notifier, opts ...ConfirmationOption) *Confirmation {
	c := &Confirmation{
		state:    StateIdle,
		updater:  updater,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Confirmation) Stage(order entities.Order) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateIdle {
		return ErrNotIdle
	}
	if !IsActive(order.Status) {
		return ErrOrderNotActive
	}
	c.state = StateStaged
	c.staged = order
	return nil
}

func (c *Confirmation) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateIdle:
		return ErrNothingStaged
	case StateCommitting:
		return ErrCommitInFlight
	}
	c.state = StateIdle
	c.staged = entities.Order{}
	return nil
}

// Confirm отправляет в хранилище статус Delivered и время доставки, снятое
// в момент вызова. Повторная попытка после ошибки берёт новое время.
func (c *Confirmation) Confirm(ctx context.Context) (entities.Order, error) {
	c.mu.Lock()
	switch c.state {
	case StateIdle:
		c.mu.Unlock()
		return entities.Order{}, ErrNothingStaged
	case StateCommitting:
		c.mu.Unlock()
		return entities.Order{}, ErrCommitInFlight
	}
	c.state = StateCommitting
	order := c.staged
	deliveredAt := c.now().UTC()
	c.mu.Unlock()

	status := entities.OrderStatusDelivered
	patch := entities.OrderPatch{Status: &status, DeliveredAt: &deliveredAt, OnlyActive: true}

	updateCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		updateCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	updated, err := c.updater.UpdateOrder(updateCtx, order.ID, patch)
	if err != nil {
		c.mu.Lock()
		c.state = StateStaged
		// заказ закрыт в другом месте, повторять нечего
		if errors.Is(err, entities.ErrOrderClosed) {
			c.state = StateIdle
			c.staged = entities.Order{}
		}
		c.mu.Unlock()

		c.notifier.NotifyError(ctx, MsgDeliveryFailed)
		return entities.Order{}, fmt.Errorf("failed to confirm delivery of order %s: %w", order.ID, err)
	}

	c.mu.Lock()
	c.state = StateIdle
	c.staged = entities.Order{}
	c.mu.Unlock()

	c.notifier.NotifySuccess(ctx, MsgDeliveryConfirmed)
	if c.onCommitted != nil {
		c.onCommitted(ctx, updated)
	}
	return updated, nil
}

// Snapshot возвращает текущее состояние и копию выбранного заказа (nil в Idle).
func (c *Confirmation) Snapshot() (State, *entities.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateIdle {
		return c.state, nil
	}
	order := c.staged
	return c.state, &order
}
