package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/config"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/entities"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/notify"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/tasks"
	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownView     = errors.New("unknown view")
)

type Dashboard interface {
	ResolveDriver(ctx context.Context, identity string) (entities.Driver, error)
	Load(ctx context.Context, identity string) (Snapshot, error)
	UpdateOrder(ctx context.Context, orderID string, patch entities.OrderPatch) (entities.Order, error)
	InvalidateOrders(driverID string)
}

type OrderCard struct {
	Order            entities.Order
	Expanded         bool
	ProductsExpanded bool
}

type ConfirmationView struct {
	State tasks.State
	Order *entities.Order
}

type TasksView struct {
	Driver       entities.Driver
	Orders       []OrderCard
	ActiveCount  int
	Empty        bool
	Confirmation ConfirmationView
	// Уведомления, накопленные с прошлого ответа.
	Notifications []notify.Notification
}

type HistoryView struct {
	Driver        entities.Driver
	Sort          tasks.SortKey
	Orders        []OrderCard
	Completed     int
	// Уведомления, накопленные с прошлого ответа.
	Notifications []notify.Notification
}

// View вид представления. Раскрытие карточек у каждого вида своё.
type View string

const (
	ViewTasks   View = "tasks"
	ViewHistory View = "history"
)

// Session одно открытое представление водителя. Всё состояние живёт
// только пока открыта сессия.
type Session struct {
	ID       string
	Identity string

	ctx    context.Context
	cancel context.CancelFunc

	expansions   map[View]*tasks.Expansion
	confirmation *tasks.Confirmation
	inbox        *notify.Inbox

	mu       sync.Mutex
	snapshot *Snapshot
	sortKey  tasks.SortKey
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) currentSnapshot() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return Snapshot{}, false
	}
	return *s.snapshot, true
}

func (s *Session) setSnapshot(snap *Snapshot) {
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
}

type sessionService struct {
	logger    *slog.Logger
	dashboard Dashboard
	sink      notify.Notifier
	idleTTL   time.Duration
	timeout   time.Duration
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionService создаёт реестр сессий. sink получает уведомления всех
// сессий помимо их собственного ящика, может быть nil.
func NewSessionService(logger *slog.Logger, dashboard Dashboard, sink notify.Notifier, cfg config.Session) *sessionService {
	return &sessionService{
		logger:    logger.With(slog.String("service", "sessions")),
		dashboard: dashboard,
		sink:      sink,
		idleTTL:   cfg.IdleTTL,
		timeout:   cfg.ConfirmTimeout,
		now:       time.Now,
		sessions:  make(map[string]*Session),
	}
}

// Open создаёт сессию для идентификатора. Водитель должен существовать:
// иначе возвращается ErrDriverNotFound и сессия не создаётся.
func (s *sessionService) Open(ctx context.Context, identity string) (string, error) {
	if _, err := s.dashboard.ResolveDriver(ctx, identity); err != nil {
		return "", err
	}

	sessCtx, cancel := context.WithCancel(context.Background())
	inbox := notify.NewInbox(0)

	var notifier tasks.Notifier = inbox
	if s.sink != nil {
		notifier = notify.Multi{inbox, s.sink}
	}

	sess := &Session{
		ID:        uuid.NewString(),
		Identity:  identity,
		ctx:       sessCtx,
		cancel:    cancel,
		expansions: map[View]*tasks.Expansion{
			ViewTasks:   tasks.NewExpansion(),
			ViewHistory: tasks.NewExpansion(),
		},
		inbox:    inbox,
		sortKey:  tasks.SortByDate,
		lastSeen: s.now(),
	}
	sess.confirmation = tasks.NewConfirmation(s.dashboard, notifier,
		tasks.WithClock(s.now),
		tasks.WithTimeout(s.timeout),
		tasks.WithOnCommitted(func(ctx context.Context, order entities.Order) {
			s.refresh(ctx, sess, order.DriverID)
		}),
	)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Debug("session opened", slog.String("session_id", sess.ID))
	return sess.ID, nil
}

// Close отменяет все незавершённые чтения сессии и отбрасывает её состояние.
func (s *sessionService) Close(identity, sessionID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok || sess.Identity != identity {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	sess.cancel()
	s.logger.Debug("session closed", slog.String("session_id", sessionID))
	return nil
}

func (s *sessionService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *sessionService) Tasks(ctx context.Context, identity, sessionID string) (TasksView, error) {
	sess, err := s.get(identity, sessionID)
	if err != nil {
		return TasksView{}, err
	}

	snap, err := s.load(ctx, sess)
	if err != nil {
		return TasksView{}, err
	}

	active := tasks.ActiveOrders(snap.Orders)
	state, staged := sess.confirmation.Snapshot()

	return TasksView{
		Driver:        snap.Driver,
		Orders:        cards(sess.expansions[ViewTasks], active),
		ActiveCount:   len(active),
		Empty:         len(active) == 0,
		Confirmation:  ConfirmationView{State: state, Order: staged},
		Notifications: sess.inbox.Drain(),
	}, nil
}

// History отдаёт доставленные заказы. Пустой sortKey означает ключ,
// выбранный в сессии последним.
func (s *sessionService) History(ctx context.Context, identity, sessionID, sortKey string) (HistoryView, error) {
	sess, err := s.get(identity, sessionID)
	if err != nil {
		return HistoryView{}, err
	}

	key := sess.currentSortKey()
	if sortKey != "" {
		if key, err = tasks.ParseSortKey(sortKey); err != nil {
			return HistoryView{}, err
		}
	}

	snap, err := s.load(ctx, sess)
	if err != nil {
		return HistoryView{}, err
	}
	sess.setSortKey(key)

	delivered := tasks.SortHistory(snap.Orders, key)
	return HistoryView{
		Driver:        snap.Driver,
		Sort:          key,
		Orders:        cards(sess.expansions[ViewHistory], delivered),
		Completed:     len(delivered),
		Notifications: sess.inbox.Drain(),
	}, nil
}

func (s *sessionService) ToggleCard(identity, sessionID string, view View, orderID string) (bool, error) {
	expansion, err := s.expansion(identity, sessionID, view)
	if err != nil {
		return false, err
	}
	return expansion.ToggleCard(orderID), nil
}

func (s *sessionService) ToggleProducts(identity, sessionID string, view View, orderID string) (bool, error) {
	expansion, err := s.expansion(identity, sessionID, view)
	if err != nil {
		return false, err
	}
	return expansion.ToggleProducts(orderID), nil
}

func (s *sessionService) expansion(identity, sessionID string, view View) (*tasks.Expansion, error) {
	sess, err := s.get(identity, sessionID)
	if err != nil {
		return nil, err
	}
	expansion, ok := sess.expansions[view]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownView, view)
	}
	return expansion, nil
}

// StageDelivery выбирает заказ для подтверждения. Заказ берётся из
// последнего загруженного списка активных заказов сессии.
func (s *sessionService) StageDelivery(ctx context.Context, identity, sessionID, orderID string) (ConfirmationView, error) {
	sess, err := s.get(identity, sessionID)
	if err != nil {
		return ConfirmationView{}, err
	}

	snap, ok := sess.currentSnapshot()
	if !ok {
		if snap, err = s.load(ctx, sess); err != nil {
			return ConfirmationView{}, err
		}
	}

	order, found := findOrder(snap.Orders, orderID)
	if !found {
		return ConfirmationView{}, entities.ErrOrderNotFound
	}
	if err := sess.confirmation.Stage(order); err != nil {
		return ConfirmationView{}, err
	}
	return confirmationView(sess), nil
}

func (s *sessionService) CancelDelivery(identity, sessionID string) (ConfirmationView, error) {
	sess, err := s.get(identity, sessionID)
	if err != nil {
		return ConfirmationView{}, err
	}
	if err := sess.confirmation.Cancel(); err != nil {
		return ConfirmationView{}, err
	}
	return confirmationView(sess), nil
}

// ConfirmDelivery фиксирует доставку выбранного заказа. При ошибке
// хранилища вместе с ошибкой возвращается состояние: заказ остаётся выбранным.
func (s *sessionService) ConfirmDelivery(ctx context.Context, identity, sessionID string) (entities.Order, ConfirmationView, error) {
	sess, err := s.get(identity, sessionID)
	if err != nil {
		return entities.Order{}, ConfirmationView{}, err
	}

	_, staged := sess.confirmation.Snapshot()

	order, err := sess.confirmation.Confirm(ctx)
	if err != nil {
		switch {
		case errors.Is(err, tasks.ErrNothingStaged), errors.Is(err, tasks.ErrCommitInFlight):
		case errors.Is(err, entities.ErrOrderClosed) && staged != nil:
			// список устарел: заказ закрыли из другого представления
			s.logger.Warn("staged order already closed", slog.String("session_id", sessionID), slog.String("order_id", staged.ID))
			s.refresh(ctx, sess, staged.DriverID)
		default:
			s.logger.Error("failed to confirm delivery", slog.String("session_id", sessionID), slog.Any("error", err))
		}
		return entities.Order{}, confirmationView(sess), err
	}

	s.logger.Info("delivery confirmed", slog.String("session_id", sessionID), slog.String("order_id", order.ID))
	return order, confirmationView(sess), nil
}

func (s *sessionService) Profile(ctx context.Context, identity string) (entities.Driver, error) {
	return s.dashboard.ResolveDriver(ctx, identity)
}

// Start закрывает сессии, простаивающие дольше idleTTL, до отмены ctx.
func (s *sessionService) Start(ctx context.Context) error {
	interval := s.idleTTL / 2
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return nil
		case <-ticker.C:
			s.reap()
		}
	}
}

func (s *sessionService) reap() {
	deadline := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if sess.idleSince().Before(deadline) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.cancel()
	}
	if len(expired) > 0 {
		s.logger.Debug("idle sessions closed", slog.Int("count", len(expired)))
	}
}

func (s *sessionService) closeAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.cancel()
	}
}

func (s *sessionService) get(identity, sessionID string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	// чужая сессия неотличима от несуществующей
	if !ok || sess.Identity != identity {
		return nil, ErrSessionNotFound
	}
	sess.touch(s.now())
	return sess, nil
}

// load выполняет загрузку в рамках сессии: закрытие сессии отменяет
// чтение, и частичный результат не применяется.
func (s *sessionService) load(ctx context.Context, sess *Session) (Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(sess.ctx, cancel)
	defer stop()

	snap, err := s.dashboard.Load(ctx, sess.Identity)
	if err != nil {
		if sess.ctx.Err() != nil {
			return Snapshot{}, ErrSessionNotFound
		}
		return Snapshot{}, err
	}
	if sess.ctx.Err() != nil {
		return Snapshot{}, ErrSessionNotFound
	}

	sess.setSnapshot(&snap)
	return snap, nil
}

// refresh сбрасывает кэш заказов водителя и перечитывает список сессии.
// Ошибку перечитывания не возвращаем: список загрузится при следующем запросе.
func (s *sessionService) refresh(ctx context.Context, sess *Session, driverID string) {
	s.dashboard.InvalidateOrders(driverID)
	sess.setSnapshot(nil)

	if _, err := s.load(ctx, sess); err != nil {
		s.logger.Warn("failed to reload orders", slog.String("session_id", sess.ID), slog.Any("error", err))
	}
}

func (s *Session) currentSortKey() tasks.SortKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortKey
}

func (s *Session) setSortKey(key tasks.SortKey) {
	s.mu.Lock()
	s.sortKey = key
	s.mu.Unlock()
}

func confirmationView(sess *Session) ConfirmationView {
	state, order := sess.confirmation.Snapshot()
	return ConfirmationView{State: state, Order: order}
}

func cards(expansion *tasks.Expansion, orders []entities.Order) []OrderCard {
	result := make([]OrderCard, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderCard{
			Order:            o,
			Expanded:         expansion.CardExpanded(o.ID),
			ProductsExpanded: expansion.ProductsExpanded(o.ID),
		})
	}
	return result
}

func findOrder(orders []entities.Order, orderID string) (entities.Order, bool) {
	for _, o := range orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return entities.Order{}, false
}
