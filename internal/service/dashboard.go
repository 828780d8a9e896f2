package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/entities"
	"github.com/SergeyBogomolovv/driver-dashboard/pkg/trm"
	"github.com/SergeyBogomolovv/driver-dashboard/pkg/utils"

	"golang.org/x/sync/singleflight"
)

type OrderRepo interface {
	QueryOrders(ctx context.Context, filters []entities.Filter) ([]entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	UpdateOrder(ctx context.Context, orderID string, patch entities.OrderPatch) error

	// Операции идемпотентны, т.к. используется ON CONFLICT DO NOTHING
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveProducts(ctx context.Context, orderID string, products []entities.Product) error
}

type DriverRepo interface {
	GetDriverByIdentity(ctx context.Context, identity string) (entities.Driver, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// Snapshot результат двухэтапной загрузки: водитель, затем его заказы.
type Snapshot struct {
	Driver entities.Driver
	Orders []entities.Order
}

// Ограничение общего чтения, которое уже не зависит от отмены вызывающих.
const sharedReadTimeout = 15 * time.Second

var readRetry = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  3,
	Multiplier:   2,
}

type dashboardService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	drivers   DriverRepo
	cache     Cache
	retry     utils.RetryConfig

	readTimeout time.Duration

	group singleflight.Group

	// версия ключа растёт при инвалидации, чтобы запрос, начатый до
	// обновления, не положил в кэш устаревший список
	mu       sync.Mutex
	versions map[string]uint64
}

func NewDashboardService(logger *slog.Logger, txManager trm.Manager, orders OrderRepo, drivers DriverRepo, cache Cache) *dashboardService {
	return &dashboardService{
		logger:    logger.With(slog.String("service", "dashboard")),
		txManager: txManager,
		orders:    orders,
		drivers:   drivers,
		cache:     cache,
		retry:     readRetry,

		readTimeout: sharedReadTimeout,
		versions:  make(map[string]uint64),
	}
}

func driverKey(identity string) string {
	return "driver-email-" + identity
}

func ordersKey(driverID string) string {
	return "driver-orders-" + driverID
}

// ResolveDriver находит водителя по идентификатору из провайдера.
// ErrDriverNotFound не повторяется и не кэшируется.
func (s *dashboardService) ResolveDriver(ctx context.Context, identity string) (entities.Driver, error) {
	key := driverKey(identity)

	var driver entities.Driver
	if s.fromCache(key, &driver) {
		return driver, nil
	}

	v, err := s.shared(ctx, key, func(ctx context.Context) (any, error) {
		version := s.version(key)

		var driver entities.Driver
		fn := func() error {
			var err error
			driver, err = s.drivers.GetDriverByIdentity(ctx, identity)
			return err
		}
		if err := utils.Retry(ctx, s.retry, fn, entities.ErrDriverNotFound, context.Canceled, context.DeadlineExceeded); err != nil {
			return entities.Driver{}, err
		}

		s.toCache(key, version, driver)
		return driver, nil
	})
	if err != nil {
		return entities.Driver{}, err
	}
	return v.(entities.Driver), nil
}

func (s *dashboardService) DriverOrders(ctx context.Context, driverID string) ([]entities.Order, error) {
	key := ordersKey(driverID)

	var orders []entities.Order
	if s.fromCache(key, &orders) {
		return nonNil(orders), nil
	}

	v, err := s.shared(ctx, key, func(ctx context.Context) (any, error) {
		version := s.version(key)

		var orders []entities.Order
		fn := func() error {
			var err error
			orders, err = s.orders.QueryOrders(ctx, entities.DriverFilter(driverID))
			return err
		}
		if err := utils.Retry(ctx, s.retry, fn, entities.ErrUnsupportedFilter, context.Canceled, context.DeadlineExceeded); err != nil {
			return nil, err
		}

		orders = nonNil(orders)
		s.toCache(key, version, orders)
		return orders, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entities.Order), nil
}

// Load выполняет двухэтапное чтение. Заказы запрашиваются только после того,
// как водитель найден. Отмена ctx на любом этапе бросает загрузку целиком.
func (s *dashboardService) Load(ctx context.Context, identity string) (Snapshot, error) {
	driver, err := s.ResolveDriver(ctx, identity)
	if err != nil {
		return Snapshot{}, err
	}

	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	orders, err := s.DriverOrders(ctx, driver.ID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load orders: %w", err)
	}

	return Snapshot{Driver: driver, Orders: orders}, nil
}

// UpdateOrder применяет патч и перечитывает заказ в одной транзакции.
func (s *dashboardService) UpdateOrder(ctx context.Context, orderID string, patch entities.OrderPatch) (entities.Order, error) {
	var updated entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.UpdateOrder(ctx, orderID, patch); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		order, err := s.orders.GetOrderByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("failed to reread order: %w", err)
		}
		updated = order
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.InvalidateOrders(updated.DriverID)
	s.logger.Debug("order updated", slog.String("order_id", orderID), slog.String("status", updated.Status.String()))
	return updated, nil
}

func (s *dashboardService) InvalidateOrders(driverID string) {
	key := ordersKey(driverID)

	s.mu.Lock()
	s.versions[key]++
	s.mu.Unlock()

	s.group.Forget(key)
	s.cache.Delete(key)
}

// SaveOrder сохраняет назначенный водителю заказ.
func (s *dashboardService) SaveOrder(ctx context.Context, order entities.Order) error {
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.orders.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.orders.SaveProducts(ctx, order.ID, order.Products); err != nil {
				return fmt.Errorf("failed to save products: %w", err)
			}

			s.logger.Debug("order saved", "order_id", order.ID, "driver_id", order.DriverID)
			return nil
		})
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}

	if err := utils.Retry(ctx, cfg, fn, context.Canceled); err != nil {
		return err
	}

	s.InvalidateOrders(order.DriverID)
	return nil
}

// shared объединяет одновременные чтения одного ключа. Общий запрос
// выполняется в контексте без отмены, ограниченном readTimeout: отмена
// одного вызывающего не должна ронять чтение остальным. Каждый вызывающий
// может перестать ждать по своему ctx.
func (s *dashboardService) shared(ctx context.Context, key string, fn func(ctx context.Context) (any, error)) (any, error) {
	ch := s.group.DoChan(key, func() (any, error) {
		readCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.readTimeout)
		defer cancel()
		return fn(readCtx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

func (s *dashboardService) version(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.versions[key]
}

func (s *dashboardService) fromCache(key string, dest any) bool {
	data, ok := s.cache.Get(key)
	if !ok {
		return false
	}
	if err := entities.Unmarshal(data, dest); err != nil {
		s.logger.Error("failed to unmarshal cache entry", slog.String("key", key), slog.Any("error", err))
		s.cache.Delete(key)
		return false
	}
	return true
}

func (s *dashboardService) toCache(key string, version uint64, v any) {
	data, err := entities.Marshal(v)
	if err != nil {
		s.logger.Error("failed to marshal cache entry", slog.String("key", key), slog.Any("error", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.versions[key] != version {
		return
	}
	s.cache.Set(key, data)
}

func nonNil(orders []entities.Order) []entities.Order {
	if orders == nil {
		return []entities.Order{}
	}
	return orders
}
