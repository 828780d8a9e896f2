package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/entities"
	"github.com/SergeyBogomolovv/driver-dashboard/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type sqlRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

// NewSQLRepo работает с Postgres, а с SQLite (тесты) переключает плейсхолдеры.
func NewSQLRepo(db *sqlx.DB) *sqlRepo {
	var format sq.PlaceholderFormat = sq.Dollar
	if db.DriverName() == "sqlite3" {
		format = sq.Question
	}
	return &sqlRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(format),
	}
}

var filterColumns = map[string]string{
	"id":           "id",
	"driverId":     "driver_id",
	"status":       "status",
	"customerName": "customer_name",
}

func filterToSql(f entities.Filter) (sq.Sqlizer, error) {
	column, ok := filterColumns[f.Field]
	if !ok {
		return nil, fmt.Errorf("%w: field %q", entities.ErrUnsupportedFilter, f.Field)
	}

	switch f.Op {
	case entities.OpEq:
		return sq.Eq{column: f.Value}, nil
	case entities.OpNotEq:
		return sq.NotEq{column: f.Value}, nil
	case entities.OpIn:
		if v := reflect.ValueOf(f.Value); v.Kind() != reflect.Slice || v.Len() == 0 {
			return nil, fmt.Errorf("%w: %q expects a non-empty list", entities.ErrUnsupportedFilter, f.Op)
		}
		return sq.Eq{column: f.Value}, nil
	default:
		return nil, fmt.Errorf("%w: operator %q", entities.ErrUnsupportedFilter, f.Op)
	}
}

func (r *sqlRepo) QueryOrders(ctx context.Context, filters []entities.Filter) ([]entities.Order, error) {
	where := sq.And{}
	for _, f := range filters {
		cond, err := filterToSql(f)
		if err != nil {
			return nil, err
		}
		where = append(where, cond)
	}

	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at ASC", "id ASC")
	if len(where) > 0 {
		q = q.Where(where)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build orders query: %w", err)
	}

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	// Получаем товары для этих заказов
	query, args = r.qb.Select(productColumns...).
		From("order_products").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	productsMap := make(map[string][]Product, len(ids))
	for _, p := range products {
		productsMap[p.OrderID] = append(productsMap[p.OrderID], p)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, productsMap[order.ID]))
	}
	return result, nil
}

func (r *sqlRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(productColumns...).
		From("order_products").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position").
		MustSql()

	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get products: %w", err)
	}

	return OrderToEntity(order, products), nil
}

// UpdateOrder применяет только заданные поля патча.
func (r *sqlRepo) UpdateOrder(ctx context.Context, orderID string, patch entities.OrderPatch) error {
	values := map[string]any{}
	if patch.Status != nil {
		values["status"] = string(*patch.Status)
	}
	if patch.DeliveredAt != nil {
		values["delivered_at"] = patch.DeliveredAt.UTC()
	}
	if len(values) == 0 {
		return nil
	}

	update := r.qb.Update("orders").
		SetMap(values).
		Where(sq.Eq{"id": orderID})
	if patch.OnlyActive {
		update = update.Where(sq.NotEq{"status": closedStatuses})
	}
	query, args := update.MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if n > 0 {
		return nil
	}
	if !patch.OnlyActive {
		return entities.ErrOrderNotFound
	}

	// строка не обновлена: заказа нет или он уже закрыт
	exists, err := r.orderExists(ctx, orderID)
	if err != nil {
		return err
	}
	if !exists {
		return entities.ErrOrderNotFound
	}
	return entities.ErrOrderClosed
}

var closedStatuses = []string{
	string(entities.OrderStatusDelivered),
	string(entities.OrderStatusCancelled),
}

func (r *sqlRepo) orderExists(ctx context.Context, orderID string) (bool, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var n int
	if err := r.getContext(ctx, &n, query, args...); err != nil {
		return false, fmt.Errorf("failed to check order: %w", err)
	}
	return n > 0, nil
}

func (r *sqlRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	var deliveredAt sql.NullTime
	if o.DeliveredAt != nil {
		deliveredAt = sql.NullTime{Time: o.DeliveredAt.UTC(), Valid: true}
	}

	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, string(o.Status), o.DriverID, nullString(o.CustomerName), o.TotalAmount,
			o.CreatedAt.UTC(), deliveredAt,
			nullString(o.ShippingInfo.City), nullString(o.ShippingInfo.Address),
			nullString(o.ShippingInfo.GoogleMapsLink), nullString(o.ShippingInfo.Phone),
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *sqlRepo) SaveProducts(ctx context.Context, orderID string, products []entities.Product) error {
	if len(products) == 0 {
		return nil
	}

	q := r.qb.Insert("order_products").
		Columns(productColumns...).
		Suffix("ON CONFLICT (order_id, position) DO NOTHING")

	for i, p := range products {
		q = q.Values(orderID, i, p.Name, p.Quantity, p.UnitCost)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}
	return nil
}

// GetDriverByIdentity ищет водителя по email без учёта регистра.
func (r *sqlRepo) GetDriverByIdentity(ctx context.Context, identity string) (entities.Driver, error) {
	query, args := r.qb.Select(driverColumns...).
		From("drivers").
		Where(sq.Expr("LOWER(email) = LOWER(?)", identity)).
		MustSql()

	var driver Driver
	err := r.getContext(ctx, &driver, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Driver{}, entities.ErrDriverNotFound
	}
	if err != nil {
		return entities.Driver{}, fmt.Errorf("failed to get driver: %w", err)
	}
	return DriverToEntity(driver), nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (r *sqlRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *sqlRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *sqlRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
