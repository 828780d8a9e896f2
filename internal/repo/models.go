package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/entities"
)

type Order struct {
	ID           string         `db:"id"`
	Status       string         `db:"status"`
	DriverID     string         `db:"driver_id"`
	CustomerName sql.NullString `db:"customer_name"`
	TotalAmount  sql.NullInt64  `db:"total_amount"`
	CreatedAt    time.Time      `db:"created_at"`
	DeliveredAt  sql.NullTime   `db:"delivered_at"`
	City         sql.NullString `db:"city"`
	Address      sql.NullString `db:"address"`
	MapsLink     sql.NullString `db:"maps_link"`
	Phone        sql.NullString `db:"phone"`
}

type Product struct {
	OrderID  string `db:"order_id"`
	Position int    `db:"position"`
	Name     string `db:"name"`
	Quantity int    `db:"quantity"`
	UnitCost int64  `db:"unit_cost"`
}

type Driver struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	Phone        sql.NullString `db:"phone"`
	VehicleID    sql.NullString `db:"vehicle_id"`
	Status       sql.NullString `db:"status"`
	RegisteredAt time.Time      `db:"registered_at"`
}

var orderColumns = []string{
	"id", "status", "driver_id", "customer_name", "total_amount",
	"created_at", "delivered_at", "city", "address", "maps_link", "phone",
}

var productColumns = []string{"order_id", "position", "name", "quantity", "unit_cost"}

var driverColumns = []string{"id", "name", "email", "phone", "vehicle_id", "status", "registered_at"}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		Name:     p.Name,
		Quantity: p.Quantity,
		UnitCost: p.UnitCost,
	}
}

func OrderToEntity(o Order, products []Product) entities.Order {
	order := entities.Order{
		ID:           o.ID,
		Status:       entities.OrderStatus(o.Status),
		DriverID:     o.DriverID,
		CustomerName: nullStringToString(o.CustomerName),
		TotalAmount:  nullInt64ToInt64(o.TotalAmount),
		CreatedAt:    o.CreatedAt.UTC(),
		ShippingInfo: entities.ShippingInfo{
			City:           nullStringToString(o.City),
			Address:        nullStringToString(o.Address),
			GoogleMapsLink: nullStringToString(o.MapsLink),
			Phone:          nullStringToString(o.Phone),
		},
	}

	if o.DeliveredAt.Valid {
		deliveredAt := o.DeliveredAt.Time.UTC()
		order.DeliveredAt = &deliveredAt
	}

	if len(products) > 0 {
		order.Products = make([]entities.Product, 0, len(products))
		for _, p := range products {
			order.Products = append(order.Products, ProductToEntity(p))
		}
	}

	return order
}

func DriverToEntity(d Driver) entities.Driver {
	return entities.Driver{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		Phone:        nullStringToString(d.Phone),
		VehicleID:    nullStringToString(d.VehicleID),
		Status:       nullStringToString(d.Status),
		RegisteredAt: d.RegisteredAt.UTC(),
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullInt64ToInt64(ni sql.NullInt64) int64 {
	if ni.Valid {
		return ni.Int64
	}
	return 0
}
