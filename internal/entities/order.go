package entities

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusInProgress OrderStatus = "In Progress"
	OrderStatusOnTheWay   OrderStatus = "On The Way"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

type ShippingInfo struct {
	City           string
	Address        string
	GoogleMapsLink string
	Phone          string
}

type Product struct {
	Name     string
	Quantity int
	UnitCost int64
}

func (p Product) Subtotal() int64 {
	return p.UnitCost * int64(p.Quantity)
}

type Order struct {
	ID           string
	Status       OrderStatus
	DriverID     string
	CustomerName string
	// Отсутствующая в хранилище сумма читается как 0.
	TotalAmount int64
	CreatedAt   time.Time
	// Не nil тогда и только тогда, когда Status == Delivered.
	DeliveredAt  *time.Time
	ShippingInfo ShippingInfo
	Products     []Product
}

// ProductsTotal считает сумму по позициям. Хранилище отдаёт TotalAmount
// само, здесь значение только для сверки.
func (o Order) ProductsTotal() int64 {
	var total int64
	for _, p := range o.Products {
		total += p.Subtotal()
	}
	return total
}

// OrderPatch описывает частичное обновление: применяются только заданные поля.
type OrderPatch struct {
	Status      *OrderStatus
	DeliveredAt *time.Time
	// Применить, только если заказ ещё не доставлен и не отменён.
	OnlyActive bool
}

type FilterOp string

const (
	OpEq    FilterOp = "=="
	OpNotEq FilterOp = "!="
	OpIn    FilterOp = "in"
)

type Filter struct {
	Field string
	Op    FilterOp
	Value any
}

func DriverFilter(driverID string) []Filter {
	return []Filter{{Field: "driverId", Op: OpEq, Value: driverID}}
}
