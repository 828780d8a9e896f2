package tasks

import "github.com/SergeyBogomolovv/driver-dashboard/internal/entities"

// Buckets разбивает заказы водителя по статусу. Порядок внутри каждой
// группы совпадает с порядком, в котором их вернуло хранилище.
type Buckets struct {
	Active    []entities.Order
	Delivered []entities.Order
	Cancelled []entities.Order
}

func IsActive(status entities.OrderStatus) bool {
	return status != entities.OrderStatusDelivered && status != entities.OrderStatusCancelled
}

func Classify(orders []entities.Order) Buckets {
	b := Buckets{
		Active:    []entities.Order{},
		Delivered: []entities.Order{},
		Cancelled: []entities.Order{},
	}
	for _, o := range orders {
		switch o.Status {
		case entities.OrderStatusDelivered:
			b.Delivered = append(b.Delivered, o)
		case entities.OrderStatusCancelled:
			b.Cancelled = append(b.Cancelled, o)
		default:
			b.Active = append(b.Active, o)
		}
	}
	return b
}

func ActiveOrders(orders []entities.Order) []entities.Order {
	return Classify(orders).Active
}
