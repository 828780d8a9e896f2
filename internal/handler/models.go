package handler

import (
	"time"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/entities"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/notify"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/service"
)

// Product позиция заказа
type Product struct {
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
	UnitCost int64  `json:"unit_cost" validate:"gte=0"`
	Subtotal int64  `json:"subtotal,omitempty"`
}

// ShippingInfo адрес доставки
type ShippingInfo struct {
	City           string `json:"city" validate:"required"`
	Address        string `json:"address" validate:"required"`
	GoogleMapsLink string `json:"google_maps_link,omitempty" validate:"omitempty,url"`
	Phone          string `json:"phone" validate:"required,e164"`
}

// Order заказ водителя
type Order struct {
	ID           string       `json:"id"`
	Status       string       `json:"status"`
	DriverID     string       `json:"driver_id"`
	CustomerName string       `json:"customer_name"`
	TotalAmount  int64        `json:"total_amount"`
	CreatedAt    time.Time    `json:"created_at"`
	DeliveredAt  *time.Time   `json:"delivered_at,omitempty"`
	ShippingInfo ShippingInfo `json:"shipping_info"`
	Products     []Product    `json:"products"`
}

// OrderCard заказ с состоянием раскрытия в текущей сессии
type OrderCard struct {
	Order            Order `json:"order"`
	Expanded         bool  `json:"expanded"`
	ProductsExpanded bool  `json:"products_expanded"`
}

// Driver профиль водителя
type Driver struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	VehicleID    string    `json:"vehicle_id"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Confirmation состояние подтверждения доставки
type Confirmation struct {
	State string `json:"state" enums:"idle,staged,committing"`
	Order *Order `json:"order,omitempty"`
}

// Notification уведомление для водителя
type Notification struct {
	Level   string    `json:"level" enums:"success,error"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// SessionResponse открытая сессия
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// TasksResponse текущие задачи водителя
type TasksResponse struct {
	Driver        Driver         `json:"driver"`
	Orders        []OrderCard    `json:"orders"`
	ActiveCount   int            `json:"active_count"`
	Empty         bool           `json:"empty"`
	Confirmation  Confirmation   `json:"confirmation"`
	Notifications []Notification `json:"notifications"`
}

// HistoryResponse доставленные заказы
type HistoryResponse struct {
	Driver         Driver         `json:"driver"`
	Sort           string         `json:"sort" enums:"date,value"`
	Orders         []OrderCard    `json:"orders"`
	CompletedCount int            `json:"completed_count"`
	Notifications  []Notification `json:"notifications"`
}

// ToggleResponse новое состояние раскрытия
type ToggleResponse struct {
	OrderID  string `json:"order_id"`
	View     string `json:"view" enums:"tasks,history"`
	Expanded bool   `json:"expanded"`
}

// StageRequest выбор заказа для подтверждения
type StageRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

// ConfirmResponse результат подтверждения
type ConfirmResponse struct {
	Order        Order        `json:"order"`
	Confirmation Confirmation `json:"confirmation"`
}

// ConfirmFailedResponse ошибка подтверждения, заказ остаётся выбранным
type ConfirmFailedResponse struct {
	Message      string       `json:"message"`
	Confirmation Confirmation `json:"confirmation"`
}

// Assignment заказ, назначенный водителю, из топика назначений
type Assignment struct {
	ID           string       `json:"id" validate:"required"`
	DriverID     string       `json:"driver_id" validate:"required"`
	CustomerName string       `json:"customer_name" validate:"required"`
	Status       string       `json:"status,omitempty" validate:"omitempty,oneof=Pending 'In Progress' 'On The Way'"`
	TotalAmount  int64        `json:"total_amount" validate:"gte=0"`
	CreatedAt    time.Time    `json:"created_at" validate:"required"`
	ShippingInfo ShippingInfo `json:"shipping_info" validate:"required"`
	Products     []Product    `json:"products" validate:"required,min=1,dive"`
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		Name:     p.Name,
		Quantity: p.Quantity,
		UnitCost: p.UnitCost,
		Subtotal: p.Subtotal(),
	}
}

func ProductJSONToEntity(p Product) entities.Product {
	return entities.Product{
		Name:     p.Name,
		Quantity: p.Quantity,
		UnitCost: p.UnitCost,
	}
}

func ShippingEntityToJSON(s entities.ShippingInfo) ShippingInfo {
	return ShippingInfo{
		City:           s.City,
		Address:        s.Address,
		GoogleMapsLink: s.GoogleMapsLink,
		Phone:          s.Phone,
	}
}

func ShippingJSONToEntity(s ShippingInfo) entities.ShippingInfo {
	return entities.ShippingInfo{
		City:           s.City,
		Address:        s.Address,
		GoogleMapsLink: s.GoogleMapsLink,
		Phone:          s.Phone,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	products := make([]Product, 0, len(o.Products))
	for _, p := range o.Products {
		products = append(products, ProductEntityToJSON(p))
	}

	return Order{
		ID:           o.ID,
		Status:       o.Status.String(),
		DriverID:     o.DriverID,
		CustomerName: o.CustomerName,
		TotalAmount:  o.TotalAmount,
		CreatedAt:    o.CreatedAt,
		DeliveredAt:  o.DeliveredAt,
		ShippingInfo: ShippingEntityToJSON(o.ShippingInfo),
		Products:     products,
	}
}

// AssignmentJSONToEntity создаёт новый заказ. Статус по умолчанию Pending,
// сумма при отсутствии считается по позициям.
func AssignmentJSONToEntity(a Assignment) entities.Order {
	products := make([]entities.Product, 0, len(a.Products))
	for _, p := range a.Products {
		products = append(products, ProductJSONToEntity(p))
	}

	status := entities.OrderStatus(a.Status)
	if status == "" {
		status = entities.OrderStatusPending
	}

	order := entities.Order{
		ID:           a.ID,
		Status:       status,
		DriverID:     a.DriverID,
		CustomerName: a.CustomerName,
		TotalAmount:  a.TotalAmount,
		CreatedAt:    a.CreatedAt.UTC(),
		ShippingInfo: ShippingJSONToEntity(a.ShippingInfo),
		Products:     products,
	}
	if order.TotalAmount == 0 {
		order.TotalAmount = order.ProductsTotal()
	}
	return order
}

func DriverEntityToJSON(d entities.Driver) Driver {
	return Driver{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		VehicleID:    d.VehicleID,
		Status:       d.Status,
		RegisteredAt: d.RegisteredAt,
	}
}

func CardsToJSON(cards []service.OrderCard) []OrderCard {
	result := make([]OrderCard, 0, len(cards))
	for _, c := range cards {
		result = append(result, OrderCard{
			Order:            OrderEntityToJSON(c.Order),
			Expanded:         c.Expanded,
			ProductsExpanded: c.ProductsExpanded,
		})
	}
	return result
}

func ConfirmationToJSON(c service.ConfirmationView) Confirmation {
	res := Confirmation{State: c.State.String()}
	if c.Order != nil {
		order := OrderEntityToJSON(*c.Order)
		res.Order = &order
	}
	return res
}

func NotificationsToJSON(items []notify.Notification) []Notification {
	result := make([]Notification, 0, len(items))
	for _, n := range items {
		result = append(result, Notification{Level: string(n.Level), Message: n.Message, At: n.At})
	}
	return result
}

func TasksToJSON(v service.TasksView) TasksResponse {
	return TasksResponse{
		Driver:        DriverEntityToJSON(v.Driver),
		Orders:        CardsToJSON(v.Orders),
		ActiveCount:   v.ActiveCount,
		Empty:         v.Empty,
		Confirmation:  ConfirmationToJSON(v.Confirmation),
		Notifications: NotificationsToJSON(v.Notifications),
	}
}

func HistoryToJSON(v service.HistoryView) HistoryResponse {
	return HistoryResponse{
		Driver:         DriverEntityToJSON(v.Driver),
		Sort:           string(v.Sort),
		Orders:         CardsToJSON(v.Orders),
		CompletedCount: v.Completed,
		Notifications:  NotificationsToJSON(v.Notifications),
	}
}
