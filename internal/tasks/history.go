package tasks

import (
	"errors"
	"fmt"
	"slices"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/entities"
)

type SortKey string

var ErrUnknownSortKey = errors.New("unknown sort key")

const (
	SortByDate  SortKey = "date"
	SortByValue SortKey = "value"
)

// ParseSortKey принимает пустую строку как сортировку по дате.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "", SortByDate:
		return SortByDate, nil
	case SortByValue:
		return SortByValue, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownSortKey, s)
	}
}

// SortHistory оставляет только доставленные заказы и сортирует их по убыванию
// выбранного ключа. Сортировка стабильная, входной слайс не изменяется.
func SortHistory(orders []entities.Order, key SortKey) []entities.Order {
	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == entities.OrderStatusDelivered {
			result = append(result, o)
		}
	}

	switch key {
	case SortByValue:
		slices.SortStableFunc(result, func(a, b entities.Order) int {
			return compareDesc(a.TotalAmount, b.TotalAmount)
		})
	default:
		slices.SortStableFunc(result, func(a, b entities.Order) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
	return result
}

func compareDesc(a, b int64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
