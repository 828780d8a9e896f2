package tasks_test

import (
	"testing"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/entities"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortHistory(t *testing.T) {
	testCases := []struct {
		name   string
		orders []entities.Order
		key    tasks.SortKey
		want   []string
	}{
		{
			name:   "scenario by date",
			orders: scenarioOrders(),
			key:    tasks.SortByDate,
			want:   []string{"B", "C"},
		},
		{
			name:   "scenario by value",
			orders: scenarioOrders(),
			key:    tasks.SortByValue,
			want:   []string{"B", "C"},
		},
		{
			name: "date ties keep store order",
			orders: []entities.Order{
				{ID: "1", Status: entities.OrderStatusDelivered, CreatedAt: date("2024-01-01")},
				{ID: "2", Status: entities.OrderStatusDelivered, CreatedAt: date("2024-02-01")},
				{ID: "3", Status: entities.OrderStatusDelivered, CreatedAt: date("2024-01-01")},
				{ID: "4", Status: entities.OrderStatusCancelled, CreatedAt: date("2024-03-01")},
			},
			key:  tasks.SortByDate,
			want: []string{"2", "1", "3"},
		},
		{
			name: "missing amount sorts as zero",
			orders: []entities.Order{
				{ID: "1", Status: entities.OrderStatusDelivered},
				{ID: "2", Status: entities.OrderStatusDelivered, TotalAmount: 50},
				{ID: "3", Status: entities.OrderStatusPending, TotalAmount: 1000},
				{ID: "4", Status: entities.OrderStatusDelivered},
			},
			key:  tasks.SortByValue,
			want: []string{"2", "1", "4"},
		},
		{
			name:   "no delivered orders",
			orders: []entities.Order{{ID: "1", Status: entities.OrderStatusPending}},
			key:    tasks.SortByDate,
			want:   []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := ids(tc.orders)

			got := tasks.SortHistory(tc.orders, tc.key)

			assert.Equal(t, tc.want, ids(got))
			assert.Equal(t, before, ids(tc.orders), "input must not be reordered")
			assert.Equal(t, ids(got), ids(tasks.SortHistory(tc.orders, tc.key)))
		})
	}
}

func TestParseSortKey(t *testing.T) {
	testCases := []struct {
		in      string
		want    tasks.SortKey
		wantErr bool
	}{
		{in: "", want: tasks.SortByDate},
		{in: "date", want: tasks.SortByDate},
		{in: "value", want: tasks.SortByValue},
		{in: "price", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := tasks.ParseSortKey(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, tasks.ErrUnknownSortKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
