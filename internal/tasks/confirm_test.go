package tasks_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/entities"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/tasks"
	mocks "github.com/SergeyBogomolovv/driver-dashboard/internal/tasks/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pendingOrder = entities.Order{ID: "A", Status: entities.OrderStatusPending, TotalAmount: 500}

func fixedClock(times ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := times[i]
		if i < len(times)-1 {
			i++
		}
		return t
	}
}

func deliveredPatch(at time.Time) interface{} {
	return mock.MatchedBy(func(p entities.OrderPatch) bool {
		return p.Status != nil && *p.Status == entities.OrderStatusDelivered &&
			p.DeliveredAt != nil && p.DeliveredAt.Equal(at) && p.OnlyActive
	})
}

func TestConfirmation_StageAndCancel(t *testing.T) {
	c := tasks.NewConfirmation(mocks.NewMockOrderUpdater(t), mocks.NewMockNotifier(t))

	state, staged := c.Snapshot()
	assert.Equal(t, tasks.StateIdle, state)
	assert.Nil(t, staged)

	assert.ErrorIs(t, c.Cancel(), tasks.ErrNothingStaged)
	_, err := c.Confirm(context.Background())
	assert.ErrorIs(t, err, tasks.ErrNothingStaged)

	assert.ErrorIs(t, c.Stage(entities.Order{ID: "D", Status: entities.OrderStatusDelivered}), tasks.ErrOrderNotActive)
	assert.ErrorIs(t, c.Stage(entities.Order{ID: "X", Status: entities.OrderStatusCancelled}), tasks.ErrOrderNotActive)

	require.NoError(t, c.Stage(pendingOrder))
	assert.ErrorIs(t, c.Stage(pendingOrder), tasks.ErrNotIdle)

	state, staged = c.Snapshot()
	assert.Equal(t, tasks.StateStaged, state)
	require.NotNil(t, staged)
	assert.Equal(t, "A", staged.ID)

	require.NoError(t, c.Cancel())
	state, staged = c.Snapshot()
	assert.Equal(t, tasks.StateIdle, state)
	assert.Nil(t, staged)
}

func TestConfirmation_Confirm(t *testing.T) {
	now := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	storeErr := errors.New("store unavailable")

	testCases := []struct {
		name         string
		mockBehavior func(u *mocks.MockOrderUpdater, n *mocks.MockNotifier)
		wantErr      error
		wantState    tasks.State
		wantStaged   bool
		wantRefresh  bool
	}{
		{
			name: "success",
			mockBehavior: func(u *mocks.MockOrderUpdater, n *mocks.MockNotifier) {
				u.EXPECT().UpdateOrder(mock.Anything, "A", deliveredPatch(now)).
					RunAndReturn(func(_ context.Context, id string, p entities.OrderPatch) (entities.Order, error) {
						return entities.Order{ID: id, Status: *p.Status, DeliveredAt: p.DeliveredAt}, nil
					}).Once()
				n.EXPECT().NotifySuccess(mock.Anything, tasks.MsgDeliveryConfirmed).Return().Once()
			},
			wantState:   tasks.StateIdle,
			wantRefresh: true,
		},
		{
			name: "store failure keeps order staged",
			mockBehavior: func(u *mocks.MockOrderUpdater, n *mocks.MockNotifier) {
				u.EXPECT().UpdateOrder(mock.Anything, "A", deliveredPatch(now)).
					Return(entities.Order{}, storeErr).Once()
				n.EXPECT().NotifyError(mock.Anything, tasks.MsgDeliveryFailed).Return().Once()
			},
			wantErr:    storeErr,
			wantState:  tasks.StateStaged,
			wantStaged: true,
		},
		{
			name: "order closed elsewhere drops staging",
			mockBehavior: func(u *mocks.MockOrderUpdater, n *mocks.MockNotifier) {
				u.EXPECT().UpdateOrder(mock.Anything, "A", deliveredPatch(now)).
					Return(entities.Order{}, entities.ErrOrderClosed).Once()
				n.EXPECT().NotifyError(mock.Anything, tasks.MsgDeliveryFailed).Return().Once()
			},
			wantErr:   entities.ErrOrderClosed,
			wantState: tasks.StateIdle,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			updater := mocks.NewMockOrderUpdater(t)
			notifier := mocks.NewMockNotifier(t)
			tc.mockBehavior(updater, notifier)

			refreshed := false
			c := tasks.NewConfirmation(updater, notifier,
				tasks.WithClock(fixedClock(now)),
				tasks.WithOnCommitted(func(_ context.Context, o entities.Order) {
					refreshed = true
					assert.Equal(t, entities.OrderStatusDelivered, o.Status)
					require.NotNil(t, o.DeliveredAt)
				}),
			)
			require.NoError(t, c.Stage(pendingOrder))

			got, err := c.Confirm(context.Background())

			state, staged := c.Snapshot()
			assert.Equal(t, tc.wantState, state)
			assert.Equal(t, tc.wantRefresh, refreshed)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				if tc.wantStaged {
					require.NotNil(t, staged)
					assert.Equal(t, pendingOrder, *staged)
				} else {
					assert.Nil(t, staged)
				}
				return
			}

			require.NoError(t, err)
			assert.Nil(t, staged)
			assert.Equal(t, "A", got.ID)
		})
	}
}

func TestConfirmation_RetryTakesFreshTimestamp(t *testing.T) {
	first := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)

	updater := mocks.NewMockOrderUpdater(t)
	notifier := mocks.NewMockNotifier(t)

	updater.EXPECT().UpdateOrder(mock.Anything, "A", deliveredPatch(first)).
		Return(entities.Order{}, errors.New("timeout")).Once()
	updater.EXPECT().UpdateOrder(mock.Anything, "A", deliveredPatch(second)).
		Return(entities.Order{ID: "A", Status: entities.OrderStatusDelivered}, nil).Once()
	notifier.EXPECT().NotifyError(mock.Anything, mock.Anything).Return().Once()
	notifier.EXPECT().NotifySuccess(mock.Anything, mock.Anything).Return().Once()

	c := tasks.NewConfirmation(updater, notifier, tasks.WithClock(fixedClock(first, second)))
	require.NoError(t, c.Stage(pendingOrder))

	_, err := c.Confirm(context.Background())
	require.Error(t, err)

	_, err = c.Confirm(context.Background())
	require.NoError(t, err)
}

func TestConfirmation_Timeout(t *testing.T) {
	updater := mocks.NewMockOrderUpdater(t)
	notifier := mocks.NewMockNotifier(t)

	updater.EXPECT().UpdateOrder(mock.Anything, "A", mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ entities.OrderPatch) (entities.Order, error) {
			<-ctx.Done()
			return entities.Order{}, ctx.Err()
		}).Once()
	notifier.EXPECT().NotifyError(mock.Anything, tasks.MsgDeliveryFailed).Return().Once()

	c := tasks.NewConfirmation(updater, notifier, tasks.WithTimeout(20*time.Millisecond))
	require.NoError(t, c.Stage(pendingOrder))

	_, err := c.Confirm(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	state, staged := c.Snapshot()
	assert.Equal(t, tasks.StateStaged, state)
	require.NotNil(t, staged)
	assert.Equal(t, "A", staged.ID)
}

func TestConfirmation_SingleInFlight(t *testing.T) {
	updater := mocks.NewMockOrderUpdater(t)
	notifier := mocks.NewMockNotifier(t)

	started := make(chan struct{})
	release := make(chan struct{})

	updater.EXPECT().UpdateOrder(mock.Anything, "A", mock.Anything).
		RunAndReturn(func(_ context.Context, id string, _ entities.OrderPatch) (entities.Order, error) {
			close(started)
			<-release
			return entities.Order{ID: id, Status: entities.OrderStatusDelivered}, nil
		}).Once()
	notifier.EXPECT().NotifySuccess(mock.Anything, mock.Anything).Return().Once()

	c := tasks.NewConfirmation(updater, notifier)
	require.NoError(t, c.Stage(pendingOrder))

	done := make(chan error, 1)
	go func() {
		_, err := c.Confirm(context.Background())
		done <- err
	}()
	<-started

	state, _ := c.Snapshot()
	assert.Equal(t, tasks.StateCommitting, state)

	for range 2 {
		_, err := c.Confirm(context.Background())
		assert.ErrorIs(t, err, tasks.ErrCommitInFlight)
	}
	assert.ErrorIs(t, c.Cancel(), tasks.ErrCommitInFlight)
	assert.ErrorIs(t, c.Stage(pendingOrder), tasks.ErrNotIdle)

	close(release)
	require.NoError(t, <-done)

	state, _ = c.Snapshot()
	assert.Equal(t, tasks.StateIdle, state)
}
