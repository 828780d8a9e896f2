package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/auth"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/entities"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/handler"
	mocks "github.com/SergeyBogomolovv/driver-dashboard/internal/handler/mocks"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/notify"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/service"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/tasks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	secret    = "test-secret-0123456789"
	identity  = "ivan@example.com"
	sessionID = "6f1c1f0e-8a3b-4c55-9d2e-2d7a8c1b0f11"
)

func bearer(t *testing.T) string {
	t.Helper()
	token, err := auth.IssueToken(identity, secret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func activeOrder() entities.Order {
	return entities.Order{
		ID:           "A",
		DriverID:     "d1",
		Status:       entities.OrderStatusPending,
		CustomerName: "Anna",
		TotalAmount:  500,
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Products:     []entities.Product{{Name: "Tea", Quantity: 2, UnitCost: 250}},
	}
}

func TestHTTPHandler(t *testing.T) {
	staged := activeOrder()

	testCases := []struct {
		name         string
		method       string
		path         string
		body         string
		noAuth       bool
		mockBehavior func(svc *mocks.MockSessions)
		wantStatus   int
		wantBody     string
	}{
		{
			name:       "missing token",
			method:     http.MethodPost,
			path:       "/sessions",
			noAuth:     true,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"missing bearer token"`,
		},
		{
			name:   "open session",
			method: http.MethodPost,
			path:   "/sessions",
			mockBehavior: func(svc *mocks.MockSessions) {
				svc.EXPECT().Open(mock.Anything, identity).Return(sessionID, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"session_id":"` + sessionID + `"`,
		},
		{
			name:   "unknown driver",
			method: http.MethodPost,
			path:   "/sessions",
			mockBehavior: func(svc *mocks.MockSessions) {
				svc.EXPECT().Open(mock.Anything, identity).Return("", entities.ErrDriverNotFound).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"access not recognized"`,
		},
		{
			name:   "tasks",
			method: http.MethodGet,
			path:   "/sessions/" + sessionID + "/tasks",
			mockBehavior: func(svc *mocks.MockSessions) {
				svc.EXPECT().Tasks(mock.Anything, identity, sessionID).Return(service.TasksView{
					Driver:        entities.Driver{ID: "d1", Name: "Ivan"},
					Orders:        []service.OrderCard{{Order: activeOrder(), Expanded: true}},
					ActiveCount:   1,
					Confirmation:  service.ConfirmationView{State: tasks.StateIdle},
					Notifications: []notify.Notification{},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"active_count":1`,
		},
		{
			name:   "tasks store unavailable",
			method: http.MethodGet,
			path:   "/sessions/" + sessionID + "/tasks",
			mockBehavior: func(svc *mocks.MockSessions) {
				svc.EXPECT().Tasks(mock.Anything, identity, sessionID).
					Return(service.TasksView{}, errors.New("connection refused")).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"orders temporarily unavailable"`,
		},
		{
			name:       "invalid session id",
			method:     http.MethodGet,
			path:       "/sessions/not-a-uuid/tasks",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request"`,
		},
		{
			name:   "session not found",
			method: http.MethodDelete,
			path:   "/sessions/" + sessionID,
			mockBehavior: func(svc *mocks.MockSessions) {
				svc.EXPECT().Close(identity, sessionID).Return(service.ErrSessionNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"session not found"`,
		},
		{
			name:   "history by value",
			method: http.MethodGet,
			path:   "/sessions/" + sessionID + "/history?sort=value",
			mockBehavior: func(svc *mocks.MockSessions) {
				svc.EXPECT().History(mock.Anything, identity, sessionID, "value").
					Return(service.HistoryView{Sort: tasks.SortByValue}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"sort":"value"`,
		},
		{
			name:       "history unknown sort",
			method:     http.MethodGet,
			path:       "/sessions/" + sessionID + "/history?sort=price",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request"`,
		},
		{
			name:   "history with driver header",
			method: http.MethodGet,
			path:   "/sessions/" + sessionID + "/history",
			mockBehavior: func(svc *mocks.MockSessions) {
				svc.EXPECT().History(mock.Anything, identity, sessionID, "").
					Return(service.HistoryView{Driver: entities.Driver{ID: "d1", Name: "Ivan"}, Sort: tasks.SortByDate, Completed: 2}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"completed_count":2`,
		},
		{
			name:   "toggle products",
			method: http.MethodPost,
			path:   "/sessions/" + sessionID + "/orders/A/products/toggle",
			mockBehavior: func(svc *mocks.MockSessions) {
				svc.EXPECT().ToggleProducts(identity, sessionID, service.ViewTasks, "A").Return(true, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"expanded":true`,
		},
		{
			name:   "toggle card in history",
			method: http.MethodPost,
			path:   "/sessions/" + sessionID + "/orders/B/toggle?view=history",
			mockBehavior: func(svc *mocks.MockSessions) {
				svc.EXPECT().ToggleCard(identity, sessionID, service.ViewHistory, "B").Return(true, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"view":"history"`,
		},
		{
			name:       "toggle unknown view",
			method:     http.MethodPost,
			path:       "/sessions/" + sessionID + "/orders/B/toggle?view=profile",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request"`,
		},
		{
			name:   "stage delivery",
			method: http.MethodPost,
			path:   "/sessions/" + sessionID + "/confirmation",
			body:   `{"order_id":"A"}`,
			mockBehavior: func(svc *mocks.MockSessions) {
				svc.EXPECT().StageDelivery(mock.Anything, identity, sessionID, "A").
					Return(service.ConfirmationView{State: tasks.StateStaged, Order: &staged}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"state":"staged"`,
		},
		{
			name:       "stage without order id",
			method:     http.MethodPost,
			path:       "/sessions/" + sessionID + "/confirmation",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"OrderID":"required"`,
		},
		{
			name:   "stage while another is staged",
			method: http.MethodPost,
			path:   "/sessions/" + sessionID + "/confirmation",
			body:   `{"order_id":"A"}`,
			mockBehavior: func(svc *mocks.MockSessions) {
				svc.EXPECT().StageDelivery(mock.Anything, identity, sessionID, "A").
					Return(service.ConfirmationView{}, tasks.ErrNotIdle).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   tasks.ErrNotIdle.Error(),
		},
		{
			name:   "cancel staging",
			method: http.MethodDelete,
			path:   "/sessions/" + sessionID + "/confirmation",
			mockBehavior: func(svc *mocks.MockSessions) {
				svc.EXPECT().CancelDelivery(identity, sessionID).
					Return(service.ConfirmationView{State: tasks.StateIdle}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"state":"idle"`,
		},
		{
			name:   "confirm delivery",
			method: http.MethodPost,
			path:   "/sessions/" + sessionID + "/confirmation/commit",
			mockBehavior: func(svc *mocks.MockSessions) {
				delivered := activeOrder()
				at := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
				delivered.Status = entities.OrderStatusDelivered
				delivered.DeliveredAt = &at
				svc.EXPECT().ConfirmDelivery(mock.Anything, identity, sessionID).
					Return(delivered, service.ConfirmationView{State: tasks.StateIdle}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"Delivered"`,
		},
		{
			name:   "confirm rejected by store",
			method: http.MethodPost,
			path:   "/sessions/" + sessionID + "/confirmation/commit",
			mockBehavior: func(svc *mocks.MockSessions) {
				svc.EXPECT().ConfirmDelivery(mock.Anything, identity, sessionID).
					Return(entities.Order{}, service.ConfirmationView{State: tasks.StateStaged, Order: &staged}, errors.New("timeout")).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"state":"staged"`,
		},
		{
			name:   "confirm while in flight",
			method: http.MethodPost,
			path:   "/sessions/" + sessionID + "/confirmation/commit",
			mockBehavior: func(svc *mocks.MockSessions) {
				svc.EXPECT().ConfirmDelivery(mock.Anything, identity, sessionID).
					Return(entities.Order{}, service.ConfirmationView{State: tasks.StateCommitting}, tasks.ErrCommitInFlight).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   tasks.ErrCommitInFlight.Error(),
		},
		{
			name:   "confirm order closed elsewhere",
			method: http.MethodPost,
			path:   "/sessions/" + sessionID + "/confirmation/commit",
			mockBehavior: func(svc *mocks.MockSessions) {
				svc.EXPECT().ConfirmDelivery(mock.Anything, identity, sessionID).
					Return(entities.Order{}, service.ConfirmationView{State: tasks.StateIdle}, entities.ErrOrderClosed).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   entities.ErrOrderClosed.Error(),
		},
		{
			name:   "profile",
			method: http.MethodGet,
			path:   "/profile",
			mockBehavior: func(svc *mocks.MockSessions) {
				svc.EXPECT().Profile(mock.Anything, identity).
					Return(entities.Driver{ID: "d1", Name: "Ivan", VehicleID: "V-7"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"vehicle_id":"V-7"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockSessions(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewHTTPHandler(logger, svc, secret)

			r := chi.NewRouter()
			h.Init(r)

			var body io.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			}
			req := httptest.NewRequest(tc.method, tc.path, body)
			if !tc.noAuth {
				req.Header.Set("Authorization", bearer(t))
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			resBody, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(resBody), tc.wantBody)
		})
	}
}

func TestHTTPHandler_TasksBody(t *testing.T) {
	svc := mocks.NewMockSessions(t)
	svc.EXPECT().Tasks(mock.Anything, identity, sessionID).Return(service.TasksView{
		Driver:       entities.Driver{ID: "d1"},
		Orders:       []service.OrderCard{},
		Empty:        true,
		Confirmation: service.ConfirmationView{State: tasks.StateIdle},
		Notifications: []notify.Notification{
			{Level: notify.LevelSuccess, Message: tasks.MsgDeliveryConfirmed},
		},
	}, nil).Once()

	h := handler.NewHTTPHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc, secret)
	r := chi.NewRouter()
	h.Init(r)

	req := httptest.NewRequest(http.MethodGet, "/sessions/"+sessionID+"/tasks", nil)
	req.Header.Set("Authorization", bearer(t))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp handler.TasksResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Empty)
	assert.NotNil(t, resp.Orders)
	assert.Equal(t, "idle", resp.Confirmation.State)
	assert.Nil(t, resp.Confirmation.Order)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "success", resp.Notifications[0].Level)
}

func TestHTTPHandler_InvalidToken(t *testing.T) {
	svc := mocks.NewMockSessions(t)
	h := handler.NewHTTPHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc, secret)
	r := chi.NewRouter()
	h.Init(r)

	token, err := auth.IssueToken(identity, "another-secret-0123456789", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), `"invalid token"`)
}
