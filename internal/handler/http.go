package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/auth"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/entities"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/middleware"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/service"
	"github.com/SergeyBogomolovv/driver-dashboard/internal/tasks"
	"github.com/SergeyBogomolovv/driver-dashboard/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Sessions interface {
	Open(ctx context.Context, identity string) (string, error)
	Close(identity, sessionID string) error
	Tasks(ctx context.Context, identity, sessionID string) (service.TasksView, error)
	History(ctx context.Context, identity, sessionID, sortKey string) (service.HistoryView, error)
	ToggleCard(identity, sessionID string, view service.View, orderID string) (bool, error)
	ToggleProducts(identity, sessionID string, view service.View, orderID string) (bool, error)
	StageDelivery(ctx context.Context, identity, sessionID, orderID string) (service.ConfirmationView, error)
	CancelDelivery(identity, sessionID string) (service.ConfirmationView, error)
	ConfirmDelivery(ctx context.Context, identity, sessionID string) (entities.Order, service.ConfirmationView, error)
	Profile(ctx context.Context, identity string) (entities.Driver, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      Sessions
	secret   string
}

func NewHTTPHandler(logger *slog.Logger, svc Sessions, secret string) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
		secret:   secret,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(h.logger, h.secret))

		r.Get("/profile", h.Profile)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.OpenSession)

			r.Route("/{session_id}", func(r chi.Router) {
				r.Delete("/", h.CloseSession)
				r.Get("/tasks", h.Tasks)
				r.Get("/history", h.History)
				r.Post("/orders/{order_id}/toggle", h.ToggleCard)
				r.Post("/orders/{order_id}/products/toggle", h.ToggleProducts)
				r.Post("/confirmation", h.StageDelivery)
				r.Delete("/confirmation", h.CancelDelivery)
				r.Post("/confirmation/commit", h.ConfirmDelivery)
			})
		})
	})
}

// OpenSession открывает сессию представления водителя.
// @Summary      Открыть сессию
// @Description  Создаёт сессию для водителя из токена. Неизвестный водитель получает 403
// @Tags         sessions
// @Security     BearerAuth
// @Success      201  {object}  SessionResponse
// @Failure      401  {object}  utils.ErrorResponse "Нет токена или токен недействителен"
// @Failure      403  {object}  utils.ErrorResponse "Водитель не распознан"
// @Failure      503  {object}  utils.ErrorResponse "Хранилище недоступно"
// @Router       /sessions [post]
func (h *HTTPHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	sessionID, err := h.svc.Open(r.Context(), identity)
	if err != nil {
		h.writeError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, SessionResponse{SessionID: sessionID}, http.StatusCreated)
}

// CloseSession закрывает сессию и отменяет её незавершённые загрузки.
// @Summary      Закрыть сессию
// @Tags         sessions
// @Security     BearerAuth
// @Param        session_id  path  string  true  "Идентификатор сессии"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Router       /sessions/{session_id} [delete]
func (h *HTTPHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	identity, sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := h.svc.Close(identity, sessionID); err != nil {
		h.writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Tasks возвращает активные заказы водителя.
// @Summary      Текущие задачи
// @Description  Активные заказы с состоянием раскрытия, состояние подтверждения и накопленные уведомления
// @Tags         sessions
// @Security     BearerAuth
// @Param        session_id  path  string  true  "Идентификатор сессии"
// @Success      200  {object}  TasksResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Водитель не распознан"
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      503  {object}  utils.ErrorResponse "Хранилище недоступно"
// @Router       /sessions/{session_id}/tasks [get]
func (h *HTTPHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	identity, sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	view, err := h.svc.Tasks(r.Context(), identity, sessionID)
	if err != nil {
		h.writeError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, TasksToJSON(view), http.StatusOK)
}

// History возвращает доставленные заказы.
// @Summary      История доставок
// @Tags         sessions
// @Security     BearerAuth
// @Param        session_id  path   string  true   "Идентификатор сессии"
// @Param        sort        query  string  false  "Ключ сортировки" Enums(date, value)
// @Success      200  {object}  HistoryResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      503  {object}  utils.ErrorResponse "Хранилище недоступно"
// @Router       /sessions/{session_id}/history [get]
func (h *HTTPHandler) History(w http.ResponseWriter, r *http.Request) {
	identity, sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	sortKey := r.URL.Query().Get("sort")
	if err := h.validate.Var(sortKey, "omitempty,oneof=date value"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	view, err := h.svc.History(r.Context(), identity, sessionID, sortKey)
	if err != nil {
		h.writeError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, HistoryToJSON(view), http.StatusOK)
}

// ToggleCard раскрывает или сворачивает карточку заказа.
// @Summary      Раскрыть карточку заказа
// @Tags         sessions
// @Security     BearerAuth
// @Param        session_id  path   string  true   "Идентификатор сессии"
// @Param        order_id    path   string  true   "Идентификатор заказа"
// @Param        view        query  string  false  "Представление, по умолчанию tasks" Enums(tasks, history)
// @Success      200  {object}  ToggleResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Router       /sessions/{session_id}/orders/{order_id}/toggle [post]
func (h *HTTPHandler) ToggleCard(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.ToggleCard)
}

// ToggleProducts раскрывает или сворачивает список позиций заказа.
// @Summary      Раскрыть позиции заказа
// @Tags         sessions
// @Security     BearerAuth
// @Param        session_id  path   string  true   "Идентификатор сессии"
// @Param        order_id    path   string  true   "Идентификатор заказа"
// @Param        view        query  string  false  "Представление, по умолчанию tasks" Enums(tasks, history)
// @Success      200  {object}  ToggleResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Router       /sessions/{session_id}/orders/{order_id}/products/toggle [post]
func (h *HTTPHandler) ToggleProducts(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.ToggleProducts)
}

func (h *HTTPHandler) toggle(w http.ResponseWriter, r *http.Request, fn func(identity, sessionID string, view service.View, orderID string) (bool, error)) {
	identity, sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	orderID := chi.URLParam(r, "order_id")
	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	view := r.URL.Query().Get("view")
	if err := h.validate.Var(view, "omitempty,oneof=tasks history"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if view == "" {
		view = string(service.ViewTasks)
	}

	expanded, err := fn(identity, sessionID, service.View(view), orderID)
	if err != nil {
		h.writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ToggleResponse{OrderID: orderID, View: view, Expanded: expanded}, http.StatusOK)
}

// StageDelivery выбирает заказ для подтверждения доставки.
// @Summary      Выбрать заказ для подтверждения
// @Tags         confirmation
// @Security     BearerAuth
// @Param        session_id  path  string        true  "Идентификатор сессии"
// @Param        request     body  StageRequest  true  "Заказ"
// @Success      200  {object}  Confirmation
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Сессия или заказ не найдены"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже выбран или не активен"
// @Router       /sessions/{session_id}/confirmation [post]
func (h *HTTPHandler) StageDelivery(w http.ResponseWriter, r *http.Request) {
	identity, sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	var req StageRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	view, err := h.svc.StageDelivery(r.Context(), identity, sessionID, req.OrderID)
	if err != nil {
		h.writeError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, ConfirmationToJSON(view), http.StatusOK)
}

// CancelDelivery отменяет выбор заказа.
// @Summary      Отменить выбор
// @Tags         confirmation
// @Security     BearerAuth
// @Param        session_id  path  string  true  "Идентификатор сессии"
// @Success      200  {object}  Confirmation
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Нечего отменять или идёт подтверждение"
// @Router       /sessions/{session_id}/confirmation [delete]
func (h *HTTPHandler) CancelDelivery(w http.ResponseWriter, r *http.Request) {
	identity, sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	view, err := h.svc.CancelDelivery(identity, sessionID)
	if err != nil {
		h.writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ConfirmationToJSON(view), http.StatusOK)
}

// ConfirmDelivery подтверждает доставку выбранного заказа.
// @Summary      Подтвердить доставку
// @Description  При ошибке хранилища заказ остаётся выбранным, подтверждение можно повторить
// @Tags         confirmation
// @Security     BearerAuth
// @Param        session_id  path  string  true  "Идентификатор сессии"
// @Success      200  {object}  ConfirmResponse
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Нет выбранного заказа, подтверждение уже идёт или заказ уже закрыт"
// @Failure      502  {object}  ConfirmFailedResponse "Хранилище отклонило обновление"
// @Router       /sessions/{session_id}/confirmation/commit [post]
func (h *HTTPHandler) ConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	identity, sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	start := time.Now()
	order, view, err := h.svc.ConfirmDelivery(r.Context(), identity, sessionID)

	if err != nil && !isClientError(err) {
		deliveriesFailed.Inc()
		deliveryCommitDuration.Observe(time.Since(start).Seconds())
		utils.WriteJSON(w, ConfirmFailedResponse{
			Message:      tasks.MsgDeliveryFailed,
			Confirmation: ConfirmationToJSON(view),
		}, http.StatusBadGateway)
		return
	}

	if err != nil {
		h.writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	deliveriesConfirmed.Inc()
	deliveryCommitDuration.Observe(time.Since(start).Seconds())
	utils.WriteJSON(w, ConfirmResponse{
		Order:        OrderEntityToJSON(order),
		Confirmation: ConfirmationToJSON(view),
	}, http.StatusOK)
}

// Profile возвращает профиль водителя.
// @Summary      Профиль водителя
// @Tags         profile
// @Security     BearerAuth
// @Success      200  {object}  Driver
// @Failure      401  {object}  utils.ErrorResponse "Нет токена или токен недействителен"
// @Failure      403  {object}  utils.ErrorResponse "Водитель не распознан"
// @Failure      503  {object}  utils.ErrorResponse "Хранилище недоступно"
// @Router       /profile [get]
func (h *HTTPHandler) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	driver, err := h.svc.Profile(r.Context(), identity)
	if err != nil {
		h.writeError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, DriverEntityToJSON(driver), http.StatusOK)
}

func (h *HTTPHandler) identity(w http.ResponseWriter, r *http.Request) (string, bool) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
	}
	return identity, ok
}

func (h *HTTPHandler) session(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	identity, ok := h.identity(w, r)
	if !ok {
		return "", "", false
	}

	sessionID := chi.URLParam(r, "session_id")
	if err := h.validate.Var(sessionID, "required,uuid"); err != nil {
		utils.WriteValidationError(w, err)
		return "", "", false
	}
	return identity, sessionID, true
}

// isClientError сообщает, что ошибка вызвана запросом, а не хранилищем.
func isClientError(err error) bool {
	for _, target := range []error{
		entities.ErrDriverNotFound,
		entities.ErrOrderNotFound,
		entities.ErrOrderClosed,
		service.ErrSessionNotFound,
		service.ErrUnknownView,
		tasks.ErrNotIdle,
		tasks.ErrNothingStaged,
		tasks.ErrCommitInFlight,
		tasks.ErrOrderNotActive,
		tasks.ErrUnknownSortKey,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// writeError отвечает кодом по типу ошибки. Остальные ошибки считаются
// ошибками хранилища и получают fallback.
func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback int) {
	switch {
	case errors.Is(err, entities.ErrDriverNotFound):
		utils.WriteError(w, "access not recognized", http.StatusForbidden)
	case errors.Is(err, service.ErrSessionNotFound):
		utils.WriteError(w, "session not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderClosed):
		utils.WriteError(w, entities.ErrOrderClosed.Error(), http.StatusConflict)
	case errors.Is(err, tasks.ErrNotIdle):
		utils.WriteError(w, tasks.ErrNotIdle.Error(), http.StatusConflict)
	case errors.Is(err, tasks.ErrNothingStaged):
		utils.WriteError(w, tasks.ErrNothingStaged.Error(), http.StatusConflict)
	case errors.Is(err, tasks.ErrCommitInFlight):
		utils.WriteError(w, tasks.ErrCommitInFlight.Error(), http.StatusConflict)
	case errors.Is(err, tasks.ErrOrderNotActive):
		utils.WriteError(w, tasks.ErrOrderNotActive.Error(), http.StatusConflict)
	case errors.Is(err, tasks.ErrUnknownSortKey):
		utils.WriteError(w, tasks.ErrUnknownSortKey.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrUnknownView):
		utils.WriteError(w, service.ErrUnknownView.Error(), http.StatusBadRequest)
	default:
		middleware.WithIdentityLog(h.logger, r).ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path), slog.Any("error", err))

		message := "internal server error"
		if fallback == http.StatusServiceUnavailable {
			message = "orders temporarily unavailable"
		}
		utils.WriteError(w, message, fallback)
	}
}
