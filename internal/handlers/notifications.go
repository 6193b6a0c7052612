package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"FinKeeper/internal/service"
)

// NotificationHandler обслуживает уведомления и ручной запуск движка.
type NotificationHandler struct {
	Services *service.Services
	Logger   *zap.SugaredLogger
}

func NewNotificationHandler(services *service.Services, logger *zap.SugaredLogger) *NotificationHandler {
	return &NotificationHandler{Services: services, Logger: logger}
}

// List возвращает уведомления текущего пользователя, свежие первыми.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.Logger, w, r)
	if !ok {
		return
	}
	list, err := h.Services.Notifications().ListByUser(r.Context(), userID)
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	writeJSON(h.Logger, w, http.StatusOK, list)
}

// Run — ручной запуск движка уведомлений.
func (h *NotificationHandler) Run(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(h.Logger, w, r); !ok {
		return
	}
	emitted, err := h.Services.Notify.Run(r.Context())
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	writeJSON(h.Logger, w, http.StatusOK, map[string]int{"emitted": emitted})
}

// MarkRead помечает уведомление прочитанным. Чужие уведомления
// неотличимы от несуществующих — 404.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.Logger, w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.Services.Notifications().MarkRead(r.Context(), userID, id, true); err != nil {
		writeError(h.Logger, w, err)
		return
	}
	writeJSON(h.Logger, w, http.StatusOK, map[string]string{"result": "ok"})
}

// Delete удаляет уведомление. Уведомления не попадают в корзину.
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.Logger, w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.Services.Notifications().Delete(r.Context(), userID, id); err != nil {
		writeError(h.Logger, w, err)
		return
	}
	writeJSON(h.Logger, w, http.StatusOK, map[string]string{"result": "ok"})
}
