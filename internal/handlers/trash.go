package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"FinKeeper/internal/model"
	"FinKeeper/internal/service"
)

// TrashHandler обслуживает корзину удалённых записей.
type TrashHandler struct {
	Trash  *service.TrashService
	Logger *zap.SugaredLogger
}

func NewTrashHandler(trash *service.TrashService, logger *zap.SugaredLogger) *TrashHandler {
	return &TrashHandler{Trash: trash, Logger: logger}
}

// List возвращает нормализованный список всего содержимого корзины.
func (h *TrashHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(h.Logger, w, r); !ok {
		return
	}
	bundle, err := h.Trash.DeletedItems(r.Context())
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	items := h.Trash.Normalize(bundle)
	writeJSON(h.Logger, w, http.StatusOK, map[string]any{
		"items": items,
		"count": len(items),
	})
}

// Restore восстанавливает запись по типу и идентификатору.
func (h *TrashHandler) Restore(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(h.Logger, w, r)
	if !ok {
		return
	}
	kind := model.EntityType(chi.URLParam(r, "type"))
	id := chi.URLParam(r, "id")

	res, err := h.Trash.RestoreByType(r.Context(), &uid, kind, id)
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	status := http.StatusOK
	if !res.Success {
		status = http.StatusBadRequest
	}
	writeJSON(h.Logger, w, status, res)
}

// Delete окончательно удаляет запись из корзины.
func (h *TrashHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(h.Logger, w, r)
	if !ok {
		return
	}
	kind := model.EntityType(chi.URLParam(r, "type"))
	id := chi.URLParam(r, "id")

	res, err := h.Trash.DeleteByType(r.Context(), &uid, kind, id)
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	status := http.StatusOK
	if !res.Success {
		status = http.StatusBadRequest
	}
	writeJSON(h.Logger, w, status, res)
}

// Empty очищает корзину целиком.
func (h *TrashHandler) Empty(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(h.Logger, w, r)
	if !ok {
		return
	}
	report := h.Trash.EmptyTrash(r.Context(), &uid)
	writeJSON(h.Logger, w, http.StatusOK, report)
}
