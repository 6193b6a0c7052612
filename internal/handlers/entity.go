package handlers

import (
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"FinKeeper/internal/repo"
	"FinKeeper/internal/service"
)

// mountEntity вешает единообразное CRUD-поддерево для типа сущности:
//
//	GET    /api/<path>            список живых
//	POST   /api/<path>            создание
//	GET    /api/<path>/{id}       одна запись
//	PUT    /api/<path>/{id}       обновление
//	DELETE /api/<path>/{id}       мягкое удаление
//	POST   /api/<path>/{id}/restore   восстановление из корзины
//	DELETE /api/<path>/{id}/permanent окончательное удаление
func mountEntity[T any, PT repo.PTrashable[T]](r chi.Router, path string, svc *service.EntityService[T, PT], logger *zap.SugaredLogger) {
	h := &entityHandler[T, PT]{svc: svc, logger: logger}
	r.Route("/api/"+path, func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.softDelete)
		r.Post("/{id}/restore", h.restore)
		r.Delete("/{id}/permanent", h.permanentDelete)
	})
}

type entityHandler[T any, PT repo.PTrashable[T]] struct {
	svc    *service.EntityService[T, PT]
	logger *zap.SugaredLogger
}

func (h *entityHandler[T, PT]) list(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(h.logger, w, r); !ok {
		return
	}
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeError(h.logger, w, err)
		return
	}
	writeJSON(h.logger, w, http.StatusOK, items)
}

func (h *entityHandler[T, PT]) get(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(h.logger, w, r); !ok {
		return
	}
	e, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(h.logger, w, err)
		return
	}
	writeJSON(h.logger, w, http.StatusOK, e)
}

func (h *entityHandler[T, PT]) create(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(h.logger, w, r)
	if !ok {
		return
	}
	var e T
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		h.logger.Warnw("create: invalid request body", "error", err)
		writeJSON(h.logger, w, http.StatusBadRequest, failBody{Error: "invalid request"})
		return
	}
	if err := h.svc.Create(r.Context(), &uid, PT(&e)); err != nil {
		writeError(h.logger, w, err)
		return
	}
	writeJSON(h.logger, w, http.StatusCreated, PT(&e))
}

func (h *entityHandler[T, PT]) update(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(h.logger, w, r)
	if !ok {
		return
	}
	var e T
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		h.logger.Warnw("update: invalid request body", "error", err)
		writeJSON(h.logger, w, http.StatusBadRequest, failBody{Error: "invalid request"})
		return
	}
	// id берём из URL, тело его не переопределяет
	setID(&e, chi.URLParam(r, "id"))
	if err := h.svc.Update(r.Context(), &uid, PT(&e)); err != nil {
		writeError(h.logger, w, err)
		return
	}
	writeJSON(h.logger, w, http.StatusOK, PT(&e))
}

func (h *entityHandler[T, PT]) softDelete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(h.logger, w, r)
	if !ok {
		return
	}
	if err := h.svc.SoftDelete(r.Context(), &uid, chi.URLParam(r, "id")); err != nil {
		writeError(h.logger, w, err)
		return
	}
	writeJSON(h.logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (h *entityHandler[T, PT]) restore(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(h.logger, w, r)
	if !ok {
		return
	}
	if err := h.svc.Restore(r.Context(), &uid, chi.URLParam(r, "id")); err != nil {
		writeError(h.logger, w, err)
		return
	}
	writeJSON(h.logger, w, http.StatusOK, map[string]bool{"success": true})
}

func (h *entityHandler[T, PT]) permanentDelete(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUser(h.logger, w, r)
	if !ok {
		return
	}
	if err := h.svc.PermanentDelete(r.Context(), &uid, chi.URLParam(r, "id")); err != nil {
		writeError(h.logger, w, err)
		return
	}
	writeJSON(h.logger, w, http.StatusOK, map[string]bool{"success": true})
}

// setID выставляет строковый ID сущности.
func setID(e any, id string) {
	v := reflect.ValueOf(e).Elem().FieldByName("ID")
	if v.IsValid() && v.Kind() == reflect.String && v.CanSet() {
		v.SetString(id)
	}
}
