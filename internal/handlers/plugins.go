package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"FinKeeper/internal/service"
)

// PluginHandler управляет списком включённых плагинов пользователя.
type PluginHandler struct {
	Plugins *service.PluginState
	Logger  *zap.SugaredLogger
}

func NewPluginHandler(plugins *service.PluginState, logger *zap.SugaredLogger) *PluginHandler {
	return &PluginHandler{Plugins: plugins, Logger: logger}
}

// List возвращает ключи включённых плагинов.
func (h *PluginHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.Logger, w, r)
	if !ok {
		return
	}
	keys, err := h.Plugins.Installed(r.Context(), userID)
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	writeJSON(h.Logger, w, http.StatusOK, map[string]any{"plugins": keys})
}

// Install включает плагин по ключу. Повторная установка идемпотентна.
func (h *PluginHandler) Install(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.Logger, w, r)
	if !ok {
		return
	}
	key := chi.URLParam(r, "key")
	if key == "" {
		writeJSON(h.Logger, w, http.StatusBadRequest, failBody{Error: "plugin key required"})
		return
	}
	if err := h.Plugins.Install(r.Context(), userID, key); err != nil {
		writeError(h.Logger, w, err)
		return
	}
	writeJSON(h.Logger, w, http.StatusOK, map[string]string{"result": "ok"})
}

// Uninstall выключает плагин по ключу.
func (h *PluginHandler) Uninstall(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.Logger, w, r)
	if !ok {
		return
	}
	key := chi.URLParam(r, "key")
	if err := h.Plugins.Uninstall(r.Context(), userID, key); err != nil {
		writeError(h.Logger, w, err)
		return
	}
	writeJSON(h.Logger, w, http.StatusOK, map[string]string{"result": "ok"})
}
