package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"FinKeeper/internal/middleware"
	"FinKeeper/internal/repo"
	"FinKeeper/internal/service"
)

// writeJSON сериализует ответ. Ошибка сериализации уже не исправима,
// логируем и всё.
func writeJSON(logger *zap.SugaredLogger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorw("write response", "error", err)
	}
}

// failBody — структурированный отказ для UI.
type failBody struct {
	Success     bool              `json:"success"`
	Error       string            `json:"error,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// writeError транслирует ошибку сервиса в HTTP-ответ.
// Ошибки валидации возвращаются пофилдово для инлайн-подсказок;
// внутренние ошибки наружу не просачиваются — клиент видит общий текст,
// причина уходит в лог.
func writeError(logger *zap.SugaredLogger, w http.ResponseWriter, err error) {
	if ve, ok := service.AsValidation(err); ok {
		writeJSON(logger, w, http.StatusBadRequest, failBody{FieldErrors: ve.Fields})
		return
	}
	switch {
	case errors.Is(err, repo.ErrNotFound):
		writeJSON(logger, w, http.StatusNotFound, failBody{Error: "not found"})
	case errors.Is(err, repo.ErrInvalidState):
		writeJSON(logger, w, http.StatusConflict, failBody{Error: "invalid entity state"})
	default:
		logger.Errorw("internal error", "error", err)
		writeJSON(logger, w, http.StatusInternalServerError, failBody{Error: "internal error"})
	}
}

// requireUser достаёт user_id из контекста; без него — 401.
func requireUser(logger *zap.SugaredLogger, w http.ResponseWriter, r *http.Request) (int64, bool) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeJSON(logger, w, http.StatusUnauthorized, failBody{Error: "unauthorized"})
		return 0, false
	}
	return uid, true
}
