package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"FinKeeper/internal/model"
	"FinKeeper/internal/service"
)

// AuditHandler отдаёт журнал аудита на чтение.
type AuditHandler struct {
	Services *service.Services
	Logger   *zap.SugaredLogger
}

func NewAuditHandler(services *service.Services, logger *zap.SugaredLogger) *AuditHandler {
	return &AuditHandler{Services: services, Logger: logger}
}

// List возвращает записи журнала. Параметры entity_type и entity_id
// сужают выборку до истории одной сущности, limit ограничивает размер.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeJSON(h.Logger, w, http.StatusBadRequest, failBody{Error: "invalid limit"})
			return
		}
		limit = n
	}

	entityType := q.Get("entity_type")
	entityID := q.Get("entity_id")

	if entityType != "" && entityID != "" {
		logs, err := h.Services.Audit().ListByEntity(r.Context(), model.EntityType(entityType), entityID, limit)
		if err != nil {
			writeError(h.Logger, w, err)
			return
		}
		writeJSON(h.Logger, w, http.StatusOK, logs)
		return
	}

	logs, err := h.Services.Audit().ListRecent(r.Context(), limit)
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	writeJSON(h.Logger, w, http.StatusOK, logs)
}
