package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"FinKeeper/internal/service"
)

// DashboardHandler отдаёт агрегированную финансовую картину.
type DashboardHandler struct {
	Dashboard *service.DashboardService
	Logger    *zap.SugaredLogger
}

func NewDashboardHandler(dashboard *service.DashboardService, logger *zap.SugaredLogger) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard, Logger: logger}
}

// Summary — итоговые суммы и предстоящие платежи.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(h.Logger, w, r); !ok {
		return
	}
	summary, err := h.Dashboard.Summary(r.Context())
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	writeJSON(h.Logger, w, http.StatusOK, summary)
}

// AllData — все живые финансовые записи одним ответом.
func (h *DashboardHandler) AllData(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(h.Logger, w, r); !ok {
		return
	}
	data, err := h.Dashboard.AllFinanceData(r.Context())
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}
	writeJSON(h.Logger, w, http.StatusOK, data)
}
