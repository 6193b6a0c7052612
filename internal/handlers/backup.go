package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"FinKeeper/internal/service"
)

// BackupHandler выгружает и восстанавливает снапшоты данных.
type BackupHandler struct {
	Backup *service.BackupService
	Logger *zap.SugaredLogger
}

func NewBackupHandler(backup *service.BackupService, logger *zap.SugaredLogger) *BackupHandler {
	return &BackupHandler{Backup: backup, Logger: logger}
}

// Export отдаёт снапшот как скачиваемый JSON. Параметр trashed=1
// включает в выгрузку содержимое корзины.
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(h.Logger, w, r); !ok {
		return
	}
	includeTrashed := r.URL.Query().Get("trashed") == "1"

	snap, err := h.Backup.Export(r.Context(), includeTrashed)
	if err != nil {
		writeError(h.Logger, w, err)
		return
	}

	filename := fmt.Sprintf("finkeeper-backup-%s.json", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		h.Logger.Errorw("backup export: encode response", "error", err)
	}
}

// Import восстанавливает данные из снапшота в теле запроса.
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(h.Logger, w, r)
	if !ok {
		return
	}

	var snap service.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		h.Logger.Warnw("backup import: invalid body", "error", err)
		writeJSON(h.Logger, w, http.StatusBadRequest, failBody{Error: "invalid snapshot"})
		return
	}

	report, err := h.Backup.Import(r.Context(), &userID, &snap)
	if err != nil {
		h.Logger.Warnw("backup import failed", "error", err)
		writeJSON(h.Logger, w, http.StatusBadRequest, failBody{Error: err.Error()})
		return
	}
	writeJSON(h.Logger, w, http.StatusOK, report)
}
