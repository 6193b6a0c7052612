package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"FinKeeper/internal/config"
	"FinKeeper/internal/middleware"
	"FinKeeper/internal/service"
)

// UserHandler обрабатывает регистрацию и вход.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер пользователей.
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Register регистрирует пользователя и сразу логинит его (ставит cookie).
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeJSON(h.Logger, w, http.StatusBadRequest, failBody{Error: "invalid request"})
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrLoginTaken) {
			writeJSON(h.Logger, w, http.StatusConflict, failBody{Error: "login already taken"})
			return
		}
		writeError(h.Logger, w, err)
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Register: set cookie", "error", err)
		writeJSON(h.Logger, w, http.StatusInternalServerError, failBody{Error: "internal error"})
		return
	}
	writeJSON(h.Logger, w, http.StatusOK, map[string]any{"id": user.ID, "login": user.Login})
}

// Login проверяет учётные данные и ставит cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeJSON(h.Logger, w, http.StatusBadRequest, failBody{Error: "invalid request"})
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(h.Logger, w, http.StatusUnauthorized, failBody{Error: "invalid login or password"})
			return
		}
		writeError(h.Logger, w, err)
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: set cookie", "error", err)
		writeJSON(h.Logger, w, http.StatusInternalServerError, failBody{Error: "internal error"})
		return
	}
	writeJSON(h.Logger, w, http.StatusOK, map[string]any{"id": user.ID, "login": user.Login})
}

// Status — проверка живости авторизации.
func (h *UserHandler) Status(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(h.Logger, w, r); !ok {
		return
	}
	writeJSON(h.Logger, w, http.StatusOK, map[string]string{"result": "ok"})
}
