package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"FinKeeper/internal/config"
	"FinKeeper/internal/handlers"
	"FinKeeper/internal/middleware"
	"FinKeeper/internal/repo"
	"FinKeeper/internal/service"
)

// newTestApp поднимает полный стек на изолированной in-memory SQLite.
// Имя базы берётся из имени теста, чтобы тесты не делили данные.
func newTestApp(t *testing.T) (http.Handler, *service.Services, *config.Config) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := repo.InitDB(dsn)
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}

	cfg := &config.Config{
		AuthSecret:         "test-secret",
		UpcomingWindowDays: 7,
		TrialWindowDays:    3,
		OwnerUserID:        1,
	}
	logger := zap.NewNop().Sugar()

	stores := repo.NewStores(db)
	services := service.NewServices(stores, logger, service.Options{
		UpcomingWindowDays: cfg.UpcomingWindowDays,
		TrialWindowDays:    cfg.TrialWindowDays,
		OwnerUserID:        cfg.OwnerUserID,
	})

	h := handlers.NewHandler(services, logger, cfg)
	return h.Router, services, cfg
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

// authedRequest — авторизованный JSON-запрос от пользователя 1.
func authedRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	addAuthCookie(t, req, 1, "test-secret")
	return req
}
