package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinKeeper/internal/model"
)

func TestProtectedRoutes_RejectAnonymous(t *testing.T) {
	router, _, _ := newTestApp(t)

	routes := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/dashboard"},
		{http.MethodGet, "/api/finance"},
		{http.MethodGet, "/api/notifications"},
		{http.MethodPost, "/api/notifications/run"},
		{http.MethodPost, "/api/notifications/some-id/read"},
		{http.MethodDelete, "/api/notifications/some-id"},
	}
	for _, route := range routes {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(route.method, route.target, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", route.method, route.target)
	}
}

func TestNotifications_MarkReadScopedToOwner(t *testing.T) {
	router, services, cfg := newTestApp(t)
	ctx := context.Background()

	foreign := &model.Notification{Type: model.NotifyBillDueSoon, UserID: 2, EntityID: "bill-1"}
	require.NoError(t, services.Notifications().Create(ctx, foreign))

	// пользователь 1 не видит чужое уведомление
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(t, http.MethodPost, "/api/notifications/"+foreign.ID+"/read", ""))
	assert.Equal(t, http.StatusNotFound, rr.Code, rr.Body.String())

	// владелец — видит
	req := httptest.NewRequest(http.MethodPost, "/api/notifications/"+foreign.ID+"/read", nil)
	addAuthCookie(t, req, 2, cfg.AuthSecret)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
}

func TestNotifications_DeleteScopedToOwner(t *testing.T) {
	router, services, cfg := newTestApp(t)
	ctx := context.Background()

	foreign := &model.Notification{Type: model.NotifyBillDueSoon, UserID: 2, EntityID: "bill-2"}
	require.NoError(t, services.Notifications().Create(ctx, foreign))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, authedRequest(t, http.MethodDelete, "/api/notifications/"+foreign.ID, ""))
	assert.Equal(t, http.StatusNotFound, rr.Code, rr.Body.String())

	req := httptest.NewRequest(http.MethodDelete, "/api/notifications/"+foreign.ID, nil)
	addAuthCookie(t, req, 2, cfg.AuthSecret)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	list, err := services.Notifications().ListByUser(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, list)
}
