package handlers

import (
	"FinKeeper/internal/config"
	"FinKeeper/internal/middleware"
	"FinKeeper/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	services *service.Services,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(cfg.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(services.Users, logger, cfg)
	trashHandler := NewTrashHandler(services.Trash, logger)
	dashboardHandler := NewDashboardHandler(services.Dashboard, logger)
	notificationHandler := NewNotificationHandler(services, logger)
	auditHandler := NewAuditHandler(services, logger)
	backupHandler := NewBackupHandler(services.Backup, logger)
	pluginHandler := NewPluginHandler(services.Plugins, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/test", userHandler.Status)

	// Entity CRUD + trash lifecycle, по одному поддереву на тип
	mountEntity(r, "emails", services.Emails, logger)
	mountEntity(r, "accounts", services.Accounts, logger)
	mountEntity(r, "incomes", services.Incomes, logger)
	mountEntity(r, "debts", services.Debts, logger)
	mountEntity(r, "credits", services.Credits, logger)
	mountEntity(r, "recurring-expenses", services.Recurring, logger)
	mountEntity(r, "one-time-bills", services.Bills, logger)
	mountEntity(r, "banks", services.Banks, logger)
	mountEntity(r, "wishlist", services.Wishlist, logger)
	mountEntity(r, "documents", services.Documents, logger)

	// Trash
	r.Get("/api/trash", trashHandler.List)
	r.Post("/api/trash/empty", trashHandler.Empty)
	r.Post("/api/trash/{type}/{id}/restore", trashHandler.Restore)
	r.Delete("/api/trash/{type}/{id}", trashHandler.Delete)

	// Dashboard
	r.Get("/api/dashboard", dashboardHandler.Summary)
	r.Get("/api/finance", dashboardHandler.AllData)

	// Notifications
	r.Get("/api/notifications", notificationHandler.List)
	r.Post("/api/notifications/run", notificationHandler.Run)
	r.Post("/api/notifications/{id}/read", notificationHandler.MarkRead)
	r.Delete("/api/notifications/{id}", notificationHandler.Delete)

	// Audit
	r.Get("/api/audit", auditHandler.List)

	// Backup
	r.Get("/api/backup/export", backupHandler.Export)
	r.Post("/api/backup/import", backupHandler.Import)

	// Plugins
	r.Get("/api/plugins", pluginHandler.List)
	r.Post("/api/plugins/{key}", pluginHandler.Install)
	r.Delete("/api/plugins/{key}", pluginHandler.Uninstall)

	return &Handler{Router: r}
}
