package bootstrap

import (
	"fmt"

	"go.uber.org/zap"

	"FinKeeper/internal/config"
	"FinKeeper/internal/repo"
	"FinKeeper/internal/service"
)

// OpenServices открывает БД по DSN из конфига и собирает слой сервисов.
// CLI работает с базой напрямую, минуя HTTP-сервер.
func OpenServices(cfg *config.Config) (*service.Services, error) {
	db, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := repo.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	stores := repo.NewStores(db)
	return service.NewServices(stores, zap.NewNop().Sugar(), service.Options{
		UpcomingWindowDays: cfg.UpcomingWindowDays,
		TrialWindowDays:    cfg.TrialWindowDays,
		OwnerUserID:        cfg.OwnerUserID,
	}), nil
}
