package repo

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"FinKeeper/internal/model"
)

// InitDB открывает соединение с БД и прогоняет автомиграции.
// postgres распознаётся по DSN; всё остальное трактуем как путь к SQLite
// (чистый Go драйвер modernc, без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty database DSN")
	}

	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate прогоняет автомиграции для всех моделей приложения.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Email{},
		&model.Account{},
		&model.Income{},
		&model.Debt{},
		&model.Credit{},
		&model.RecurringExpense{},
		&model.OneTimeBill{},
		&model.Bank{},
		&model.WishlistItem{},
		&model.Document{},
		&model.Notification{},
		&model.AuditLog{},
		&model.PluginInstall{},
	)
	if err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
