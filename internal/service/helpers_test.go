package service

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"FinKeeper/internal/repo"
)

// newTestServices поднимает сервисный слой на изолированной in-memory
// SQLite. Имя базы берётся из имени теста, чтобы тесты не делили данные;
// счётчик изолирует и повторные вызовы внутри одного теста.
var testDBSeq atomic.Int64

func newTestServices(t *testing.T) (*Services, *repo.Stores) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dial := gormsqlite.Dialector{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, testDBSeq.Add(1)),
	}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := repo.Migrate(db); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}

	stores := repo.NewStores(db)
	services := NewServices(stores, zap.NewNop().Sugar(), Options{
		UpcomingWindowDays: 7,
		TrialWindowDays:    3,
		OwnerUserID:        1,
	})
	return services, stores
}
