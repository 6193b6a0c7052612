package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"FinKeeper/internal/model"
	"FinKeeper/internal/repo"
)

// SnapshotVersion — версия формата снапшота.
const SnapshotVersion = 1

// SnapshotAppName — метка приложения в снапшоте.
const SnapshotAppName = "finkeeper"

// Snapshot — версионированный слепок данных для бэкапа.
type Snapshot struct {
	Version   int          `json:"version"`
	Timestamp time.Time    `json:"timestamp"`
	AppName   string       `json:"app_name"`
	Data      SnapshotData `json:"data"`
}

// SnapshotData — по массиву на каждый тип с мягким удалением.
type SnapshotData struct {
	Emails    []model.Email            `json:"emails"`
	Accounts  []model.Account          `json:"accounts"`
	Incomes   []model.Income           `json:"incomes"`
	Debts     []model.Debt             `json:"debts"`
	Credits   []model.Credit           `json:"credits"`
	Recurring []model.RecurringExpense `json:"recurring_expenses"`
	Bills     []model.OneTimeBill      `json:"one_time_bills"`
	Banks     []model.Bank             `json:"banks"`
	Wishlist  []model.WishlistItem     `json:"wishlist_items"`
	Documents []model.Document         `json:"documents"`
}

// ImportReport — итог восстановления из снапшота. Skipped считает строки,
// которые лежат в корзине либо не отличаются от импортируемых.
type ImportReport struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// BackupService сериализует сущности в снапшот и восстанавливает из него.
// Восстановление идёт через обычные create/update, то есть аудируется
// и идемпотентно при повторном проигрывании.
type BackupService struct {
	stores *repo.Stores
}

// NewBackupService создаёт сервис бэкапа.
func NewBackupService(stores *repo.Stores) *BackupService {
	return &BackupService{stores: stores}
}

// Export собирает снапшот. includeTrashed добавляет содержимое корзины.
func (s *BackupService) Export(ctx context.Context, includeTrashed bool) (*Snapshot, error) {
	snap := &Snapshot{
		Version:   SnapshotVersion,
		Timestamp: time.Now().UTC(),
		AppName:   SnapshotAppName,
	}
	var err error
	if snap.Data.Emails, err = s.stores.Emails.ListAll(ctx, includeTrashed); err != nil {
		return nil, fmt.Errorf("export emails: %w", err)
	}
	if snap.Data.Accounts, err = s.stores.Accounts.ListAll(ctx, includeTrashed); err != nil {
		return nil, fmt.Errorf("export accounts: %w", err)
	}
	if snap.Data.Incomes, err = s.stores.Incomes.ListAll(ctx, includeTrashed); err != nil {
		return nil, fmt.Errorf("export incomes: %w", err)
	}
	if snap.Data.Debts, err = s.stores.Debts.ListAll(ctx, includeTrashed); err != nil {
		return nil, fmt.Errorf("export debts: %w", err)
	}
	if snap.Data.Credits, err = s.stores.Credits.ListAll(ctx, includeTrashed); err != nil {
		return nil, fmt.Errorf("export credits: %w", err)
	}
	if snap.Data.Recurring, err = s.stores.Recurring.ListAll(ctx, includeTrashed); err != nil {
		return nil, fmt.Errorf("export recurring: %w", err)
	}
	if snap.Data.Bills, err = s.stores.Bills.ListAll(ctx, includeTrashed); err != nil {
		return nil, fmt.Errorf("export bills: %w", err)
	}
	if snap.Data.Banks, err = s.stores.Banks.ListAll(ctx, includeTrashed); err != nil {
		return nil, fmt.Errorf("export banks: %w", err)
	}
	if snap.Data.Wishlist, err = s.stores.Wishlist.ListAll(ctx, includeTrashed); err != nil {
		return nil, fmt.Errorf("export wishlist: %w", err)
	}
	if snap.Data.Documents, err = s.stores.Documents.ListAll(ctx, includeTrashed); err != nil {
		return nil, fmt.Errorf("export documents: %w", err)
	}
	return snap, nil
}

// Import проигрывает снапшот: отсутствующие строки создаются с исходным id,
// существующие живые обновляются (без изменений — без аудита), строки в
// корзине не трогаются. Повторный импорт того же снапшота — no-op.
func (s *BackupService) Import(ctx context.Context, actor *int64, snap *Snapshot) (ImportReport, error) {
	var report ImportReport
	if snap == nil {
		return report, errors.New("nil snapshot")
	}
	if snap.Version != SnapshotVersion {
		return report, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}

	if err := importAll(ctx, s.stores.Emails, actor, snap.Data.Emails, &report); err != nil {
		return report, err
	}
	if err := importAll(ctx, s.stores.Accounts, actor, snap.Data.Accounts, &report); err != nil {
		return report, err
	}
	if err := importAll(ctx, s.stores.Incomes, actor, snap.Data.Incomes, &report); err != nil {
		return report, err
	}
	if err := importAll(ctx, s.stores.Debts, actor, snap.Data.Debts, &report); err != nil {
		return report, err
	}
	if err := importAll(ctx, s.stores.Credits, actor, snap.Data.Credits, &report); err != nil {
		return report, err
	}
	if err := importAll(ctx, s.stores.Recurring, actor, snap.Data.Recurring, &report); err != nil {
		return report, err
	}
	if err := importAll(ctx, s.stores.Bills, actor, snap.Data.Bills, &report); err != nil {
		return report, err
	}
	if err := importAll(ctx, s.stores.Banks, actor, snap.Data.Banks, &report); err != nil {
		return report, err
	}
	if err := importAll(ctx, s.stores.Wishlist, actor, snap.Data.Wishlist, &report); err != nil {
		return report, err
	}
	if err := importAll(ctx, s.stores.Documents, actor, snap.Data.Documents, &report); err != nil {
		return report, err
	}
	return report, nil
}

// importAll — upsert одной коллекции снапшота.
func importAll[T any, PT repo.PTrashable[T]](ctx context.Context, r *repo.EntityRepo[T, PT], actor *int64, rows []T, report *ImportReport) error {
	for i := range rows {
		e := PT(&rows[i])
		existing, err := r.GetAny(ctx, e.GetID())
		switch {
		case errors.Is(err, repo.ErrNotFound):
			if err := r.Create(ctx, actor, e); err != nil {
				return fmt.Errorf("import %s %s: %w", e.Kind(), e.GetID(), err)
			}
			report.Created++
		case err != nil:
			return fmt.Errorf("import %s %s: %w", e.Kind(), e.GetID(), err)
		case !existing.TrashedAt().IsZero():
			// строка в корзине: импорт её не воскрешает
			report.Skipped++
		case len(repo.FieldDiff(existing, e)) == 0:
			report.Skipped++
		default:
			if err := r.Update(ctx, actor, e); err != nil {
				return fmt.Errorf("import %s %s: %w", e.Kind(), e.GetID(), err)
			}
			report.Updated++
		}
	}
	return nil
}
