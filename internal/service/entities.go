package service

import (
	"context"

	"go.uber.org/zap"

	"FinKeeper/internal/model"
	"FinKeeper/internal/repo"
)

// EntityService — типизированная обёртка над репозиторием:
// валидация входа, делегирование в хранилище, побочный эффект после
// создания (например, уведомление о новой подписке).
type EntityService[T any, PT repo.PTrashable[T]] struct {
	repo        *repo.EntityRepo[T, PT]
	validate    func(PT) error
	afterCreate func(ctx context.Context, e PT)
}

// NewEntityService создаёт сервис поверх репозитория.
func NewEntityService[T any, PT repo.PTrashable[T]](r *repo.EntityRepo[T, PT], validate func(PT) error) *EntityService[T, PT] {
	return &EntityService[T, PT]{repo: r, validate: validate}
}

// Create валидирует и сохраняет новую сущность.
func (s *EntityService[T, PT]) Create(ctx context.Context, actor *int64, e PT) error {
	if s.validate != nil {
		if err := s.validate(e); err != nil {
			return err
		}
	}
	if err := s.repo.Create(ctx, actor, e); err != nil {
		return err
	}
	if s.afterCreate != nil {
		s.afterCreate(ctx, e)
	}
	return nil
}

// Update валидирует и сохраняет изменённую сущность.
func (s *EntityService[T, PT]) Update(ctx context.Context, actor *int64, e PT) error {
	if s.validate != nil {
		if err := s.validate(e); err != nil {
			return err
		}
	}
	return s.repo.Update(ctx, actor, e)
}

func (s *EntityService[T, PT]) Get(ctx context.Context, id string) (PT, error) {
	return s.repo.Get(ctx, id)
}

func (s *EntityService[T, PT]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *EntityService[T, PT]) SoftDelete(ctx context.Context, actor *int64, id string) error {
	return s.repo.SoftDelete(ctx, actor, id)
}

func (s *EntityService[T, PT]) Restore(ctx context.Context, actor *int64, id string) error {
	return s.repo.Restore(ctx, actor, id)
}

func (s *EntityService[T, PT]) PermanentDelete(ctx context.Context, actor *int64, id string) error {
	return s.repo.PermanentDelete(ctx, actor, id)
}

// Services — все сервисы приложения, собранные над одним Stores.
type Services struct {
	Emails    *EntityService[model.Email, *model.Email]
	Accounts  *EntityService[model.Account, *model.Account]
	Incomes   *EntityService[model.Income, *model.Income]
	Debts     *EntityService[model.Debt, *model.Debt]
	Credits   *EntityService[model.Credit, *model.Credit]
	Recurring *EntityService[model.RecurringExpense, *model.RecurringExpense]
	Bills     *EntityService[model.OneTimeBill, *model.OneTimeBill]
	Banks     *EntityService[model.Bank, *model.Bank]
	Wishlist  *EntityService[model.WishlistItem, *model.WishlistItem]
	Documents *EntityService[model.Document, *model.Document]

	Users     *UserService
	Trash     *TrashService
	Notify    *NotifyEngine
	Backup    *BackupService
	Plugins   *PluginState
	Dashboard *DashboardService

	stores *repo.Stores
	logger *zap.SugaredLogger
}

// Options — параметры сборки сервисов.
type Options struct {
	UpcomingWindowDays int
	TrialWindowDays    int
	// OwnerUserID — получатель уведомлений, эмитируемых движком
	// (приложение однопользовательское, владелец настраивается).
	OwnerUserID int64
}

// NewServices собирает слой сервисов.
func NewServices(stores *repo.Stores, logger *zap.SugaredLogger, opts Options) *Services {
	s := &Services{
		Emails:    NewEntityService(stores.Emails, validateEmail),
		Accounts:  NewEntityService(stores.Accounts, validateAccount),
		Incomes:   NewEntityService(stores.Incomes, validateIncome),
		Debts:     NewEntityService(stores.Debts, validateDebt),
		Credits:   NewEntityService(stores.Credits, validateCredit),
		Recurring: NewEntityService(stores.Recurring, validateRecurring),
		Bills:     NewEntityService(stores.Bills, validateBill),
		Banks:     NewEntityService(stores.Banks, validateBank),
		Wishlist:  NewEntityService(stores.Wishlist, validateWishlist),
		Documents: NewEntityService(stores.Documents, validateDocument),

		Users:   NewUserService(stores.Users),
		Plugins: NewPluginState(stores.Plugins),

		stores: stores,
		logger: logger,
	}
	s.Trash = NewTrashService(stores.Trash, logger)
	s.Notify = NewNotifyEngine(stores, logger, opts.UpcomingWindowDays, opts.OwnerUserID)
	s.Backup = NewBackupService(stores)
	s.Dashboard = NewDashboardService(stores, opts.UpcomingWindowDays, opts.TrialWindowDays)

	// создание регулярного расхода сопровождается одноразовым уведомлением;
	// дедупликация не нужна, эмиссия строго одна на создание
	s.Recurring.afterCreate = func(ctx context.Context, r *model.RecurringExpense) {
		if err := s.Notify.EmitRecurringCreated(ctx, r); err != nil {
			logger.Warnw("recurring created notification failed", "id", r.ID, "error", err)
		}
	}
	return s
}

// Notifications — доступ к хранилищу уведомлений для хендлеров и CLI.
func (s *Services) Notifications() repo.NotificationRepository { return s.stores.Notifications }

// Audit — доступ на чтение к журналу аудита.
func (s *Services) Audit() repo.AuditRepository { return s.stores.Audit }
