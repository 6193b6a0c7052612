package repo

import (
	"gorm.io/gorm"

	"FinKeeper/internal/model"
)

// Stores — единая точка сборки всех репозиториев над одним соединением.
type Stores struct {
	Emails    *EntityRepo[model.Email, *model.Email]
	Accounts  *EntityRepo[model.Account, *model.Account]
	Incomes   *EntityRepo[model.Income, *model.Income]
	Debts     *EntityRepo[model.Debt, *model.Debt]
	Credits   *EntityRepo[model.Credit, *model.Credit]
	Recurring *EntityRepo[model.RecurringExpense, *model.RecurringExpense]
	Bills     *EntityRepo[model.OneTimeBill, *model.OneTimeBill]
	Banks     *EntityRepo[model.Bank, *model.Bank]
	Wishlist  *EntityRepo[model.WishlistItem, *model.WishlistItem]
	Documents *EntityRepo[model.Document, *model.Document]

	Users         UserRepository
	Notifications NotificationRepository
	Audit         AuditRepository
	Plugins       PluginRepository

	Trash *TrashRegistry
}

// NewStores собирает репозитории и реестр корзины.
// Порядок регистрации в реестре определяет порядок обхода emptyTrash.
func NewStores(db *gorm.DB) *Stores {
	s := &Stores{
		Emails:    NewEntityRepo[model.Email](db),
		Accounts:  NewEntityRepo[model.Account](db),
		Incomes:   NewEntityRepo[model.Income](db),
		Debts:     NewEntityRepo[model.Debt](db),
		Credits:   NewEntityRepo[model.Credit](db),
		Recurring: NewEntityRepo[model.RecurringExpense](db),
		Bills:     NewEntityRepo[model.OneTimeBill](db),
		Banks:     NewEntityRepo[model.Bank](db),
		Wishlist:  NewEntityRepo[model.WishlistItem](db),
		Documents: NewEntityRepo[model.Document](db),

		Users:         NewUserRepository(db),
		Notifications: NewNotificationRepository(db),
		Audit:         NewAuditRepository(db),
		Plugins:       NewPluginRepository(db),
	}
	s.Trash = NewTrashRegistry(
		s.Emails,
		s.Accounts,
		s.Incomes,
		s.Debts,
		s.Credits,
		s.Recurring,
		s.Bills,
		s.Banks,
		s.Wishlist,
		s.Documents,
	)
	return s
}
