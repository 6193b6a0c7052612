package model

// EntityType — строковый тег типа сущности для аудита и корзины.
type EntityType string

const (
	EntityEmail       EntityType = "email"
	EntityAccount     EntityType = "account"
	EntityIncome      EntityType = "income"
	EntityDebt        EntityType = "debt"
	EntityCredit      EntityType = "credit"
	EntityRecurring   EntityType = "recurring_expense"
	EntityOneTimeBill EntityType = "one_time_bill"
	EntityBank        EntityType = "bank"
	EntityWishlist    EntityType = "wishlist_item"
	EntityDocument    EntityType = "document"
)

// TrashableTypes — полный список типов, участвующих в мягком удалении.
// Порядок фиксирован: его используют обход корзины и emptyTrash.
var TrashableTypes = []EntityType{
	EntityEmail,
	EntityAccount,
	EntityIncome,
	EntityDebt,
	EntityCredit,
	EntityRecurring,
	EntityOneTimeBill,
	EntityBank,
	EntityWishlist,
	EntityDocument,
}

// AuditAction — действие, записываемое в журнал аудита.
type AuditAction string

const (
	ActionCreate          AuditAction = "create"
	ActionUpdate          AuditAction = "update"
	ActionDelete          AuditAction = "delete"
	ActionRestore         AuditAction = "restore"
	ActionPermanentDelete AuditAction = "permanent_delete"
)

// BillingCycle — периодичность списания/начисления.
type BillingCycle string

const (
	CycleWeekly  BillingCycle = "weekly"
	CycleMonthly BillingCycle = "monthly"
	CycleYearly  BillingCycle = "yearly"
	CycleOneTime BillingCycle = "one_time"
)

// ValidCycle проверяет, что значение периодичности известно.
func ValidCycle(c BillingCycle) bool {
	switch c {
	case CycleWeekly, CycleMonthly, CycleYearly, CycleOneTime:
		return true
	}
	return false
}

// TrialType — тип пробного периода привязанного аккаунта.
type TrialType string

const (
	TrialNone  TrialType = "none"
	TrialFree  TrialType = "free_trial"
	TrialPromo TrialType = "promo"
)

// NeedRate — субъективная важность позиции вишлиста.
type NeedRate string

const (
	NeedRateNeed    NeedRate = "need"
	NeedRateCanWait NeedRate = "can_wait"
	NeedRateLuxury  NeedRate = "luxury"
)

// NotificationType — тип уведомления.
type NotificationType string

const (
	NotifyBillDueSoon      NotificationType = "bill_due_soon"
	NotifyBillOverdue      NotificationType = "bill_overdue"
	NotifyRecurringCreated NotificationType = "recurring_created"
)
