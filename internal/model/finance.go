package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income — источник дохода.
type Income struct {
	ID     string          `gorm:"primaryKey;type:uuid" json:"id"`
	Source string          `gorm:"not null" json:"source"`
	Amount decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Cycle  BillingCycle    `gorm:"not null" json:"cycle"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (i *Income) GetID() string        { return i.ID }
func (i *Income) Kind() EntityType     { return EntityIncome }
func (i *Income) DisplayName() string  { return i.Source }
func (i *Income) TrashedAt() time.Time { return trashedAt(i.DeletedAt) }

// Debt — долг с процентной ставкой и минимальным платежом.
// Ставка хранится как процентное значение (19.5 означает 19.5%).
type Debt struct {
	ID           string          `gorm:"primaryKey;type:uuid" json:"id"`
	Creditor     string          `gorm:"not null" json:"creditor"`
	Amount       decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	InterestRate decimal.Decimal `gorm:"type:decimal(6,2)" json:"interest_rate"`
	MinPayment   decimal.Decimal `gorm:"type:decimal(14,2)" json:"min_payment"`
	Cycle        BillingCycle    `gorm:"not null" json:"cycle"`
	DueDay       int             `json:"due_day"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (d *Debt) GetID() string        { return d.ID }
func (d *Debt) Kind() EntityType     { return EntityDebt }
func (d *Debt) DisplayName() string  { return d.Creditor }
func (d *Debt) TrashedAt() time.Time { return trashedAt(d.DeletedAt) }

// Credit — кредитная линия/карта.
type Credit struct {
	ID           string          `gorm:"primaryKey;type:uuid" json:"id"`
	Issuer       string          `gorm:"not null" json:"issuer"`
	Limit        decimal.Decimal `gorm:"column:credit_limit;type:decimal(14,2)" json:"limit"`
	Balance      decimal.Decimal `gorm:"type:decimal(14,2)" json:"balance"`
	InterestRate decimal.Decimal `gorm:"type:decimal(6,2)" json:"interest_rate"`
	DueDate      *time.Time      `json:"due_date,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (c *Credit) GetID() string        { return c.ID }
func (c *Credit) Kind() EntityType     { return EntityCredit }
func (c *Credit) DisplayName() string  { return c.Issuer }
func (c *Credit) TrashedAt() time.Time { return trashedAt(c.DeletedAt) }

// RecurringExpense — регулярный платёж (подписка, аренда и т.п.).
// Ссылки на банк/кредит/долг невладеющие: при удалении адресата они
// остаются висеть, презентация обязана переживать это ("—").
type RecurringExpense struct {
	ID      string          `gorm:"primaryKey;type:uuid" json:"id"`
	Name    string          `gorm:"not null" json:"name"`
	Amount  decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Cycle   BillingCycle    `gorm:"not null" json:"cycle"`
	DueDate *time.Time      `json:"due_date,omitempty"`

	BankID   *string `gorm:"type:uuid" json:"bank_id,omitempty"`
	CreditID *string `gorm:"type:uuid" json:"credit_id,omitempty"`
	DebtID   *string `gorm:"type:uuid" json:"debt_id,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (r *RecurringExpense) GetID() string        { return r.ID }
func (r *RecurringExpense) Kind() EntityType     { return EntityRecurring }
func (r *RecurringExpense) DisplayName() string  { return r.Name }
func (r *RecurringExpense) TrashedAt() time.Time { return trashedAt(r.DeletedAt) }

// OneTimeBill — разовый счёт к оплате.
type OneTimeBill struct {
	ID      string          `gorm:"primaryKey;type:uuid" json:"id"`
	Name    string          `gorm:"not null" json:"name"`
	Amount  decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	DueDate time.Time       `gorm:"not null" json:"due_date"`
	Paid    bool            `gorm:"not null;default:false" json:"paid"`

	BankID *string `gorm:"type:uuid" json:"bank_id,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (b *OneTimeBill) GetID() string        { return b.ID }
func (b *OneTimeBill) Kind() EntityType     { return EntityOneTimeBill }
func (b *OneTimeBill) DisplayName() string  { return b.Name }
func (b *OneTimeBill) TrashedAt() time.Time { return trashedAt(b.DeletedAt) }

// Bank — банковский счёт. Баланс может быть отрицательным (овердрафт).
type Bank struct {
	ID       string          `gorm:"primaryKey;type:uuid" json:"id"`
	Name     string          `gorm:"not null" json:"name"`
	Balance  decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"balance"`
	Currency string          `gorm:"size:3;not null;default:EUR" json:"currency"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (b *Bank) GetID() string        { return b.ID }
func (b *Bank) Kind() EntityType     { return EntityBank }
func (b *Bank) DisplayName() string  { return b.Name }
func (b *Bank) TrashedAt() time.Time { return trashedAt(b.DeletedAt) }
