package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Email — почтовый ящик, к которому привязываются аккаунты сервисов.
type Email struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Address  string `gorm:"uniqueIndex;not null" json:"address"`
	Provider string `json:"provider"`
	Note     string `json:"note"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (e *Email) GetID() string        { return e.ID }
func (e *Email) Kind() EntityType     { return EntityEmail }
func (e *Email) DisplayName() string  { return e.Address }
func (e *Email) TrashedAt() time.Time { return trashedAt(e.DeletedAt) }

// Account — подписка/аккаунт стороннего сервиса.
// EmailID — невладеющая ссылка: удаление Email её не каскадирует.
type Account struct {
	ID           string          `gorm:"primaryKey;type:uuid" json:"id"`
	Service      string          `gorm:"not null" json:"service"`
	EmailID      *string         `gorm:"type:uuid" json:"email_id,omitempty"`
	Plan         string          `json:"plan"`
	TrialType    TrialType       `gorm:"not null;default:none" json:"trial_type"`
	TrialEndDate *time.Time      `json:"trial_end_date,omitempty"`
	MonthlyCost  decimal.Decimal `gorm:"type:decimal(14,2)" json:"monthly_cost"`
	Cycle        BillingCycle    `gorm:"not null;default:monthly" json:"cycle"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (a *Account) GetID() string        { return a.ID }
func (a *Account) Kind() EntityType     { return EntityAccount }
func (a *Account) DisplayName() string  { return a.Service }
func (a *Account) TrashedAt() time.Time { return trashedAt(a.DeletedAt) }

// WishlistItem — позиция вишлиста.
type WishlistItem struct {
	ID         string          `gorm:"primaryKey;type:uuid" json:"id"`
	Name       string          `gorm:"not null" json:"name"`
	Price      decimal.Decimal `gorm:"type:decimal(14,2)" json:"price"`
	WhereToBuy string          `json:"where_to_buy"`
	NeedRate   NeedRate        `gorm:"not null;default:can_wait" json:"need_rate"`
	Reason     string          `json:"reason"`
	Links      StringList      `gorm:"type:text" json:"links,omitempty"`
	ImageURL   string          `json:"image_url"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (w *WishlistItem) GetID() string        { return w.ID }
func (w *WishlistItem) Kind() EntityType     { return EntityWishlist }
func (w *WishlistItem) DisplayName() string  { return w.Name }
func (w *WishlistItem) TrashedAt() time.Time { return trashedAt(w.DeletedAt) }

// Document — метаданные загруженного документа.
// Содержимое файла хранится вне БД; здесь только учётная запись о нём.
type Document struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      int64  `gorm:"not null;index" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	MimeType    string `json:"mime_type"`
	Size        int64  `json:"size"`
	StoragePath string `json:"storage_path"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (d *Document) GetID() string        { return d.ID }
func (d *Document) Kind() EntityType     { return EntityDocument }
func (d *Document) DisplayName() string  { return d.Name }
func (d *Document) TrashedAt() time.Time { return trashedAt(d.DeletedAt) }
