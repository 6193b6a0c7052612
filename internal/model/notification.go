package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Notification — уведомление пользователя. Мягкого удаления нет:
// пользователь удаляет уведомления безвозвратно.
type Notification struct {
	ID       string           `gorm:"primaryKey;type:uuid" json:"id"`
	Type     NotificationType `gorm:"not null;index:idx_notifications_dedup" json:"type"`
	UserID   int64            `gorm:"not null;index" json:"user_id"`
	EntityID string           `gorm:"index:idx_notifications_dedup" json:"entity_id,omitempty"`
	Metadata json.RawMessage  `gorm:"type:text" json:"metadata,omitempty"`
	IsRead   bool             `gorm:"not null;default:false" json:"is_read"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// NotificationMeta — закрытое объединение типов метаданных уведомлений.
// В типизированном виде живёт внутри приложения, в JSON превращается
// только на границе хранилища.
type NotificationMeta interface {
	notificationMeta()
	Type() NotificationType
}

// BillDueMeta — метаданные уведомлений "скоро платить"/"просрочено".
type BillDueMeta struct {
	Kind       NotificationType `json:"kind"`
	EntityID   string           `json:"entity_id"`
	EntityType EntityType       `json:"entity_type"`
	Name       string           `json:"name"`
	Amount     decimal.Decimal  `json:"amount"`
	DueDate    time.Time        `json:"due_date"`
	Days       int              `json:"days"`
}

func (BillDueMeta) notificationMeta()        {}
func (m BillDueMeta) Type() NotificationType { return m.Kind }

// RecurringCreatedMeta — метаданные одноразового уведомления о новой подписке.
type RecurringCreatedMeta struct {
	EntityID string          `json:"entity_id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Cycle    BillingCycle    `json:"cycle"`
}

func (RecurringCreatedMeta) notificationMeta()      {}
func (RecurringCreatedMeta) Type() NotificationType { return NotifyRecurringCreated }

// EncodeMeta сериализует метаданные в JSON для колонки Metadata.
func EncodeMeta(m NotificationMeta) (json.RawMessage, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode notification meta: %w", err)
	}
	return b, nil
}

// DecodeMeta восстанавливает типизированные метаданные по типу уведомления.
func DecodeMeta(t NotificationType, raw json.RawMessage) (NotificationMeta, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	switch t {
	case NotifyBillDueSoon, NotifyBillOverdue:
		var m BillDueMeta
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode bill meta: %w", err)
		}
		m.Kind = t
		return m, nil
	case NotifyRecurringCreated:
		var m RecurringCreatedMeta
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode recurring meta: %w", err)
		}
		return m, nil
	}
	return nil, fmt.Errorf("decode meta: unknown notification type %q", t)
}
