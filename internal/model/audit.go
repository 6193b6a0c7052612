package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// FieldChange — один элемент диффа "до/после" для журнала аудита.
type FieldChange struct {
	Field string `json:"field"`
	Old   any    `json:"old"`
	New   any    `json:"new"`
}

// FieldChanges — упорядоченный список диффов, сериализуемый в JSON-колонку.
// Пустой список хранится как NULL.
type FieldChanges []FieldChange

// Value реализует driver.Valuer.
func (c FieldChanges) Value() (driver.Value, error) {
	if len(c) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan реализует sql.Scanner.
func (c *FieldChanges) Scan(src any) error {
	if src == nil {
		*c = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	}
	return errors.New("field changes: unsupported column type")
}

// AuditLog — запись журнала аудита. Журнал только дописывается:
// ни одна операция приложения не изменяет и не удаляет его строки.
type AuditLog struct {
	ID         string          `gorm:"primaryKey;type:uuid" json:"id"`
	EntityType EntityType      `gorm:"not null;index:idx_audit_entity" json:"entity_type"`
	EntityID   string          `gorm:"not null;index:idx_audit_entity" json:"entity_id"`
	Action     AuditAction     `gorm:"not null" json:"action"`
	Changes    FieldChanges    `gorm:"type:text" json:"changes,omitempty"`
	Metadata   json.RawMessage `gorm:"type:text" json:"metadata,omitempty"`
	ActorID    *int64          `json:"actor_id,omitempty"`
	OccurredAt time.Time       `gorm:"autoCreateTime;index" json:"occurred_at"`
}
