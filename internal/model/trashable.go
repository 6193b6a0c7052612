package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Trashable реализуют все сущности с мягким удалением.
// Интерфейс нужен корзине: по нему строится нормализованный список.
type Trashable interface {
	GetID() string
	Kind() EntityType
	DisplayName() string
	TrashedAt() time.Time
}

// trashedAt возвращает время мягкого удаления (нулевое для живой записи).
func trashedAt(d gorm.DeletedAt) time.Time {
	if d.Valid {
		return d.Time
	}
	return time.Time{}
}

// StringList — список строк, сериализуемый в JSON-колонку.
type StringList []string

// Value реализует driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan реализует sql.Scanner.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("string list: unsupported column type")
}
