package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"FinKeeper/internal/model"
)

// AuditRepository — чтение журнала аудита. Запись в журнал идёт только
// через writeAudit внутри транзакций мутирующих операций.
type AuditRepository interface {
	// ListByEntity возвращает историю изменений конкретной сущности,
	// свежие записи первыми.
	ListByEntity(ctx context.Context, entityType model.EntityType, entityID string, limit int) ([]model.AuditLog, error)

	// ListRecent возвращает последние записи журнала по всем сущностям.
	ListRecent(ctx context.Context, limit int) ([]model.AuditLog, error)
}

type auditRepo struct {
	db *gorm.DB
}

// NewAuditRepository создаёт репозиторий журнала аудита.
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepo{db: db}
}

func (r *auditRepo) ListByEntity(ctx context.Context, entityType model.EntityType, entityID string, limit int) ([]model.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []model.AuditLog
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("occurred_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *auditRepo) ListRecent(ctx context.Context, limit int) ([]model.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []model.AuditLog
	err := r.db.WithContext(ctx).
		Order("occurred_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// writeAudit дописывает строку журнала в рамках переданной транзакции.
// Ошибка записи аудита откатывает всю транзакцию вместе с мутацией:
// мутация без аудита невозможна.
func writeAudit(tx *gorm.DB, entry *model.AuditLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}
	if err := tx.Create(entry).Error; err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}
