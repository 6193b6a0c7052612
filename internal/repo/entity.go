package repo

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"FinKeeper/internal/model"
)

// PTrashable связывает тип значения T с его указателем, реализующим
// model.Trashable. Позволяет одной обобщённой реализации обслуживать
// все сущности с мягким удалением.
type PTrashable[T any] interface {
	*T
	model.Trashable
}

// EntityRepo — обобщённый репозиторий сущности с мягким удалением.
// Каждая мутация выполняется в одной транзакции с записью аудита:
// либо фиксируются обе, либо ни одной.
type EntityRepo[T any, PT PTrashable[T]] struct {
	db   *gorm.DB
	kind model.EntityType
}

// NewEntityRepo создаёт репозиторий для конкретного типа сущности.
func NewEntityRepo[T any, PT PTrashable[T]](db *gorm.DB) *EntityRepo[T, PT] {
	var zero T
	return &EntityRepo[T, PT]{db: db, kind: PT(&zero).Kind()}
}

// Kind возвращает тег типа сущности.
func (r *EntityRepo[T, PT]) Kind() model.EntityType { return r.kind }

// Create сохраняет новую сущность и пишет аудит action=create.
// Пустой ID заполняется новым uuid.
func (r *EntityRepo[T, PT]) Create(ctx context.Context, actor *int64, e PT) error {
	ensureID(e)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		return writeAudit(tx, &model.AuditLog{
			EntityType: r.kind,
			EntityID:   e.GetID(),
			Action:     model.ActionCreate,
			ActorID:    actor,
		})
	})
}

// Update сохраняет изменённую сущность и пишет аудит action=update
// с диффом только реально изменившихся полей. Если изменений нет,
// ни мутация, ни аудит не выполняются.
func (r *EntityRepo[T, PT]) Update(ctx context.Context, actor *int64, e PT) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old T
		if err := tx.First(&old, "id = ?", e.GetID()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		changes := FieldDiff(PT(&old), e)
		if len(changes) == 0 {
			return nil
		}

		// created_at принадлежит исходной строке, а не входному объекту
		copyField(PT(&old), e, "CreatedAt")
		if err := tx.Save(e).Error; err != nil {
			return err
		}
		return writeAudit(tx, &model.AuditLog{
			EntityType: r.kind,
			EntityID:   e.GetID(),
			Action:     model.ActionUpdate,
			Changes:    changes,
			ActorID:    actor,
		})
	})
}

// SoftDelete помечает живую строку удалённой. Предусловие (строка жива)
// проверяется самим UPDATE: дефолтный scope GORM добавляет
// deleted_at IS NULL, ноль затронутых строк означает ErrNotFound.
func (r *EntityRepo[T, PT]) SoftDelete(ctx context.Context, actor *int64, id string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(PT(new(T))).Where("id = ?", id).Update("deleted_at", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return writeAudit(tx, &model.AuditLog{
			EntityType: r.kind,
			EntityID:   id,
			Action:     model.ActionDelete,
			Changes: model.FieldChanges{
				{Field: "deleted_at", Old: nil, New: now.Format(time.RFC3339)},
			},
			ActorID: actor,
		})
	})
}

// Restore возвращает удалённую строку к жизни. Restore живой строки —
// ошибка вызывающего, а не no-op: условие deleted_at IS NOT NULL
// отсечёт её, и вызов вернёт ErrNotFound.
func (r *EntityRepo[T, PT]) Restore(ctx context.Context, actor *int64, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().Model(PT(new(T))).
			Where("id = ? AND deleted_at IS NOT NULL", id).
			Update("deleted_at", nil)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return writeAudit(tx, &model.AuditLog{
			EntityType: r.kind,
			EntityID:   id,
			Action:     model.ActionRestore,
			ActorID:    actor,
		})
	})
}

// PermanentDelete физически удаляет строку. Разрешён только для уже
// удалённых строк: живая строка даёт ErrInvalidState. Дифф не пишется —
// строки больше нет.
func (r *EntityRepo[T, PT]) PermanentDelete(ctx context.Context, actor *int64, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur T
		if err := tx.Unscoped().First(&cur, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if PT(&cur).TrashedAt().IsZero() {
			return ErrInvalidState
		}
		if err := tx.Unscoped().Delete(PT(&cur)).Error; err != nil {
			return err
		}
		return writeAudit(tx, &model.AuditLog{
			EntityType: r.kind,
			EntityID:   id,
			Action:     model.ActionPermanentDelete,
			ActorID:    actor,
		})
	})
}

// PurgeTrashed окончательно удаляет все строки типа из корзины,
// по одной записи аудита на строку. Возвращает число удалённых.
func (r *EntityRepo[T, PT]) PurgeTrashed(ctx context.Context, actor *int64) (int, error) {
	purged := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trashed []T
		if err := tx.Unscoped().Where("deleted_at IS NOT NULL").Find(&trashed).Error; err != nil {
			return err
		}
		for i := range trashed {
			e := PT(&trashed[i])
			if err := tx.Unscoped().Delete(e).Error; err != nil {
				return err
			}
			if err := writeAudit(tx, &model.AuditLog{
				EntityType: r.kind,
				EntityID:   e.GetID(),
				Action:     model.ActionPermanentDelete,
				ActorID:    actor,
			}); err != nil {
				return err
			}
			purged++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return purged, nil
}

// Get возвращает живую строку по id.
func (r *EntityRepo[T, PT]) Get(ctx context.Context, id string) (PT, error) {
	var e T
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return PT(&e), nil
}

// List возвращает все живые строки, старые первыми.
func (r *EntityRepo[T, PT]) List(ctx context.Context) ([]T, error) {
	var out []T
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&out).Error
	return out, err
}

// ListAll возвращает строки типа; с includeTrashed — вместе с корзиной.
func (r *EntityRepo[T, PT]) ListAll(ctx context.Context, includeTrashed bool) ([]T, error) {
	q := r.db.WithContext(ctx)
	if includeTrashed {
		q = q.Unscoped()
	}
	var out []T
	err := q.Order("created_at ASC").Find(&out).Error
	return out, err
}

// GetAny возвращает строку по id независимо от состояния корзины.
func (r *EntityRepo[T, PT]) GetAny(ctx context.Context, id string) (PT, error) {
	var e T
	if err := r.db.WithContext(ctx).Unscoped().First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return PT(&e), nil
}

// ListTrashed возвращает удалённые строки типа как model.Trashable.
func (r *EntityRepo[T, PT]) ListTrashed(ctx context.Context) ([]model.Trashable, error) {
	var rows []T
	err := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		Order("deleted_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]model.Trashable, 0, len(rows))
	for i := range rows {
		out = append(out, PT(&rows[i]))
	}
	return out, nil
}

// ensureID назначает новый uuid, если ID сущности пуст.
func ensureID(e any) {
	v := reflect.ValueOf(e).Elem().FieldByName("ID")
	if v.IsValid() && v.Kind() == reflect.String && v.String() == "" {
		v.SetString(uuid.NewString())
	}
}

// copyField переносит значение поля из src в dst (оба — указатели на структуры).
func copyField(src, dst any, field string) {
	sv := reflect.ValueOf(src).Elem().FieldByName(field)
	dv := reflect.ValueOf(dst).Elem().FieldByName(field)
	if sv.IsValid() && dv.IsValid() && dv.CanSet() {
		dv.Set(sv)
	}
}
