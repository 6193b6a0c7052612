package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"FinKeeper/internal/model"
)

// NotificationRepository — хранилище уведомлений. Уведомления не участвуют
// в мягком удалении: удаление здесь окончательное.
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	ListByUser(ctx context.Context, userID int64) ([]model.Notification, error)

	// UnreadExists сообщает, есть ли непрочитанное уведомление с ключом
	// дедупликации (entityID, type). Движок уведомлений вызывает его
	// перед каждой эмиссией.
	UnreadExists(ctx context.Context, entityID string, t model.NotificationType) (bool, error)

	// MarkRead и Delete работают только с уведомлениями своего
	// пользователя: чужой id неотличим от несуществующего.
	MarkRead(ctx context.Context, userID int64, id string, read bool) error
	Delete(ctx context.Context, userID int64, id string) error
}

type notificationRepo struct {
	db *gorm.DB
}

// NewNotificationRepository создаёт репозиторий уведомлений.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *model.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepo) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	var out []model.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *notificationRepo) UnreadExists(ctx context.Context, entityID string, t model.NotificationType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("entity_id = ? AND type = ? AND is_read = ?", entityID, t, false).
		Count(&count).Error
	return count > 0, err
}

func (r *notificationRepo) MarkRead(ctx context.Context, userID int64, id string, read bool) error {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", read)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *notificationRepo) Delete(ctx context.Context, userID int64, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Notification{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
