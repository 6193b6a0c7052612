package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"FinKeeper/internal/model"
)

// PluginRepository — allow-list установленных плагинов по пользователям.
type PluginRepository interface {
	ListEnabled(ctx context.Context, userID int64) ([]model.PluginInstall, error)
	Install(ctx context.Context, userID int64, key string) error
	Uninstall(ctx context.Context, userID int64, key string) error
}

type pluginRepo struct {
	db *gorm.DB
}

// NewPluginRepository создаёт репозиторий плагинов.
func NewPluginRepository(db *gorm.DB) PluginRepository {
	return &pluginRepo{db: db}
}

func (r *pluginRepo) ListEnabled(ctx context.Context, userID int64) ([]model.PluginInstall, error) {
	var out []model.PluginInstall
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND enabled = ?", userID, true).
		Order("plugin_key ASC").
		Find(&out).Error
	return out, err
}

// Install возводит строку установки; повторная установка включает её заново.
func (r *pluginRepo) Install(ctx context.Context, userID int64, key string) error {
	row := &model.PluginInstall{
		ID:        uuid.NewString(),
		UserID:    userID,
		PluginKey: key,
		Enabled:   true,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "plugin_key"}},
		DoUpdates: clause.Assignments(map[string]any{"enabled": true}),
	}).Create(row).Error
}

func (r *pluginRepo) Uninstall(ctx context.Context, userID int64, key string) error {
	res := r.db.WithContext(ctx).Model(&model.PluginInstall{}).
		Where("user_id = ? AND plugin_key = ?", userID, key).
		Update("enabled", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
