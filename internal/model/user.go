package model

import "time"

// User — учётная запись приложения. Пароль хранится как bcrypt-хеш.
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Login    string `gorm:"uniqueIndex;not null" json:"login"`
	Password string `gorm:"not null" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// PluginInstall — строка allow-list'а опциональных модулей интерфейса.
// Модуль показывается пользователю, только если для пары (user, plugin)
// есть строка с Enabled=true.
type PluginInstall struct {
	ID        string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    int64  `gorm:"not null;uniqueIndex:idx_plugin_user_key" json:"user_id"`
	PluginKey string `gorm:"not null;uniqueIndex:idx_plugin_user_key" json:"plugin_key"`
	Enabled   bool   `gorm:"not null;default:true" json:"enabled"`

	InstalledAt time.Time `gorm:"autoCreateTime" json:"installed_at"`
}
