package service

import (
	"context"
	"sync"

	"FinKeeper/internal/repo"
)

// PluginState — процессный кэш allow-list'а плагинов с явной инвалидацией.
// Кэш по пользователю заполняется при первом запросе; install/uninstall
// сбрасывают его явно. Никакого неявного глобального состояния.
type PluginState struct {
	mu    sync.RWMutex
	repo  repo.PluginRepository
	cache map[int64][]string
}

// NewPluginState создаёт пустое состояние плагинов.
func NewPluginState(r repo.PluginRepository) *PluginState {
	return &PluginState{repo: r, cache: map[int64][]string{}}
}

// Installed возвращает ключи включённых плагинов пользователя.
// Первый вызов для пользователя читает БД, дальнейшие идут из кэша
// до явной инвалидации.
func (s *PluginState) Installed(ctx context.Context, userID int64) ([]string, error) {
	s.mu.RLock()
	keys, ok := s.cache[userID]
	s.mu.RUnlock()
	if ok {
		return keys, nil
	}

	rows, err := s.repo.ListEnabled(ctx, userID)
	if err != nil {
		return nil, err
	}
	keys = make([]string, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, r.PluginKey)
	}

	s.mu.Lock()
	s.cache[userID] = keys
	s.mu.Unlock()
	return keys, nil
}

// Install включает плагин и инвалидирует кэш пользователя.
func (s *PluginState) Install(ctx context.Context, userID int64, key string) error {
	if err := s.repo.Install(ctx, userID, key); err != nil {
		return err
	}
	s.Invalidate(userID)
	return nil
}

// Uninstall выключает плагин и инвалидирует кэш пользователя.
func (s *PluginState) Uninstall(ctx context.Context, userID int64, key string) error {
	if err := s.repo.Uninstall(ctx, userID, key); err != nil {
		return err
	}
	s.Invalidate(userID)
	return nil
}

// Invalidate сбрасывает кэш одного пользователя.
func (s *PluginState) Invalidate(userID int64) {
	s.mu.Lock()
	delete(s.cache, userID)
	s.mu.Unlock()
}

// InvalidateAll сбрасывает весь кэш (например, после импорта бэкапа).
func (s *PluginState) InvalidateAll() {
	s.mu.Lock()
	s.cache = map[int64][]string{}
	s.mu.Unlock()
}
