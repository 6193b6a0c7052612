package repo

import (
	"context"

	"FinKeeper/internal/model"
)

// TrashOps — операции корзины, доступные для каждого типа сущности.
// EntityRepo реализует интерфейс для всех типов; реестр собирает их
// в таблицу диспетчеризации по тегу типа.
type TrashOps interface {
	Kind() model.EntityType
	Restore(ctx context.Context, actor *int64, id string) error
	PermanentDelete(ctx context.Context, actor *int64, id string) error
	ListTrashed(ctx context.Context) ([]model.Trashable, error)
	PurgeTrashed(ctx context.Context, actor *int64) (int, error)
}

// TrashRegistry — таблица диспетчеризации тег типа → операции корзины.
// Собирается один раз при старте; порядок обхода фиксирован.
type TrashRegistry struct {
	ops   map[model.EntityType]TrashOps
	order []model.EntityType
}

// NewTrashRegistry регистрирует операции в порядке перечисления.
func NewTrashRegistry(list ...TrashOps) *TrashRegistry {
	reg := &TrashRegistry{ops: make(map[model.EntityType]TrashOps, len(list))}
	for _, o := range list {
		reg.ops[o.Kind()] = o
		reg.order = append(reg.order, o.Kind())
	}
	return reg
}

// Ops возвращает операции для тега типа. Неизвестный тег — не паника:
// путь достижим из пользовательского интерфейса.
func (r *TrashRegistry) Ops(kind model.EntityType) (TrashOps, bool) {
	o, ok := r.ops[kind]
	return o, ok
}

// Kinds возвращает зарегистрированные теги в порядке регистрации.
func (r *TrashRegistry) Kinds() []model.EntityType {
	return r.order
}
