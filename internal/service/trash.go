package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"FinKeeper/internal/model"
	"FinKeeper/internal/repo"
)

// DeletedBundle — содержимое корзины, сгруппированное по типу сущности.
type DeletedBundle map[model.EntityType][]model.Trashable

// NormalizedItem — плоское представление элемента корзины для презентации.
type NormalizedItem struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	EntityType model.EntityType `json:"entity_type"`
	DeletedAt  time.Time        `json:"deleted_at"`
	Details    string           `json:"details"`
}

// OpResult — мягкий результат операций, достижимых из UI по строковому тегу.
// Неизвестный тег — не исключение, а {success:false}.
type OpResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

const unknownEntityType = "Unknown entity type"

// TrashService — агрегатор корзины: один веерный запрос по всем типам,
// нормализация и диспетчеризация restore/delete по тегу типа.
type TrashService struct {
	registry *repo.TrashRegistry
	logger   *zap.SugaredLogger
	details  map[model.EntityType]func(model.Trashable) string
}

// NewTrashService создаёт сервис корзины.
func NewTrashService(registry *repo.TrashRegistry, logger *zap.SugaredLogger) *TrashService {
	return &TrashService{
		registry: registry,
		logger:   logger,
		details:  detailFormatters(),
	}
}

// DeletedItems выполняет веерное чтение всех типов с deleted_at != null.
func (s *TrashService) DeletedItems(ctx context.Context) (DeletedBundle, error) {
	bundle := DeletedBundle{}
	for _, kind := range s.registry.Kinds() {
		ops, _ := s.registry.Ops(kind)
		items, err := ops.ListTrashed(ctx)
		if err != nil {
			return nil, fmt.Errorf("list trashed %s: %w", kind, err)
		}
		if len(items) > 0 {
			bundle[kind] = items
		}
	}
	return bundle, nil
}

// Normalize сплющивает bundle в единый список: свежеудалённые первыми,
// при равном времени — по id, чтобы порядок был воспроизводим.
func (s *TrashService) Normalize(bundle DeletedBundle) []NormalizedItem {
	var out []NormalizedItem
	for kind, items := range bundle {
		format := s.details[kind]
		for _, it := range items {
			details := ""
			if format != nil {
				details = format(it)
			}
			out = append(out, NormalizedItem{
				ID:         it.GetID(),
				Name:       it.DisplayName(),
				EntityType: kind,
				DeletedAt:  it.TrashedAt(),
				Details:    details,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].DeletedAt.Equal(out[j].DeletedAt) {
			return out[i].DeletedAt.After(out[j].DeletedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// RestoreByType восстанавливает сущность по строковому тегу типа.
// Неизвестный тег — мягкий результат; ошибки известных типов идут наверх.
func (s *TrashService) RestoreByType(ctx context.Context, actor *int64, kind model.EntityType, id string) (OpResult, error) {
	ops, ok := s.registry.Ops(kind)
	if !ok {
		return OpResult{Success: false, Error: unknownEntityType}, nil
	}
	if err := ops.Restore(ctx, actor, id); err != nil {
		return OpResult{}, err
	}
	return OpResult{Success: true}, nil
}

// DeleteByType окончательно удаляет сущность по строковому тегу типа.
func (s *TrashService) DeleteByType(ctx context.Context, actor *int64, kind model.EntityType, id string) (OpResult, error) {
	ops, ok := s.registry.Ops(kind)
	if !ok {
		return OpResult{Success: false, Error: unknownEntityType}, nil
	}
	if err := ops.PermanentDelete(ctx, actor, id); err != nil {
		return OpResult{}, err
	}
	return OpResult{Success: true}, nil
}

// EmptyTrashReport — итог очистки корзины с пофтиповыми счётчиками.
// Сбой одного типа не прерывает обход остальных и не проглатывается.
type EmptyTrashReport struct {
	Deleted int                         `json:"deleted"`
	PerType map[model.EntityType]int    `json:"per_type,omitempty"`
	Errors  map[model.EntityType]string `json:"errors,omitempty"`
}

// EmptyTrash окончательно удаляет всё содержимое корзины. Типы обходятся
// последовательно; по записи аудита на каждую удалённую строку.
func (s *TrashService) EmptyTrash(ctx context.Context, actor *int64) EmptyTrashReport {
	report := EmptyTrashReport{PerType: map[model.EntityType]int{}}
	for _, kind := range s.registry.Kinds() {
		ops, _ := s.registry.Ops(kind)
		n, err := ops.PurgeTrashed(ctx, actor)
		if err != nil {
			if report.Errors == nil {
				report.Errors = map[model.EntityType]string{}
			}
			report.Errors[kind] = err.Error()
			s.logger.Errorw("empty trash: type failed", "entity_type", kind, "error", err)
			continue
		}
		if n > 0 {
			report.PerType[kind] = n
			report.Deleted += n
		}
	}
	return report
}

// detailFormatters — таблица коротких описаний для каждого типа.
// Намеренно не общий форматтер: каждому типу своя сводка.
func detailFormatters() map[model.EntityType]func(model.Trashable) string {
	return map[model.EntityType]func(model.Trashable) string{
		model.EntityEmail: func(t model.Trashable) string {
			e := t.(*model.Email)
			return e.Provider
		},
		model.EntityAccount: func(t model.Trashable) string {
			a := t.(*model.Account)
			return fmt.Sprintf("%s, %s/%s", a.Plan, a.MonthlyCost.StringFixed(2), a.Cycle)
		},
		model.EntityIncome: func(t model.Trashable) string {
			i := t.(*model.Income)
			return fmt.Sprintf("%s/%s", i.Amount.StringFixed(2), i.Cycle)
		},
		model.EntityDebt: func(t model.Trashable) string {
			d := t.(*model.Debt)
			return fmt.Sprintf("%s at %s%%", d.Amount.StringFixed(2), d.InterestRate.StringFixed(2))
		},
		model.EntityCredit: func(t model.Trashable) string {
			c := t.(*model.Credit)
			return fmt.Sprintf("balance %s of %s", c.Balance.StringFixed(2), c.Limit.StringFixed(2))
		},
		model.EntityRecurring: func(t model.Trashable) string {
			r := t.(*model.RecurringExpense)
			return fmt.Sprintf("%s/%s", r.Amount.StringFixed(2), r.Cycle)
		},
		model.EntityOneTimeBill: func(t model.Trashable) string {
			b := t.(*model.OneTimeBill)
			return fmt.Sprintf("%s due %s", b.Amount.StringFixed(2), b.DueDate.Format("2006-01-02"))
		},
		model.EntityBank: func(t model.Trashable) string {
			b := t.(*model.Bank)
			return fmt.Sprintf("balance %s %s", b.Balance.StringFixed(2), b.Currency)
		},
		model.EntityWishlist: func(t model.Trashable) string {
			w := t.(*model.WishlistItem)
			return fmt.Sprintf("%s, %s", w.Price.StringFixed(2), w.NeedRate)
		},
		model.EntityDocument: func(t model.Trashable) string {
			d := t.(*model.Document)
			return fmt.Sprintf("%s, %d bytes", d.MimeType, d.Size)
		},
	}
}
