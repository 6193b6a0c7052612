package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"FinKeeper/internal/finance"
	"FinKeeper/internal/model"
	"FinKeeper/internal/repo"
)

// NotifyEngine — движок уведомлений. Запускается по расписанию извне
// (тикер сервера или ручной запуск из CLI) и просматривает живые счета
// и регулярные расходы.
//
// Ключ дедупликации — (entityID, тип уведомления): пока по паре висит
// непрочитанное уведомление, повторная эмиссия не происходит. Это
// защищает от шторма перепосылок на каждом запуске.
type NotifyEngine struct {
	stores     *repo.Stores
	logger     *zap.SugaredLogger
	windowDays int
	ownerID    int64

	// now подменяется в тестах
	now func() time.Time
}

// NewNotifyEngine создаёт движок уведомлений.
func NewNotifyEngine(stores *repo.Stores, logger *zap.SugaredLogger, windowDays int, ownerID int64) *NotifyEngine {
	if windowDays <= 0 {
		windowDays = finance.DefaultUpcomingWindowDays
	}
	if ownerID == 0 {
		ownerID = 1
	}
	return &NotifyEngine{
		stores:     stores,
		logger:     logger,
		windowDays: windowDays,
		ownerID:    ownerID,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Run — один проход движка. Возвращает число эмитированных уведомлений.
func (e *NotifyEngine) Run(ctx context.Context) (int, error) {
	now := e.now()
	emitted := 0

	recurring, err := e.stores.Recurring.List(ctx)
	if err != nil {
		return emitted, fmt.Errorf("notify: list recurring: %w", err)
	}
	for i := range recurring {
		r := &recurring[i]
		if r.DueDate == nil {
			continue
		}
		n, err := e.maybeEmitDue(ctx, now, r.ID, model.EntityRecurring, r.Name, r.Amount, *r.DueDate)
		if err != nil {
			return emitted, err
		}
		emitted += n
	}

	bills, err := e.stores.Bills.List(ctx)
	if err != nil {
		return emitted, fmt.Errorf("notify: list bills: %w", err)
	}
	for i := range bills {
		b := &bills[i]
		if b.Paid {
			continue
		}
		n, err := e.maybeEmitDue(ctx, now, b.ID, model.EntityOneTimeBill, b.Name, b.Amount, b.DueDate)
		if err != nil {
			return emitted, err
		}
		emitted += n
	}

	if emitted > 0 {
		e.logger.Infow("notify: run finished", "emitted", emitted)
	}
	return emitted, nil
}

// maybeEmitDue выбирает состояние (просрочено / скоро) и эмитит не более
// одного уведомления, если непрочитанного с тем же ключом ещё нет.
func (e *NotifyEngine) maybeEmitDue(ctx context.Context, now time.Time, entityID string, entityType model.EntityType, name string, amount decimal.Decimal, due time.Time) (int, error) {
	var ntype model.NotificationType
	switch {
	case finance.IsOverdue(now, due):
		ntype = model.NotifyBillOverdue
	case finance.InWindow(now, due, e.windowDays):
		ntype = model.NotifyBillDueSoon
	default:
		return 0, nil
	}

	exists, err := e.stores.Notifications.UnreadExists(ctx, entityID, ntype)
	if err != nil {
		return 0, fmt.Errorf("notify: dedup check %s: %w", entityID, err)
	}
	if exists {
		return 0, nil
	}

	meta := model.BillDueMeta{
		Kind:       ntype,
		EntityID:   entityID,
		EntityType: entityType,
		Name:       name,
		Amount:     amount,
		DueDate:    due,
		Days:       finance.DaysUntilDue(now, due),
	}

	raw, err := model.EncodeMeta(meta)
	if err != nil {
		return 0, err
	}
	err = e.stores.Notifications.Create(ctx, &model.Notification{
		Type:     ntype,
		UserID:   e.ownerID,
		EntityID: entityID,
		Metadata: raw,
	})
	if err != nil {
		return 0, fmt.Errorf("notify: create %s for %s: %w", ntype, entityID, err)
	}
	return 1, nil
}

// EmitRecurringCreated — одноразовое уведомление о новой подписке.
// Дедупликация не нужна: вызов происходит строго один раз при создании.
func (e *NotifyEngine) EmitRecurringCreated(ctx context.Context, r *model.RecurringExpense) error {
	raw, err := model.EncodeMeta(model.RecurringCreatedMeta{
		EntityID: r.ID,
		Name:     r.Name,
		Amount:   r.Amount,
		Cycle:    r.Cycle,
	})
	if err != nil {
		return err
	}
	return e.stores.Notifications.Create(ctx, &model.Notification{
		Type:     model.NotifyRecurringCreated,
		UserID:   e.ownerID,
		EntityID: r.ID,
		Metadata: raw,
	})
}
