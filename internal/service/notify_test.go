package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinKeeper/internal/model"
)

func TestNotifyEngine_DueSoonWithDedup(t *testing.T) {
	services, stores := newTestServices(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	services.Notify.now = func() time.Time { return now }

	due := now.AddDate(0, 0, 2)
	sub := &model.RecurringExpense{
		Name:    "Netflix",
		Amount:  decimal.NewFromFloat(17.99),
		Cycle:   model.CycleMonthly,
		DueDate: &due,
	}
	require.NoError(t, stores.Recurring.Create(ctx, nil, sub))

	emitted, err := services.Notify.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, emitted)

	list, err := stores.Notifications.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.NotifyBillDueSoon, list[0].Type)
	assert.Equal(t, sub.ID, list[0].EntityID)

	meta, err := model.DecodeMeta(list[0].Type, list[0].Metadata)
	require.NoError(t, err)
	due2, ok := meta.(model.BillDueMeta)
	require.True(t, ok)
	assert.Equal(t, "Netflix", due2.Name)
	assert.Equal(t, 2, due2.Days)

	// второй проход — дедуп по непрочитанному уведомлению
	emitted, err = services.Notify.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, emitted)

	// после прочтения уведомление перестаёт блокировать эмиссию
	require.NoError(t, stores.Notifications.MarkRead(ctx, 1, list[0].ID, true))
	emitted, err = services.Notify.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, emitted)
}

func TestNotifyEngine_OverduePicksOverdueType(t *testing.T) {
	services, stores := newTestServices(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	services.Notify.now = func() time.Time { return now }

	bill := &model.OneTimeBill{
		Name:    "Electricity",
		Amount:  decimal.NewFromInt(90),
		DueDate: now.AddDate(0, 0, -1),
	}
	require.NoError(t, stores.Bills.Create(ctx, nil, bill))

	emitted, err := services.Notify.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, emitted)

	list, err := stores.Notifications.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.NotifyBillOverdue, list[0].Type)
}

func TestNotifyEngine_SkipsPaidAndFarAndTrashed(t *testing.T) {
	services, stores := newTestServices(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	services.Notify.now = func() time.Time { return now }

	paid := &model.OneTimeBill{Name: "Paid", Amount: decimal.NewFromInt(5), DueDate: now.AddDate(0, 0, 1), Paid: true}
	require.NoError(t, stores.Bills.Create(ctx, nil, paid))

	far := &model.OneTimeBill{Name: "Far", Amount: decimal.NewFromInt(5), DueDate: now.AddDate(0, 0, 30)}
	require.NoError(t, stores.Bills.Create(ctx, nil, far))

	trashed := &model.OneTimeBill{Name: "Trashed", Amount: decimal.NewFromInt(5), DueDate: now.AddDate(0, 0, 1)}
	require.NoError(t, stores.Bills.Create(ctx, nil, trashed))
	require.NoError(t, stores.Bills.SoftDelete(ctx, nil, trashed.ID))

	emitted, err := services.Notify.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, emitted)
}

func TestNotifyEngine_RecurringCreatedOneShot(t *testing.T) {
	services, stores := newTestServices(t)
	ctx := context.Background()

	sub := &model.RecurringExpense{
		Name:   "Spotify",
		Amount: decimal.NewFromFloat(10.99),
		Cycle:  model.CycleMonthly,
	}
	// создание через сервис триггерит одноразовое уведомление
	require.NoError(t, services.Recurring.Create(ctx, nil, sub))

	list, err := stores.Notifications.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.NotifyRecurringCreated, list[0].Type)

	meta, err := model.DecodeMeta(list[0].Type, list[0].Metadata)
	require.NoError(t, err)
	created, ok := meta.(model.RecurringCreatedMeta)
	require.True(t, ok)
	assert.Equal(t, "Spotify", created.Name)
}
