package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinKeeper/internal/model"
)

func TestBackup_ExportImportRoundTrip(t *testing.T) {
	src, srcStores := newTestServices(t)
	ctx := context.Background()

	bank := &model.Bank{Name: "N26", Balance: decimal.NewFromFloat(1500.25)}
	require.NoError(t, srcStores.Banks.Create(ctx, nil, bank))
	income := &model.Income{Source: "Salary", Amount: decimal.NewFromInt(3000), Cycle: model.CycleMonthly}
	require.NoError(t, srcStores.Incomes.Create(ctx, nil, income))

	snap, err := src.Backup.Export(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Version)
	assert.Equal(t, "finkeeper", snap.AppName)
	require.Len(t, snap.Data.Banks, 1)
	require.Len(t, snap.Data.Incomes, 1)

	// снапшот переживает JSON-сериализацию
	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	var decoded Snapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// восстановление в чистую базу
	dst, dstStores := newTestServices(t)
	_ = dst
	report, err := dst.Backup.Import(ctx, nil, &decoded)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 0, report.Updated)

	got, err := dstStores.Banks.Get(ctx, bank.ID)
	require.NoError(t, err)
	assert.Equal(t, "N26", got.Name)
	assert.True(t, got.Balance.Equal(decimal.NewFromFloat(1500.25)))

	// повторный импорт идемпотентен: ничего не создаётся и не меняется
	report, err = dst.Backup.Import(ctx, nil, &decoded)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Created)
	assert.Equal(t, 0, report.Updated)
	assert.Equal(t, 2, report.Skipped)
}

func TestBackup_ImportUpdatesChangedRows(t *testing.T) {
	services, stores := newTestServices(t)
	ctx := context.Background()

	bank := &model.Bank{Name: "Old name", Balance: decimal.NewFromInt(10)}
	require.NoError(t, stores.Banks.Create(ctx, nil, bank))

	snap, err := services.Backup.Export(ctx, false)
	require.NoError(t, err)

	// меняем запись после снапшота, импорт возвращает её в прежний вид
	upd := *bank
	upd.Name = "New name"
	require.NoError(t, stores.Banks.Update(ctx, nil, &upd))

	report, err := services.Backup.Import(ctx, nil, snap)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)

	got, err := stores.Banks.Get(ctx, bank.ID)
	require.NoError(t, err)
	assert.Equal(t, "Old name", got.Name)
}

func TestBackup_ImportSkipsTrashedTargets(t *testing.T) {
	services, stores := newTestServices(t)
	ctx := context.Background()

	bank := &model.Bank{Name: "Trashed", Balance: decimal.NewFromInt(10)}
	require.NoError(t, stores.Banks.Create(ctx, nil, bank))

	snap, err := services.Backup.Export(ctx, false)
	require.NoError(t, err)

	require.NoError(t, stores.Banks.SoftDelete(ctx, nil, bank.ID))

	// запись в корзине не воскрешается импортом
	report, err := services.Backup.Import(ctx, nil, snap)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Created)
	assert.Equal(t, 0, report.Updated)
}

func TestBackup_ImportRejectsUnknownVersion(t *testing.T) {
	services, _ := newTestServices(t)

	_, err := services.Backup.Import(context.Background(), nil, &Snapshot{Version: 99})
	assert.Error(t, err)
}
