package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"FinKeeper/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestMonthlyEquivalent(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		cycle  model.BillingCycle
		want   string
	}{
		{"monthly passes through", "50", model.CycleMonthly, "50"},
		{"yearly divided by 12", "120", model.CycleYearly, "10"},
		{"weekly times four", "25", model.CycleWeekly, "100"},
		{"one_time passes through", "30", model.CycleOneTime, "30"},
		{"yearly with remainder keeps precision", "100", model.CycleYearly, "8.3333333333333333"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyEquivalent(dec(tt.amount), tt.cycle)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestYearlyEquivalent(t *testing.T) {
	assert.True(t, YearlyEquivalent(dec("10"), model.CycleMonthly).Equal(dec("120")))
	assert.True(t, YearlyEquivalent(dec("10"), model.CycleWeekly).Equal(dec("520")))
	assert.True(t, YearlyEquivalent(dec("10"), model.CycleYearly).Equal(dec("10")))
}

// Суммирование дробных центов не накапливает бинарную погрешность.
func TestTotalMonthly_Precision(t *testing.T) {
	var incomes []model.Income
	for i := 0; i < 1000; i++ {
		incomes = append(incomes, model.Income{Amount: dec("0.10"), Cycle: model.CycleMonthly})
	}
	total := TotalMonthly(incomes, func(i model.Income) (decimal.Decimal, model.BillingCycle) {
		return i.Amount, i.Cycle
	})
	assert.True(t, total.Equal(dec("100")), "got %s", total)
}

func TestDaysUntilDue(t *testing.T) {
	// полдень: считаются календарные дни, не интервалы в 24 часа
	now := time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"today morning is zero", time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC), 0},
		{"today evening is zero", time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC), 0},
		{"tomorrow", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), 1},
		{"yesterday", time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC), -1},
		{"next week", time.Date(2026, 3, 17, 6, 0, 0, 0, time.UTC), 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntilDue(now, tt.due))
		})
	}
}

func TestOverdueAndWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.False(t, IsOverdue(now, now), "сегодняшний срок ещё не просрочен")
	assert.True(t, IsOverdue(now, now.AddDate(0, 0, -1)))

	assert.True(t, InWindow(now, now, 7))
	assert.True(t, InWindow(now, now.AddDate(0, 0, 7), 7))
	assert.False(t, InWindow(now, now.AddDate(0, 0, 8), 7))
	assert.False(t, InWindow(now, now.AddDate(0, 0, -1), 7), "просроченное не входит в окно")
}

func TestIsTrialExpiring(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	soon := now.AddDate(0, 0, 2)
	far := now.AddDate(0, 0, 10)

	assert.True(t, IsTrialExpiring(now, model.TrialFree, &soon, 3))
	assert.False(t, IsTrialExpiring(now, model.TrialFree, &far, 3))
	assert.False(t, IsTrialExpiring(now, model.TrialNone, &soon, 3))
	assert.False(t, IsTrialExpiring(now, model.TrialFree, nil, 3))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "19.50%", FormatPercent(dec("19.5"), 2))
	assert.Equal(t, "0.00%", FormatPercent(decimal.Zero, 2))
}
