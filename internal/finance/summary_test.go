package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinKeeper/internal/model"
)

func TestBuildSummary_Totals(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	incomes := []model.Income{
		{ID: "i1", Source: "Salary", Amount: dec("3000"), Cycle: model.CycleMonthly},
		{ID: "i2", Source: "Side gig", Amount: dec("1200"), Cycle: model.CycleYearly}, // 100/мес
	}
	recurring := []model.RecurringExpense{
		{ID: "r1", Name: "Rent", Amount: dec("900"), Cycle: model.CycleMonthly},
		{ID: "r2", Name: "Groceries", Amount: dec("50"), Cycle: model.CycleWeekly}, // 200/мес
	}
	debts := []model.Debt{
		{ID: "d1", Creditor: "Bank loan", Amount: dec("150"), Cycle: model.CycleMonthly},
	}
	banks := []model.Bank{
		{ID: "b1", Name: "Main", Balance: dec("2500.40")},
		{ID: "b2", Name: "Overdraft", Balance: dec("-300.40")},
	}

	s := BuildSummary(now, incomes, recurring, debts, nil, banks, 7)

	assert.True(t, s.TotalIncome.Equal(dec("3100")), "got %s", s.TotalIncome)
	assert.True(t, s.TotalExpenses.Equal(dec("1250")), "got %s", s.TotalExpenses)
	assert.True(t, s.Net.Equal(dec("1850")), "got %s", s.Net)
	assert.True(t, s.TotalBankBalance.Equal(dec("2200")), "got %s", s.TotalBankBalance)
	assert.Empty(t, s.Upcoming)
}

func TestBuildSummary_UpcomingMergedAndSorted(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	in2 := now.AddDate(0, 0, 2)
	in5 := now.AddDate(0, 0, 5)
	in9 := now.AddDate(0, 0, 9)

	recurring := []model.RecurringExpense{
		{ID: "r1", Name: "Netflix", Amount: dec("17.99"), Cycle: model.CycleMonthly, DueDate: &in5},
		{ID: "r2", Name: "No due date", Amount: dec("5"), Cycle: model.CycleMonthly},
		{ID: "r3", Name: "Too far", Amount: dec("9"), Cycle: model.CycleMonthly, DueDate: &in9},
	}
	bills := []model.OneTimeBill{
		{ID: "o1", Name: "Dentist", Amount: dec("120"), DueDate: in2},
		{ID: "o2", Name: "Paid already", Amount: dec("40"), DueDate: in2, Paid: true},
	}

	s := BuildSummary(now, nil, recurring, nil, bills, nil, 7)

	require.Len(t, s.Upcoming, 2)
	assert.Equal(t, "o1", s.Upcoming[0].ID)
	assert.Equal(t, model.EntityOneTimeBill, s.Upcoming[0].Origin)
	assert.Equal(t, 2, s.Upcoming[0].DaysUntil)
	assert.Equal(t, "r1", s.Upcoming[1].ID)
	assert.Equal(t, model.EntityRecurring, s.Upcoming[1].Origin)
	assert.Equal(t, 5, s.Upcoming[1].DaysUntil)
}

func TestBuildSummary_TieBrokenByID(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 1)

	bills := []model.OneTimeBill{
		{ID: "zz", Name: "Second", Amount: dec("1"), DueDate: due},
		{ID: "aa", Name: "First", Amount: dec("1"), DueDate: due},
	}

	s := BuildSummary(now, nil, nil, nil, bills, nil, 7)
	require.Len(t, s.Upcoming, 2)
	assert.Equal(t, "aa", s.Upcoming[0].ID)
	assert.Equal(t, "zz", s.Upcoming[1].ID)
}

func TestBuildSummary_EmptyCollections(t *testing.T) {
	s := BuildSummary(time.Now(), nil, nil, nil, nil, nil, 0)
	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpenses.IsZero())
	assert.True(t, s.Net.IsZero())
	assert.True(t, s.TotalBankBalance.IsZero())
	assert.Empty(t, s.Upcoming)
}
