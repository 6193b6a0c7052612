package finance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"FinKeeper/internal/model"
)

// UpcomingBill — элемент объединённого списка ближайших платежей.
// Origin помечает, откуда пришла запись: регулярный расход или разовый счёт.
type UpcomingBill struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Origin    model.EntityType `json:"origin"`
	Amount    decimal.Decimal  `json:"amount"`
	DueDate   time.Time        `json:"due_date"`
	DaysUntil int              `json:"days_until"`
}

// TrialAlert — аккаунт, чей пробный период заканчивается в ближайшее окно.
type TrialAlert struct {
	ID        string          `json:"id"`
	Service   string          `json:"service"`
	TrialType model.TrialType `json:"trial_type"`
	EndDate   time.Time       `json:"end_date"`
	DaysLeft  int             `json:"days_left"`
}

// Summary — сводка дашборда. Все суммы — месячные эквиваленты,
// кроме баланса банков (он суммируется как есть и может быть отрицательным).
type Summary struct {
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	Net              decimal.Decimal `json:"net"`
	TotalBankBalance decimal.Decimal `json:"total_bank_balance"`
	Upcoming         []UpcomingBill  `json:"upcoming"`
	ExpiringTrials   []TrialAlert    `json:"expiring_trials,omitempty"`
}

// ExpiringTrials отбирает аккаунты с заканчивающимся пробным периодом,
// ближайшие первыми.
func ExpiringTrials(now time.Time, accounts []model.Account, windowDays int) []TrialAlert {
	if windowDays <= 0 {
		windowDays = DefaultTrialWindowDays
	}
	var out []TrialAlert
	for _, a := range accounts {
		if !IsTrialExpiring(now, a.TrialType, a.TrialEndDate, windowDays) {
			continue
		}
		out = append(out, TrialAlert{
			ID:        a.ID,
			Service:   a.Service,
			TrialType: a.TrialType,
			EndDate:   *a.TrialEndDate,
			DaysLeft:  DaysUntilDue(now, *a.TrialEndDate),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DaysLeft != out[j].DaysLeft {
			return out[i].DaysLeft < out[j].DaysLeft
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// BuildSummary собирает сводку из живых коллекций.
// Расходная часть — регулярные расходы плюс долги; ближайшие платежи —
// объединение регулярных расходов и неоплаченных разовых счетов в окне,
// отсортированное по сроку (при равенстве — по id для стабильности).
func BuildSummary(
	now time.Time,
	incomes []model.Income,
	recurring []model.RecurringExpense,
	debts []model.Debt,
	bills []model.OneTimeBill,
	banks []model.Bank,
	windowDays int,
) Summary {
	if windowDays <= 0 {
		windowDays = DefaultUpcomingWindowDays
	}

	totalIncome := TotalMonthly(incomes, func(i model.Income) (decimal.Decimal, model.BillingCycle) {
		return i.Amount, i.Cycle
	})
	totalExpenses := TotalMonthly(recurring, func(r model.RecurringExpense) (decimal.Decimal, model.BillingCycle) {
		return r.Amount, r.Cycle
	})
	totalExpenses = totalExpenses.Add(TotalMonthly(debts, func(d model.Debt) (decimal.Decimal, model.BillingCycle) {
		return d.Amount, d.Cycle
	}))

	totalBank := decimal.Zero
	for _, b := range banks {
		totalBank = totalBank.Add(b.Balance)
	}

	var upcoming []UpcomingBill
	for _, r := range recurring {
		if r.DueDate == nil || !InWindow(now, *r.DueDate, windowDays) {
			continue
		}
		upcoming = append(upcoming, UpcomingBill{
			ID:        r.ID,
			Name:      r.Name,
			Origin:    model.EntityRecurring,
			Amount:    r.Amount,
			DueDate:   *r.DueDate,
			DaysUntil: DaysUntilDue(now, *r.DueDate),
		})
	}
	for _, b := range bills {
		if b.Paid || !InWindow(now, b.DueDate, windowDays) {
			continue
		}
		upcoming = append(upcoming, UpcomingBill{
			ID:        b.ID,
			Name:      b.Name,
			Origin:    model.EntityOneTimeBill,
			Amount:    b.Amount,
			DueDate:   b.DueDate,
			DaysUntil: DaysUntilDue(now, b.DueDate),
		})
	}
	sort.Slice(upcoming, func(i, j int) bool {
		if !upcoming[i].DueDate.Equal(upcoming[j].DueDate) {
			return upcoming[i].DueDate.Before(upcoming[j].DueDate)
		}
		return upcoming[i].ID < upcoming[j].ID
	})

	return Summary{
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		Net:              totalIncome.Sub(totalExpenses),
		TotalBankBalance: totalBank,
		Upcoming:         upcoming,
	}
}
