// Package finance — чистые функции пересчёта сумм и дат.
// Никаких обращений к хранилищу: на вход приходят уже загруженные
// коллекции, на выходе — производные значения для дашборда.
package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"FinKeeper/internal/model"
)

// DefaultUpcomingWindowDays — окно "скоро платить" по умолчанию.
const DefaultUpcomingWindowDays = 7

// DefaultTrialWindowDays — окно предупреждения об окончании пробного периода.
const DefaultTrialWindowDays = 3

var (
	monthsPerYear = decimal.NewFromInt(12)
	weeksPerYear  = decimal.NewFromInt(52)

	// Недельный цикл приводится к месяцу множителем 4, не 4.33.
	// Константа зафиксирована: накопленные суммы и тесты считают именно так.
	weeksPerMonth = decimal.NewFromInt(4)
)

// MonthlyEquivalent приводит сумму с периодом списания к месячному эквиваленту.
// Месячные и разовые суммы проходят без изменений.
func MonthlyEquivalent(amount decimal.Decimal, cycle model.BillingCycle) decimal.Decimal {
	switch cycle {
	case model.CycleYearly:
		return amount.Div(monthsPerYear)
	case model.CycleWeekly:
		return amount.Mul(weeksPerMonth)
	default:
		return amount
	}
}

// YearlyEquivalent — симметричное приведение к годовому эквиваленту.
func YearlyEquivalent(amount decimal.Decimal, cycle model.BillingCycle) decimal.Decimal {
	switch cycle {
	case model.CycleMonthly:
		return amount.Mul(monthsPerYear)
	case model.CycleWeekly:
		return amount.Mul(weeksPerYear)
	default:
		return amount
	}
}

// TotalMonthly суммирует месячные эквиваленты коллекции.
// Доступ к сумме и циклу абстрагирован, чтобы одна функция обслуживала
// доходы, долги и регулярные расходы.
func TotalMonthly[T any](items []T, get func(T) (decimal.Decimal, model.BillingCycle)) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		amount, cycle := get(it)
		total = total.Add(MonthlyEquivalent(amount, cycle))
	}
	return total
}

// midnight отбрасывает время суток, оставляя календарную дату.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntilDue — число календарных дней до срока. Сравниваются даты,
// приведённые к полуночи: для сегодняшнего срока всегда 0 независимо
// от времени суток, для вчерашнего — -1.
func DaysUntilDue(now, due time.Time) int {
	n := midnight(now.In(due.Location()))
	d := midnight(due)
	return int(d.Sub(n).Hours() / 24)
}

// IsOverdue — срок в прошлом (сегодняшний день ещё не просрочка).
func IsOverdue(now, due time.Time) bool {
	return DaysUntilDue(now, due) < 0
}

// InWindow — срок попадает в окно [0, windowDays] от сегодняшнего дня.
func InWindow(now, due time.Time, windowDays int) bool {
	d := DaysUntilDue(now, due)
	return d >= 0 && d <= windowDays
}

// IsTrialExpiring — пробный период заканчивается в ближайшее окно.
// Для TrialNone или отсутствующей даты всегда false.
func IsTrialExpiring(now time.Time, trial model.TrialType, end *time.Time, windowDays int) bool {
	if trial == model.TrialNone || end == nil {
		return false
	}
	return InWindow(now, *end, windowDays)
}

// FormatPercent форматирует ставку с фиксированным числом знаков.
// Ставка уже хранится как процентное значение (19.5 — это 19.5%).
func FormatPercent(rate decimal.Decimal, places int) string {
	return rate.StringFixed(int32(places)) + "%"
}
