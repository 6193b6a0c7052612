package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"FinKeeper/internal/model"
)

// Валидаторы принимают сущность целиком и возвращают пофилдовые ошибки.
// Суммы не могут быть отрицательными, кроме балансов (овердрафт допустим).

func requireName(ve *ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		ve.Add(field, field+" is required")
	}
}

func requireNonNegative(ve *ValidationError, field string, v decimal.Decimal) {
	if v.IsNegative() {
		ve.Add(field, field+" must not be negative")
	}
}

func requireCycle(ve *ValidationError, c model.BillingCycle) {
	if !model.ValidCycle(c) {
		ve.Add("cycle", "unknown billing cycle")
	}
}

func validateEmail(e *model.Email) error {
	ve := NewValidationError()
	requireName(ve, "address", e.Address)
	if e.Address != "" && !strings.Contains(e.Address, "@") {
		ve.Add("address", "address must contain @")
	}
	return ve.OrNil()
}

func validateAccount(a *model.Account) error {
	ve := NewValidationError()
	requireName(ve, "service", a.Service)
	requireNonNegative(ve, "monthly_cost", a.MonthlyCost)
	requireCycle(ve, a.Cycle)
	switch a.TrialType {
	case model.TrialNone, model.TrialFree, model.TrialPromo:
	default:
		ve.Add("trial_type", "unknown trial type")
	}
	if a.TrialType != model.TrialNone && a.TrialEndDate == nil {
		ve.Add("trial_end_date", "trial end date is required for a trial account")
	}
	return ve.OrNil()
}

func validateIncome(i *model.Income) error {
	ve := NewValidationError()
	requireName(ve, "source", i.Source)
	requireNonNegative(ve, "amount", i.Amount)
	requireCycle(ve, i.Cycle)
	return ve.OrNil()
}

func validateDebt(d *model.Debt) error {
	ve := NewValidationError()
	requireName(ve, "creditor", d.Creditor)
	requireNonNegative(ve, "amount", d.Amount)
	requireNonNegative(ve, "interest_rate", d.InterestRate)
	requireNonNegative(ve, "min_payment", d.MinPayment)
	requireCycle(ve, d.Cycle)
	if d.DueDay < 0 || d.DueDay > 31 {
		ve.Add("due_day", "due day must be between 0 and 31")
	}
	return ve.OrNil()
}

func validateCredit(c *model.Credit) error {
	ve := NewValidationError()
	requireName(ve, "issuer", c.Issuer)
	requireNonNegative(ve, "limit", c.Limit)
	requireNonNegative(ve, "interest_rate", c.InterestRate)
	return ve.OrNil()
}

func validateRecurring(r *model.RecurringExpense) error {
	ve := NewValidationError()
	requireName(ve, "name", r.Name)
	requireNonNegative(ve, "amount", r.Amount)
	requireCycle(ve, r.Cycle)
	return ve.OrNil()
}

func validateBill(b *model.OneTimeBill) error {
	ve := NewValidationError()
	requireName(ve, "name", b.Name)
	requireNonNegative(ve, "amount", b.Amount)
	if b.DueDate.IsZero() {
		ve.Add("due_date", "due date is required")
	}
	return ve.OrNil()
}

func validateBank(b *model.Bank) error {
	ve := NewValidationError()
	requireName(ve, "name", b.Name)
	// баланс может быть отрицательным, не проверяем знак
	if len(b.Currency) != 3 {
		ve.Add("currency", "currency must be a 3-letter code")
	}
	return ve.OrNil()
}

func validateWishlist(w *model.WishlistItem) error {
	ve := NewValidationError()
	requireName(ve, "name", w.Name)
	requireNonNegative(ve, "price", w.Price)
	switch w.NeedRate {
	case model.NeedRateNeed, model.NeedRateCanWait, model.NeedRateLuxury:
	default:
		ve.Add("need_rate", "unknown need rate")
	}
	return ve.OrNil()
}

func validateDocument(d *model.Document) error {
	ve := NewValidationError()
	requireName(ve, "name", d.Name)
	if d.Size < 0 {
		ve.Add("size", "size must not be negative")
	}
	return ve.OrNil()
}
