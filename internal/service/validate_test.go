package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FinKeeper/internal/model"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	ve, ok := AsValidation(err)
	require.True(t, ok, "expected validation error, got %v", err)
	return ve.Fields
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, validateEmail(&model.Email{Address: "me@example.com"}))

	fe := fieldErrors(t, validateEmail(&model.Email{Address: ""}))
	assert.Contains(t, fe, "address")

	fe = fieldErrors(t, validateEmail(&model.Email{Address: "not-an-email"}))
	assert.Contains(t, fe, "address")
}

func TestValidateAccount(t *testing.T) {
	end := time.Now().AddDate(0, 0, 14)
	ok := &model.Account{Service: "Netflix", TrialType: model.TrialFree, TrialEndDate: &end, Cycle: model.CycleMonthly}
	assert.NoError(t, validateAccount(ok))

	// trial без даты окончания
	bad := &model.Account{Service: "Netflix", TrialType: model.TrialFree, Cycle: model.CycleMonthly}
	fe := fieldErrors(t, validateAccount(bad))
	assert.Contains(t, fe, "trial_end_date")

	// отрицательная стоимость и неизвестный цикл — обе ошибки разом
	bad = &model.Account{Service: "X", MonthlyCost: decimal.NewFromInt(-5), Cycle: "fortnightly"}
	fe = fieldErrors(t, validateAccount(bad))
	assert.Contains(t, fe, "monthly_cost")
	assert.Contains(t, fe, "cycle")
}

func TestValidateDebt(t *testing.T) {
	ok := &model.Debt{Creditor: "Bank", Amount: decimal.NewFromInt(100), Cycle: model.CycleMonthly, DueDay: 15}
	assert.NoError(t, validateDebt(ok))

	bad := &model.Debt{Creditor: "Bank", Amount: decimal.NewFromInt(100), Cycle: model.CycleMonthly, DueDay: 40}
	fe := fieldErrors(t, validateDebt(bad))
	assert.Contains(t, fe, "due_day")
}

func TestValidateBank_AllowsNegativeBalance(t *testing.T) {
	// овердрафт допустим
	b := &model.Bank{Name: "Main", Balance: decimal.NewFromInt(-250)}
	assert.NoError(t, validateBank(b))
}
