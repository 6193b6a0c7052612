package service

import (
	"context"
	"fmt"
	"time"

	"FinKeeper/internal/finance"
	"FinKeeper/internal/model"
	"FinKeeper/internal/repo"
)

// FinanceData — все живые финансовые коллекции одним чтением.
type FinanceData struct {
	Incomes   []model.Income           `json:"incomes"`
	Debts     []model.Debt             `json:"debts"`
	Credits   []model.Credit           `json:"credits"`
	Recurring []model.RecurringExpense `json:"recurring_expenses"`
	Bills     []model.OneTimeBill      `json:"one_time_bills"`
	Banks     []model.Bank             `json:"banks"`
}

// DashboardService готовит данные для главного экрана.
// Вся арифметика — в пакете finance; здесь только загрузка коллекций.
type DashboardService struct {
	stores     *repo.Stores
	windowDays int
	trialDays  int

	now func() time.Time
}

// NewDashboardService создаёт сервис дашборда.
func NewDashboardService(stores *repo.Stores, windowDays, trialDays int) *DashboardService {
	if windowDays <= 0 {
		windowDays = finance.DefaultUpcomingWindowDays
	}
	if trialDays <= 0 {
		trialDays = finance.DefaultTrialWindowDays
	}
	return &DashboardService{
		stores:     stores,
		windowDays: windowDays,
		trialDays:  trialDays,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// AllFinanceData загружает живые финансовые коллекции.
// Удалённые строки сюда не попадают: их отфильтровывает дефолтный scope.
func (s *DashboardService) AllFinanceData(ctx context.Context) (*FinanceData, error) {
	var (
		data FinanceData
		err  error
	)
	if data.Incomes, err = s.stores.Incomes.List(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: incomes: %w", err)
	}
	if data.Debts, err = s.stores.Debts.List(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: debts: %w", err)
	}
	if data.Credits, err = s.stores.Credits.List(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: credits: %w", err)
	}
	if data.Recurring, err = s.stores.Recurring.List(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: recurring: %w", err)
	}
	if data.Bills, err = s.stores.Bills.List(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: bills: %w", err)
	}
	if data.Banks, err = s.stores.Banks.List(ctx); err != nil {
		return nil, fmt.Errorf("dashboard: banks: %w", err)
	}
	return &data, nil
}

// Summary — сводка дашборда поверх AllFinanceData,
// плюс предупреждения о заканчивающихся пробных периодах.
func (s *DashboardService) Summary(ctx context.Context) (finance.Summary, error) {
	data, err := s.AllFinanceData(ctx)
	if err != nil {
		return finance.Summary{}, err
	}
	accounts, err := s.stores.Accounts.List(ctx)
	if err != nil {
		return finance.Summary{}, fmt.Errorf("dashboard: accounts: %w", err)
	}
	now := s.now()
	summary := finance.BuildSummary(
		now,
		data.Incomes,
		data.Recurring,
		data.Debts,
		data.Bills,
		data.Banks,
		s.windowDays,
	)
	summary.ExpiringTrials = finance.ExpiringTrials(now, accounts, s.trialDays)
	return summary, nil
}
