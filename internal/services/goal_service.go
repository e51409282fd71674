package services

import (
	"context"
	"log/slog"
	"sort"

	"fintrack/internal/models"
	"fintrack/internal/store"

	"github.com/shopspring/decimal"
)

var (
	percentageScale = decimal.NewFromInt(100)
	nearGoalFloor   = decimal.NewFromInt(50)
	almostDoneFloor = decimal.NewFromInt(90)
)

// goalService implements GoalServiceInterface
type goalService struct {
	store   store.DocumentStore
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewGoalService creates a goal analytics service backed by a document store
func NewGoalService(documents store.DocumentStore, metrics MetricsRecorderInterface, logger *slog.Logger) GoalServiceInterface {
	return &goalService{
		store:   documents,
		metrics: metrics,
		logger:  logger,
	}
}

// Progress derives the goal report for one account. It reads only stored
// data and mutates nothing, so calling it twice on an unmodified account
// yields identical results.
func (s *goalService) Progress(ctx context.Context, username string, accountID int) (*models.GoalProgress, error) {
	doc, err := s.store.Load(ctx, username)
	if err != nil {
		return nil, err
	}

	account := doc.FindAccount(accountID)
	if account == nil {
		return nil, ErrAccountNotFound
	}

	progress := &models.GoalProgress{
		AccountID:       account.ID,
		Name:            account.Name,
		Percentage:      goalPercentage(account),
		MonthsRemaining: monthsRemaining(account),
		Trend:           monthlyTrend(account),
	}
	progress.Message = progressMessage(progress.Percentage)

	s.metrics.RecordProgressComputed()
	return progress, nil
}

// goalPercentage is min(balance/goal*100, 100), or zero when no goal is
// set. The zero-goal case is guarded, never a division error.
func goalPercentage(account *models.Account) decimal.Decimal {
	if !account.HasGoal() {
		return decimal.Zero
	}
	percentage := account.Balance.Div(account.Goal).Mul(percentageScale)
	if percentage.GreaterThan(percentageScale) {
		return percentageScale
	}
	return percentage
}

// monthsRemaining projects (goal - balance) / mean deposit amount. With no
// deposit history there is nothing to project from and nil is returned.
func monthsRemaining(account *models.Account) *decimal.Decimal {
	depositTotal := decimal.Zero
	depositCount := int64(0)
	for i := range account.Transactions {
		if account.Transactions[i].IsDeposit() {
			depositTotal = depositTotal.Add(account.Transactions[i].Amount)
			depositCount++
		}
	}
	if depositCount == 0 || !depositTotal.GreaterThan(decimal.Zero) {
		return nil
	}

	averageDeposit := depositTotal.Div(decimal.NewFromInt(depositCount))
	remaining := account.Goal.Sub(account.Balance).Div(averageDeposit)
	return &remaining
}

// monthlyTrend nets deposits against withdrawals per distinct month key,
// ascending. One pass over the history plus a sort of the keys.
func monthlyTrend(account *models.Account) []models.TrendPoint {
	totals := map[string]decimal.Decimal{}
	for i := range account.Transactions {
		transaction := &account.Transactions[i]
		key := transaction.MonthKey()
		totals[key] = totals[key].Add(transaction.Signed())
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	trend := make([]models.TrendPoint, 0, len(months))
	for _, month := range months {
		trend = append(trend, models.TrendPoint{Month: month, Net: totals[month]})
	}
	return trend
}

func progressMessage(percentage decimal.Decimal) string {
	switch {
	case percentage.GreaterThanOrEqual(almostDoneFloor):
		return models.GoalMessageAlmostDone
	case percentage.GreaterThanOrEqual(nearGoalFloor):
		return models.GoalMessageNearGoal
	default:
		return models.GoalMessageKeepGoing
	}
}
