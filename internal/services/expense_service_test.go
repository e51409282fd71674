package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/store/store_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ExpenseServiceSuite defines the test suite for ExpenseServiceInterface
type ExpenseServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	store    *store_mocks.MockDocumentStore
	service  *expenseService
	ctx      context.Context
	username string
}

func (s *ExpenseServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = store_mocks.NewMockDocumentStore(s.ctrl)
	s.service = NewExpenseService(s.store, NoopMetrics{}, slog.Default()).(*expenseService)
	s.ctx = context.Background()
	s.username = gofakeit.Username()
}

func (s *ExpenseServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestExpenseServiceSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceSuite))
}

func (s *ExpenseServiceSuite) TestRecordExpense() {
	s.store.EXPECT().Load(gomock.Any(), s.username).Return(models.NewUserDocument(), nil)
	s.store.EXPECT().Save(gomock.Any(), s.username, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, doc *models.UserDocument) error {
			s.Len(doc.ExpensesFor("2024-07"), 1)
			return nil
		})

	when := time.Date(2024, 7, 14, 16, 0, 0, 0, time.UTC)
	entry, err := s.service.RecordExpense(s.ctx, s.username, "food", "20.50", "groceries", when)
	s.NoError(err)
	s.Require().NotNil(entry)
	s.Equal("food", entry.Category)
	s.True(entry.Amount.Equal(decimal.NewFromFloat(20.50)))
	s.Equal("2024-07", entry.MonthKey())
}

func (s *ExpenseServiceSuite) TestRecordExpense_MalformedAmount() {
	entry, err := s.service.RecordExpense(s.ctx, s.username, "food", "lots", "", time.Now())
	s.ErrorIs(err, ErrInvalidAmount)
	s.Nil(entry)
}

func (s *ExpenseServiceSuite) TestRecordExpense_EmptyCategory() {
	entry, err := s.service.RecordExpense(s.ctx, s.username, "", "10", "", time.Now())
	s.ErrorIs(err, models.ErrEmptyCategory)
	s.Nil(entry)
}

func (s *ExpenseServiceSuite) TestAggregateByCategory() {
	doc := models.NewUserDocument()
	july := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	for _, amount := range []int64{20, 30} {
		entry, err := models.NewExpenseEntry("food", decimal.NewFromInt(amount), "", july)
		s.Require().NoError(err)
		doc.AddExpense(*entry)
	}
	entry, err := models.NewExpenseEntry("transport", decimal.NewFromInt(8), "", july)
	s.Require().NoError(err)
	doc.AddExpense(*entry)

	s.store.EXPECT().Load(gomock.Any(), s.username).Return(doc, nil)

	totals, err := s.service.AggregateByCategory(s.ctx, s.username, "2024-07")
	s.NoError(err)
	s.Require().Len(totals, 2)
	s.True(totals["food"].Equal(decimal.NewFromInt(50)))
	s.True(totals["transport"].Equal(decimal.NewFromInt(8)))
}

func (s *ExpenseServiceSuite) TestAggregateByCategory_AbsentMonthIsEmpty() {
	s.store.EXPECT().Load(gomock.Any(), s.username).Return(models.NewUserDocument(), nil)

	totals, err := s.service.AggregateByCategory(s.ctx, s.username, "2030-01")
	s.NoError(err)
	s.NotNil(totals)
	s.Empty(totals)
}

func (s *ExpenseServiceSuite) TestAggregateByCategory_MissingMonth() {
	totals, err := s.service.AggregateByCategory(s.ctx, s.username, "")
	s.ErrorIs(err, ErrMissingMonth)
	s.Nil(totals)
}

// Category names compare exactly; "Food" and "food" are distinct buckets.
func (s *ExpenseServiceSuite) TestAggregateByCategory_CaseSensitive() {
	doc := models.NewUserDocument()
	july := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	for _, category := range []string{"Food", "food"} {
		entry, err := models.NewExpenseEntry(category, decimal.NewFromInt(10), "", july)
		s.Require().NoError(err)
		doc.AddExpense(*entry)
	}

	s.store.EXPECT().Load(gomock.Any(), s.username).Return(doc, nil)

	totals, err := s.service.AggregateByCategory(s.ctx, s.username, "2024-07")
	s.NoError(err)
	s.Len(totals, 2)
}

func (s *ExpenseServiceSuite) TestListExpenses_InsertionOrder() {
	doc := models.NewUserDocument()
	july := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	for _, category := range []string{"rent", "food", "transport"} {
		entry, err := models.NewExpenseEntry(category, decimal.NewFromInt(10), "", july)
		s.Require().NoError(err)
		doc.AddExpense(*entry)
	}

	s.store.EXPECT().Load(gomock.Any(), s.username).Return(doc, nil)

	entries, err := s.service.ListExpenses(s.ctx, s.username, "2024-07")
	s.NoError(err)
	s.Require().Len(entries, 3)
	s.Equal("rent", entries[0].Category)
	s.Equal("transport", entries[2].Category)
}

func (s *ExpenseServiceSuite) TestListExpenses_AbsentMonth() {
	s.store.EXPECT().Load(gomock.Any(), s.username).Return(models.NewUserDocument(), nil)

	entries, err := s.service.ListExpenses(s.ctx, s.username, "2030-01")
	s.NoError(err)
	s.NotNil(entries)
	s.Empty(entries)
}

func (s *ExpenseServiceSuite) TestListExpenses_MissingMonth() {
	entries, err := s.service.ListExpenses(s.ctx, s.username, "")
	s.ErrorIs(err, ErrMissingMonth)
	s.Nil(entries)
}
