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

// GoalServiceSuite defines the test suite for GoalServiceInterface
type GoalServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	store    *store_mocks.MockDocumentStore
	service  *goalService
	ctx      context.Context
	username string
}

func (s *GoalServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = store_mocks.NewMockDocumentStore(s.ctrl)
	s.service = NewGoalService(s.store, NoopMetrics{}, slog.Default()).(*goalService)
	s.ctx = context.Background()
	s.username = gofakeit.Username()
}

func (s *GoalServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestGoalServiceSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceSuite))
}

func (s *GoalServiceSuite) documentWithAccount(balance, goal decimal.Decimal) *models.UserDocument {
	doc := models.NewUserDocument()
	account, err := models.NewAccount(doc.NextID(), "Savings", balance, goal)
	s.Require().NoError(err)
	doc.Accounts = append(doc.Accounts, *account)
	return doc
}

func (s *GoalServiceSuite) TestProgress_AfterDeposit() {
	doc := s.documentWithAccount(decimal.NewFromInt(100), decimal.NewFromInt(200))
	_, err := doc.Accounts[0].Apply(models.TransactionTypeDeposit, decimal.NewFromInt(50), time.Now())
	s.Require().NoError(err)

	s.store.EXPECT().Load(gomock.Any(), s.username).Return(doc, nil)

	progress, err := s.service.Progress(s.ctx, s.username, 1)
	s.NoError(err)
	s.Require().NotNil(progress)
	s.True(progress.Percentage.Equal(decimal.NewFromInt(75)))
	s.Equal(models.GoalMessageNearGoal, progress.Message)
	s.Require().NotNil(progress.MonthsRemaining)
	// (200 - 150) / 50 = 1 month at the current deposit pace
	s.True(progress.MonthsRemaining.Equal(decimal.NewFromInt(1)))
}

func (s *GoalServiceSuite) TestProgress_PercentageClampedAt100() {
	doc := s.documentWithAccount(decimal.NewFromInt(500), decimal.NewFromInt(200))
	s.store.EXPECT().Load(gomock.Any(), s.username).Return(doc, nil)

	progress, err := s.service.Progress(s.ctx, s.username, 1)
	s.NoError(err)
	s.True(progress.Percentage.Equal(decimal.NewFromInt(100)))
	s.Equal(models.GoalMessageAlmostDone, progress.Message)
}

func (s *GoalServiceSuite) TestProgress_NoGoalMeansZeroPercent() {
	doc := s.documentWithAccount(decimal.NewFromInt(500), decimal.Zero)
	s.store.EXPECT().Load(gomock.Any(), s.username).Return(doc, nil)

	progress, err := s.service.Progress(s.ctx, s.username, 1)
	s.NoError(err)
	s.True(progress.Percentage.IsZero())
	s.Equal(models.GoalMessageKeepGoing, progress.Message)
}

func (s *GoalServiceSuite) TestProgress_NoDepositsMeansNoProjection() {
	doc := s.documentWithAccount(decimal.NewFromInt(100), decimal.NewFromInt(1000))
	_, err := doc.Accounts[0].Apply(models.TransactionTypeWithdraw, decimal.NewFromInt(10), time.Now())
	s.Require().NoError(err)

	s.store.EXPECT().Load(gomock.Any(), s.username).Return(doc, nil)

	progress, err := s.service.Progress(s.ctx, s.username, 1)
	s.NoError(err)
	s.Nil(progress.MonthsRemaining)
}

func (s *GoalServiceSuite) TestProgress_MessageTiers() {
	tests := []struct {
		balance int64
		message string
	}{
		{49, models.GoalMessageKeepGoing},
		{50, models.GoalMessageNearGoal},
		{89, models.GoalMessageNearGoal},
		{90, models.GoalMessageAlmostDone},
		{100, models.GoalMessageAlmostDone},
	}

	for _, tt := range tests {
		doc := s.documentWithAccount(decimal.NewFromInt(tt.balance), decimal.NewFromInt(100))
		s.store.EXPECT().Load(gomock.Any(), s.username).Return(doc, nil)

		progress, err := s.service.Progress(s.ctx, s.username, 1)
		s.NoError(err)
		s.Equal(tt.message, progress.Message, "balance %d", tt.balance)
	}
}

func (s *GoalServiceSuite) TestProgress_MonthlyTrendSortedAscending() {
	doc := s.documentWithAccount(decimal.NewFromInt(1000), decimal.NewFromInt(5000))
	account := &doc.Accounts[0]

	february := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	january := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	_, err := account.Apply(models.TransactionTypeDeposit, decimal.NewFromInt(80), february)
	s.Require().NoError(err)
	_, err = account.Apply(models.TransactionTypeWithdraw, decimal.NewFromInt(30), february)
	s.Require().NoError(err)
	_, err = account.Apply(models.TransactionTypeDeposit, decimal.NewFromInt(100), january)
	s.Require().NoError(err)

	s.store.EXPECT().Load(gomock.Any(), s.username).Return(doc, nil)

	progress, err := s.service.Progress(s.ctx, s.username, 1)
	s.NoError(err)
	s.Require().Len(progress.Trend, 2)
	s.Equal("2024-01", progress.Trend[0].Month)
	s.True(progress.Trend[0].Net.Equal(decimal.NewFromInt(100)))
	s.Equal("2024-02", progress.Trend[1].Month)
	s.True(progress.Trend[1].Net.Equal(decimal.NewFromInt(50)))
}

// Progress only reads, so repeated calls on an unmodified account must
// return identical reports.
func (s *GoalServiceSuite) TestProgress_Idempotent() {
	doc := s.documentWithAccount(decimal.NewFromInt(100), decimal.NewFromInt(200))
	_, err := doc.Accounts[0].Apply(models.TransactionTypeDeposit, decimal.NewFromInt(50), time.Now())
	s.Require().NoError(err)

	s.store.EXPECT().Load(gomock.Any(), s.username).Return(doc, nil).Times(2)

	first, err := s.service.Progress(s.ctx, s.username, 1)
	s.Require().NoError(err)
	second, err := s.service.Progress(s.ctx, s.username, 1)
	s.Require().NoError(err)

	s.True(first.Percentage.Equal(second.Percentage))
	s.Equal(first.Message, second.Message)
	s.Equal(len(first.Trend), len(second.Trend))
}

func (s *GoalServiceSuite) TestProgress_UnknownAccount() {
	s.store.EXPECT().Load(gomock.Any(), s.username).Return(models.NewUserDocument(), nil)

	progress, err := s.service.Progress(s.ctx, s.username, 3)
	s.ErrorIs(err, ErrAccountNotFound)
	s.Nil(progress)
}
