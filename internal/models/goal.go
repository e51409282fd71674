package models

import (
	"github.com/shopspring/decimal"
)

// Progress message tiers, selected by percentage thresholds. The wording is
// cosmetic; the thresholds are the contract.
const (
	GoalMessageKeepGoing  = "Keep going, you're building momentum!"
	GoalMessageNearGoal   = "Over halfway there, stay on track!"
	GoalMessageAlmostDone = "Your goal is within reach!"
)

// TrendPoint is the net amount moved in one month, deposits minus
// withdrawals. Points are ordered by month key ascending.
type TrendPoint struct {
	Month string          `json:"month"`
	Net   decimal.Decimal `json:"net"`
}

// GoalProgress is the computed goal report for one account. It is a pure
// function of the stored account and can be re-derived at any time.
type GoalProgress struct {
	AccountID int    `json:"account_id"`
	Name      string `json:"account_name"`

	// Percentage of the goal reached, clamped to [0, 100]. Zero when no
	// goal is set.
	Percentage decimal.Decimal `json:"percentage"`
	Message    string          `json:"message"`

	// MonthsRemaining is nil when no deposit history exists; the report
	// never fabricates a projection without data.
	MonthsRemaining *decimal.Decimal `json:"months_remaining,omitempty"`

	Trend []TrendPoint `json:"trend"`
}
