package domain

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DebtSummary is the aggregate debt position across all of a user's loans.
type DebtSummary struct {
	RemainingDebt        decimal.Decimal `json:"remaining_debt"`
	CompletionPercentage decimal.Decimal `json:"completion_percentage"`
	TotalLoans           int             `json:"total_loans"`
	ActiveLoans          int             `json:"active_loans"`
	CompletedLoans       int             `json:"completed_loans"`
	TotalDebt            decimal.Decimal `json:"total_debt"`
	TotalPaid            decimal.Decimal `json:"total_paid"`
}

// Clamp bounds the summary to what a snapshot may carry: debt at or above zero and progress
// within [0, 100]. The second result reports whether any value had to be adjusted.
func (s DebtSummary) Clamp() (DebtSummary, bool) {
	out := s
	if out.RemainingDebt.IsNegative() {
		out.RemainingDebt = decimal.Zero
	}
	if out.CompletionPercentage.IsNegative() {
		out.CompletionPercentage = decimal.Zero
	}
	if out.CompletionPercentage.GreaterThan(hundred) {
		out.CompletionPercentage = hundred
	}
	changed := !out.RemainingDebt.Equal(s.RemainingDebt) || !out.CompletionPercentage.Equal(s.CompletionPercentage)
	return out, changed
}

// BalanceSnapshot is the single consistent aggregate published per recompute cycle.
type BalanceSnapshot struct {
	Balance          decimal.Decimal `json:"balance"`
	TotalDebt        decimal.Decimal `json:"total_debt"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	DebtProgress     decimal.Decimal `json:"debt_progress"`
}

// NewBalanceSnapshot derives AvailableBalance so no caller can publish inconsistent fields.
func NewBalanceSnapshot(balance, totalDebt, progress decimal.Decimal) BalanceSnapshot {
	return BalanceSnapshot{
		Balance:          balance,
		TotalDebt:        totalDebt,
		AvailableBalance: balance.Sub(totalDebt),
		DebtProgress:     progress,
	}
}

// ZeroSnapshot is published when no user is signed in.
func ZeroSnapshot() BalanceSnapshot {
	return NewBalanceSnapshot(decimal.Zero, decimal.Zero, decimal.Zero)
}

// Equal reports whether both snapshots carry the same values.
func (b BalanceSnapshot) Equal(other BalanceSnapshot) bool {
	return b.Balance.Equal(other.Balance) &&
		b.TotalDebt.Equal(other.TotalDebt) &&
		b.AvailableBalance.Equal(other.AvailableBalance) &&
		b.DebtProgress.Equal(other.DebtProgress)
}
