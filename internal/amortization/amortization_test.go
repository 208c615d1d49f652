package amortization_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"loan-reconciliation/internal/amortization"
	"loan-reconciliation/internal/domain"
)

var baseDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func loanWithPayments(principal string, installments int, payments ...string) domain.Loan {
	loan := domain.Loan{
		ID:           "L1",
		Name:         "Car",
		Amount:       dec(principal),
		Installments: installments,
		Date:         baseDate,
	}
	for i, p := range payments {
		loan.Payments = append(loan.Payments, domain.Payment{
			ID:     string(rune('a' + i)),
			Amount: dec(p),
			Date:   baseDate.AddDate(0, i+1, 0),
		})
	}
	return loan
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name            string
		loan            domain.Loan
		wantInstallment string
		wantRemaining   string
		wantProgress    string
		wantPaidCount   int
		wantCompleted   bool
	}{
		{
			name:            "no payments",
			loan:            loanWithPayments("1200", 12),
			wantInstallment: "100",
			wantRemaining:   "1200",
			wantProgress:    "0",
			wantPaidCount:   0,
		},
		{
			name:            "one installment paid",
			loan:            loanWithPayments("1200", 12, "100"),
			wantInstallment: "100",
			wantRemaining:   "1100",
			wantProgress:    "8.33",
			wantPaidCount:   1,
		},
		{
			name:            "paid in uneven split",
			loan:            loanWithPayments("1200", 12, "700", "250", "250"),
			wantInstallment: "100",
			wantRemaining:   "0",
			wantProgress:    "100",
			wantPaidCount:   3,
			wantCompleted:   true,
		},
		{
			name:            "over-payment floors remaining and caps progress",
			loan:            loanWithPayments("500", 5, "400", "400"),
			wantInstallment: "100",
			wantRemaining:   "0",
			wantProgress:    "100",
			wantPaidCount:   2,
			wantCompleted:   true,
		},
		{
			name:            "installment count reached but amount short is not completed",
			loan:            loanWithPayments("300", 2, "50", "50"),
			wantInstallment: "150",
			wantRemaining:   "200",
			wantProgress:    "33.33",
			wantPaidCount:   2,
		},
		{
			name:            "zero principal",
			loan:            loanWithPayments("0", 3),
			wantInstallment: "0",
			wantRemaining:   "0",
			wantProgress:    "0",
			wantCompleted:   true,
		},
		{
			name:            "non-positive installment count is clamped",
			loan:            loanWithPayments("100", 0),
			wantInstallment: "0",
			wantRemaining:   "100",
			wantProgress:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := amortization.Status(tt.loan)
			assert.True(t, dec(tt.wantInstallment).Equal(got.InstallmentAmount), "installment %s", got.InstallmentAmount)
			assert.True(t, dec(tt.wantRemaining).Equal(got.RemainingAmount), "remaining %s", got.RemainingAmount)
			assert.True(t, dec(tt.wantProgress).Equal(got.ProgressPercentage.Round(2)), "progress %s", got.ProgressPercentage)
			assert.Equal(t, tt.wantPaidCount, got.PaidInstallments)
			assert.Equal(t, tt.wantCompleted, got.IsCompleted)
		})
	}
}

func TestStatus_Bounds(t *testing.T) {
	hundred := decimal.NewFromInt(100)
	paymentSets := [][]string{
		{},
		{"0.01"},
		{"999.99"},
		{"1000"},
		{"1000.01"},
		{"5000", "1"},
		{"333.33", "333.33", "333.33"},
	}
	for _, payments := range paymentSets {
		st := amortization.Status(loanWithPayments("1000", 10, payments...))
		assert.False(t, st.RemainingAmount.IsNegative(), "payments %v", payments)
		assert.False(t, st.ProgressPercentage.IsNegative(), "payments %v", payments)
		assert.True(t, st.ProgressPercentage.LessThanOrEqual(hundred), "payments %v", payments)
	}
}

func TestView(t *testing.T) {
	loan := loanWithPayments("1200", 12, "100")
	view := amortization.View(loan)

	assert.Equal(t, loan, view.Loan)
	assert.Equal(t, amortization.Status(loan), view.LoanStatus)
	assert.Len(t, amortization.Views([]domain.Loan{loan, loan}), 2)
	assert.Empty(t, amortization.Views(nil))
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name          string
		loans         []domain.Loan
		wantRemaining string
		wantProgress  string
		wantActive    int
		wantCompleted int
	}{
		{
			name:          "no loans",
			wantRemaining: "0",
			wantProgress:  "0",
		},
		{
			name: "progress is weighted by dollars not by loan count",
			loans: []domain.Loan{
				loanWithPayments("100", 1, "100"),
				loanWithPayments("900", 9),
			},
			wantRemaining: "900",
			wantProgress:  "10",
			wantActive:    1,
			wantCompleted: 1,
		},
		{
			name: "over-payment counts toward aggregate progress",
			loans: []domain.Loan{
				loanWithPayments("100", 1, "300"),
				loanWithPayments("900", 9),
			},
			wantRemaining: "900",
			wantProgress:  "30",
			wantActive:    1,
			wantCompleted: 1,
		},
		{
			name: "over-payment on equal loans",
			loans: []domain.Loan{
				loanWithPayments("100", 1, "150"),
				loanWithPayments("100", 1),
			},
			wantRemaining: "100",
			wantProgress:  "75",
			wantActive:    1,
			wantCompleted: 1,
		},
		{
			name: "aggregate progress is capped at 100",
			loans: []domain.Loan{
				loanWithPayments("100", 1, "300"),
			},
			wantRemaining: "0",
			wantProgress:  "100",
			wantCompleted: 1,
		},
		{
			name: "partial payments across loans",
			loans: []domain.Loan{
				loanWithPayments("1200", 12, "100"),
				loanWithPayments("800", 4, "200", "200"),
			},
			wantRemaining: "1500",
			wantProgress:  "25",
			wantActive:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := amortization.Summarize(tt.loans)
			assert.True(t, dec(tt.wantRemaining).Equal(got.RemainingDebt), "remaining %s", got.RemainingDebt)
			assert.True(t, dec(tt.wantProgress).Equal(got.CompletionPercentage.Round(2)), "progress %s", got.CompletionPercentage)
			assert.Equal(t, len(tt.loans), got.TotalLoans)
			assert.Equal(t, tt.wantActive, got.ActiveLoans)
			assert.Equal(t, tt.wantCompleted, got.CompletedLoans)
			_, clamped := got.Clamp()
			assert.False(t, clamped)
		})
	}
}

func TestSummarize_MatchesPerLoanRemaining(t *testing.T) {
	loans := []domain.Loan{
		loanWithPayments("1200", 12, "100", "100"),
		loanWithPayments("450", 3, "500"),
		loanWithPayments("75.50", 2, "10.25"),
	}
	want := decimal.Zero
	for _, l := range loans {
		want = want.Add(amortization.Status(l).RemainingAmount)
	}
	assert.True(t, want.Equal(amortization.Summarize(loans).RemainingDebt))
}
