// Package amortization derives per-loan and aggregate debt figures from loans and their
// payments. Installments are a linear split of the principal; there is no interest.
package amortization

import (
	"github.com/shopspring/decimal"

	"loan-reconciliation/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Status computes the derived fields of a loan. Completion is amount-driven: payment
// amounts are free-form and need not match the nominal installment.
func Status(loan domain.Loan) domain.LoanStatus {
	paid := TotalPaid(loan)
	remaining := decimal.Max(decimal.Zero, loan.Amount.Sub(paid))

	installment := decimal.Zero
	if loan.Installments >= 1 {
		installment = loan.Amount.Div(decimal.NewFromInt(int64(loan.Installments)))
	}

	return domain.LoanStatus{
		InstallmentAmount:  installment,
		TotalPaid:          paid,
		RemainingAmount:    remaining,
		PaidInstallments:   len(loan.Payments),
		ProgressPercentage: percentage(paid, loan.Amount),
		IsCompleted:        remaining.IsZero(),
	}
}

// TotalPaid sums the loan's payment amounts.
func TotalPaid(loan domain.Loan) decimal.Decimal {
	total := decimal.Zero
	for _, p := range loan.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// View attaches the derived fields to loan.
func View(loan domain.Loan) domain.LoanView {
	return domain.LoanView{Loan: loan, LoanStatus: Status(loan)}
}

// Views maps View over loans, preserving order.
func Views(loans []domain.Loan) []domain.LoanView {
	out := make([]domain.LoanView, 0, len(loans))
	for _, l := range loans {
		out = append(out, View(l))
	}
	return out
}

// Summarize aggregates loans into a debt summary. Progress is weighted by dollars, not by
// loan count: Σ paid / Σ principal, clamped to [0, 100].
func Summarize(loans []domain.Loan) domain.DebtSummary {
	summary := domain.DebtSummary{
		RemainingDebt:        decimal.Zero,
		CompletionPercentage: decimal.Zero,
		TotalDebt:            decimal.Zero,
		TotalPaid:            decimal.Zero,
		TotalLoans:           len(loans),
	}

	for _, loan := range loans {
		st := Status(loan)
		summary.TotalDebt = summary.TotalDebt.Add(loan.Amount)
		summary.TotalPaid = summary.TotalPaid.Add(st.TotalPaid)
		summary.RemainingDebt = summary.RemainingDebt.Add(st.RemainingAmount)
		if st.IsCompleted {
			summary.CompletedLoans++
		} else {
			summary.ActiveLoans++
		}
	}

	summary.CompletionPercentage = percentage(summary.TotalPaid, summary.TotalDebt)
	return summary
}

// percentage returns part/whole*100 clamped to [0, 100]; zero when whole is not positive.
func percentage(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	pct := part.Div(whole).Mul(hundred)
	if pct.IsNegative() {
		return decimal.Zero
	}
	return decimal.Min(pct, hundred)
}
