package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a recorded reduction of a loan's outstanding principal.
// Payments are owned by exactly one loan and are never updated.
type Payment struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Notes  string          `json:"notes,omitempty"`
}

// Loan is a fixed-principal, fixed-installment-count debt. Payments keep insertion order.
type Loan struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	Installments int             `json:"installments"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description,omitempty"`
	Payments     []Payment       `json:"payments"`
}

// LoanStatus holds the fields derived from a loan and its payments.
type LoanStatus struct {
	InstallmentAmount  decimal.Decimal `json:"installment_amount"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	RemainingAmount    decimal.Decimal `json:"remaining_amount"`
	PaidInstallments   int             `json:"paid_installments"`
	ProgressPercentage decimal.Decimal `json:"progress_percentage"`
	IsCompleted        bool            `json:"is_completed"`
}

// LoanView is a loan with its derived fields attached.
type LoanView struct {
	Loan
	LoanStatus
}

// NewLoan is the request body for creating a loan.
type NewLoan struct {
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	Installments int             `json:"installments"`
	Date         time.Time       `json:"date"`
	Description  string          `json:"description,omitempty"`
}

// Validate rejects loans that would produce division-by-zero or negative installments downstream.
func (n NewLoan) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if !n.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	if n.Installments < 1 {
		return &ValidationError{Field: "installments", Reason: "must be at least 1"}
	}
	if n.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "is required"}
	}
	return nil
}

// NewPayment is the request body for adding a payment to a loan.
type NewPayment struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Notes  string          `json:"notes,omitempty"`
}

// Validate rejects non-positive amounts and a missing date.
func (n NewPayment) Validate() error {
	if !n.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	if n.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "is required"}
	}
	return nil
}
