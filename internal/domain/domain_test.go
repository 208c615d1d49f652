package domain_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"loan-reconciliation/internal/domain"
)

var date = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestNewLoan_Validate(t *testing.T) {
	tests := []struct {
		name      string
		loan      domain.NewLoan
		wantField string
	}{
		{name: "valid", loan: domain.NewLoan{Name: "Car", Amount: decimal.NewFromInt(1200), Installments: 12, Date: date}},
		{name: "blank name", loan: domain.NewLoan{Name: "  ", Amount: decimal.NewFromInt(1), Installments: 1, Date: date}, wantField: "name"},
		{name: "negative amount", loan: domain.NewLoan{Name: "x", Amount: decimal.NewFromInt(-1), Installments: 1, Date: date}, wantField: "amount"},
		{name: "no installments", loan: domain.NewLoan{Name: "x", Amount: decimal.NewFromInt(1), Date: date}, wantField: "installments"},
		{name: "no date", loan: domain.NewLoan{Name: "x", Amount: decimal.NewFromInt(1), Installments: 1}, wantField: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.loan.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *domain.ValidationError
			assert.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestNewPayment_Validate(t *testing.T) {
	assert.NoError(t, domain.NewPayment{Amount: decimal.NewFromInt(10), Date: date}.Validate())
	assert.ErrorIs(t, domain.NewPayment{Amount: decimal.Zero, Date: date}.Validate(), domain.ErrValidation)
	assert.ErrorIs(t, domain.NewPayment{Amount: decimal.NewFromInt(10)}.Validate(), domain.ErrValidation)
}

func TestNewTransaction_Validate(t *testing.T) {
	assert.NoError(t, domain.NewTransaction{Type: domain.TransactionTypeExpense, Amount: decimal.NewFromInt(1)}.Validate())
	assert.ErrorIs(t, domain.NewTransaction{Type: "transfer", Amount: decimal.NewFromInt(1)}.Validate(), domain.ErrValidation)
	assert.ErrorIs(t, domain.NewTransaction{Type: domain.TransactionTypeIncome}.Validate(), domain.ErrValidation)
}

func TestSumTransactions(t *testing.T) {
	txs := []domain.Transaction{
		{Type: domain.TransactionTypeIncome, Amount: decimal.RequireFromString("2000.50")},
		{Type: domain.TransactionTypeExpense, Amount: decimal.RequireFromString("500.25")},
		{Type: "unknown", Amount: decimal.NewFromInt(100)},
	}
	assert.True(t, decimal.RequireFromString("1400.25").Equal(domain.SumTransactions(txs)))
	assert.True(t, domain.SumTransactions(nil).IsZero())
}

func TestDebtSummary_Clamp(t *testing.T) {
	tests := []struct {
		name          string
		summary       domain.DebtSummary
		wantRemaining string
		wantProgress  string
		wantChanged   bool
	}{
		{name: "in range", summary: domain.DebtSummary{RemainingDebt: decimal.NewFromInt(10), CompletionPercentage: decimal.NewFromInt(100)}, wantRemaining: "10", wantProgress: "100"},
		{name: "zero value", summary: domain.DebtSummary{}, wantRemaining: "0", wantProgress: "0"},
		{name: "negative debt", summary: domain.DebtSummary{RemainingDebt: decimal.NewFromInt(-50), CompletionPercentage: decimal.NewFromInt(90)}, wantRemaining: "0", wantProgress: "90", wantChanged: true},
		{name: "overpaid progress", summary: domain.DebtSummary{RemainingDebt: decimal.Zero, CompletionPercentage: decimal.RequireFromString("150")}, wantRemaining: "0", wantProgress: "100", wantChanged: true},
		{name: "negative progress", summary: domain.DebtSummary{RemainingDebt: decimal.NewFromInt(5), CompletionPercentage: decimal.NewFromInt(-3)}, wantRemaining: "5", wantProgress: "0", wantChanged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := tt.summary.Clamp()
			assert.Equal(t, tt.wantChanged, changed)
			assert.True(t, decimal.RequireFromString(tt.wantRemaining).Equal(got.RemainingDebt), "remaining %s", got.RemainingDebt)
			assert.True(t, decimal.RequireFromString(tt.wantProgress).Equal(got.CompletionPercentage), "progress %s", got.CompletionPercentage)
		})
	}
}

func TestNewBalanceSnapshot(t *testing.T) {
	snap := domain.NewBalanceSnapshot(decimal.NewFromInt(1500), decimal.NewFromInt(300), decimal.NewFromInt(40))
	assert.True(t, decimal.NewFromInt(1200).Equal(snap.AvailableBalance))

	overdrawn := domain.NewBalanceSnapshot(decimal.NewFromInt(100), decimal.NewFromInt(300), decimal.Zero)
	assert.True(t, decimal.NewFromInt(-200).Equal(overdrawn.AvailableBalance))

	assert.True(t, domain.ZeroSnapshot().Equal(domain.NewBalanceSnapshot(decimal.Zero, decimal.Zero, decimal.Zero)))
	assert.False(t, snap.Equal(overdrawn))
}

func TestErrors(t *testing.T) {
	cause := errors.New("connection reset")
	transport := &domain.TransportError{Op: "list loans", StatusCode: 502, Err: cause}
	write := fmt.Errorf("cli: %w", &domain.WriteError{Op: "create loan", Err: transport})

	assert.ErrorIs(t, write, domain.ErrWrite)
	assert.ErrorIs(t, write, domain.ErrTransport)
	assert.ErrorIs(t, write, cause)
	assert.NotErrorIs(t, write, domain.ErrValidation)

	var te *domain.TransportError
	assert.True(t, errors.As(write, &te))
	assert.Equal(t, 502, te.StatusCode)
	assert.Equal(t, "list loans: unexpected status 502: connection reset", transport.Error())
	assert.Equal(t, "list loans: connection reset", (&domain.TransportError{Op: "list loans", Err: cause}).Error())
}
