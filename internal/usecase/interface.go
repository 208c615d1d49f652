package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"loan-reconciliation/internal/domain"
)

// LoanLedgerClient is the remote loan ledger. Every call is a request that can fail;
// read failures send the engine down the fallback path, write failures go back to the caller.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go
type LoanLedgerClient interface {
	ListLoans(ctx context.Context, userID string) ([]domain.Loan, error)
	GetDebtSummary(ctx context.Context, userID string) (domain.DebtSummary, error)
	CreateLoan(ctx context.Context, userID string, loan domain.NewLoan) (domain.Loan, error)
	DeleteLoan(ctx context.Context, userID, loanID string) error
	AddPayment(ctx context.Context, userID, loanID string, payment domain.NewPayment) (domain.Payment, error)
	DeletePayment(ctx context.Context, userID, paymentID string) error
}

// TransactionLedger is the per-user local cache of income/expense entries.
// Open populates a user's entry on login and Close evicts it on logout.
type TransactionLedger interface {
	Open(userID string) error
	Close(userID string)
	Sum(userID string) decimal.Decimal
	List(userID string) []domain.Transaction
	Append(userID string, txs ...domain.Transaction) error
}

// LoanSnapshotCache keeps the last successfully fetched loan list per user.
type LoanSnapshotCache interface {
	Open(userID string) error
	Close(userID string)
	Loans(userID string) []domain.Loan
	Store(userID string, loans []domain.Loan) error
	RemoveLoan(userID, loanID string) error
	RemovePayment(userID, paymentID string) error
}
