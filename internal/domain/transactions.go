package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType defines the nature of a local transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction is an ad-hoc income or expense entry kept in the user's local cache.
// It is never synchronized with the remote loan ledger.
type Transaction struct {
	ID          string            `json:"id"`
	Type        TransactionType   `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Signed returns the amount with its balance sign: income adds, everything else subtracts.
// Unknown types count as expenses so they never vanish from a sum.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionTypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// SumTransactions returns the signed total of txs.
func SumTransactions(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Signed())
	}
	return total
}

// NewTransaction is the caller-supplied input for appending a local transaction.
type NewTransaction struct {
	Type        TransactionType   `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Validate rejects unknown types and non-positive amounts.
func (n NewTransaction) Validate() error {
	if !n.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "must be income or expense"}
	}
	if !n.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	return nil
}
