package gateway

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-reconciliation/internal/domain"
)

func sampleLoans() []domain.Loan {
	date := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Loan{
		{
			ID: "L1", Name: "Car", Amount: decimal.NewFromInt(1200), Installments: 12, Date: date,
			Payments: []domain.Payment{
				{ID: "P1", Amount: decimal.NewFromInt(100), Date: date},
				{ID: "P2", Amount: decimal.NewFromInt(100), Date: date},
			},
		},
		{
			ID: "L2", Name: "TV", Amount: decimal.NewFromInt(300), Installments: 3, Date: date,
			Payments: []domain.Payment{{ID: "P3", Amount: decimal.NewFromInt(100), Date: date}},
		},
	}
}

func TestLoanSnapshotStore_StoreAndCopy(t *testing.T) {
	s := NewLoanSnapshotStore("", quietLogger())
	require.NoError(t, s.Open("alice"))
	require.NoError(t, s.Store("alice", sampleLoans()))

	loans := s.Loans("alice")
	require.Len(t, loans, 2)
	loans[0].Payments[0].ID = "mutated"
	assert.Equal(t, "P1", s.Loans("alice")[0].Payments[0].ID)
	assert.Empty(t, s.Loans("bob"))
}

func TestLoanSnapshotStore_RemoveLoanDropsPayments(t *testing.T) {
	s := NewLoanSnapshotStore("", quietLogger())
	require.NoError(t, s.Open("alice"))
	require.NoError(t, s.Store("alice", sampleLoans()))

	require.NoError(t, s.RemoveLoan("alice", "L1"))
	loans := s.Loans("alice")
	require.Len(t, loans, 1)
	assert.Equal(t, "L2", loans[0].ID)

	assert.ErrorIs(t, s.RemovePayment("alice", "P1"), domain.ErrPaymentNotFound)
	assert.ErrorIs(t, s.RemoveLoan("alice", "L1"), domain.ErrLoanNotFound)
}

func TestLoanSnapshotStore_RemovePayment(t *testing.T) {
	s := NewLoanSnapshotStore("", quietLogger())
	require.NoError(t, s.Open("alice"))
	require.NoError(t, s.Store("alice", sampleLoans()))

	require.NoError(t, s.RemovePayment("alice", "P1"))
	loans := s.Loans("alice")
	require.Len(t, loans[0].Payments, 1)
	assert.Equal(t, "P2", loans[0].Payments[0].ID)
	assert.Len(t, loans[1].Payments, 1)
}

func TestLoanSnapshotStore_RequiresOpen(t *testing.T) {
	s := NewLoanSnapshotStore("", quietLogger())
	assert.ErrorIs(t, s.Store("alice", sampleLoans()), ErrUserNotOpen)
	assert.ErrorIs(t, s.RemoveLoan("alice", "L1"), ErrUserNotOpen)
	assert.ErrorIs(t, s.RemovePayment("alice", "P1"), ErrUserNotOpen)
}

func TestLoanSnapshotStore_PersistsAcrossSessions(t *testing.T) {
	dir := t.TempDir()
	s := NewLoanSnapshotStore(dir, quietLogger())
	require.NoError(t, s.Open("alice"))
	require.NoError(t, s.Store("alice", sampleLoans()))
	s.Close("alice")
	assert.Empty(t, s.Loans("alice"))

	reopened := NewLoanSnapshotStore(dir, quietLogger())
	require.NoError(t, reopened.Open("alice"))
	loans := reopened.Loans("alice")
	require.Len(t, loans, 2)
	assert.True(t, decimal.NewFromInt(1200).Equal(loans[0].Amount))
	assert.Len(t, loans[0].Payments, 2)
}

func TestLoanSnapshotStore_RejectsOtherKind(t *testing.T) {
	dir := t.TempDir()
	txs := NewTransactionStore(dir, quietLogger())
	require.NoError(t, txs.Open("alice"))
	require.NoError(t, saveEntries(userCachePath(dir, "alice", "loans.json"), transactionsKind, []domain.Transaction{}))

	s := NewLoanSnapshotStore(dir, quietLogger())
	assert.Error(t, s.Open("alice"))
}
