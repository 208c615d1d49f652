package gateway

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"loan-reconciliation/internal/domain"
)

const transactionsKind = "transactions"

// TransactionStore is the per-user local cache of income/expense transactions.
// Entries live in memory between Open and Close; with a cache dir they are also
// persisted under <dir>/<user>/transactions.json.
type TransactionStore struct {
	dir string
	log *logrus.Logger

	mu      sync.RWMutex
	entries map[string][]domain.Transaction
}

// NewTransactionStore creates a store. An empty dir keeps everything in memory.
func NewTransactionStore(dir string, log *logrus.Logger) *TransactionStore {
	return &TransactionStore{dir: dir, log: log, entries: make(map[string][]domain.Transaction)}
}

// Open loads the user's transactions. Opening an already open user is a no-op.
func (s *TransactionStore) Open(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[userID]; ok {
		return nil
	}

	txs, err := loadEntries[domain.Transaction](s.path(userID), transactionsKind)
	if err != nil {
		return err
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}
	s.entries[userID] = txs
	s.log.WithFields(logrus.Fields{"user_id": userID, "count": len(txs)}).Debug("transaction cache opened")
	return nil
}

// Close evicts the user's entry from memory. Persisted data stays on disk.
func (s *TransactionStore) Close(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
}

// Sum returns the signed total of the user's transactions; zero for unknown users.
func (s *TransactionStore) Sum(userID string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.SumTransactions(s.entries[userID])
}

// List returns a copy of the user's transactions in insertion order.
func (s *TransactionStore) List(userID string) []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cur := s.entries[userID]
	out := make([]domain.Transaction, len(cur))
	copy(out, cur)
	return out
}

// Append adds txs for the user. Nothing changes in memory if persisting fails.
func (s *TransactionStore) Append(userID string, txs ...domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.entries[userID]
	if !ok {
		return ErrUserNotOpen
	}

	next := make([]domain.Transaction, 0, len(cur)+len(txs))
	next = append(next, cur...)
	next = append(next, txs...)
	if err := saveEntries(s.path(userID), transactionsKind, next); err != nil {
		return err
	}
	s.entries[userID] = next
	return nil
}

func (s *TransactionStore) path(userID string) string {
	return userCachePath(s.dir, userID, "transactions.json")
}
