package gateway

import (
	"sync"

	"github.com/sirupsen/logrus"

	"loan-reconciliation/internal/domain"
)

const loansKind = "loans"

// LoanSnapshotStore keeps the last successfully fetched loan list per user. It is the
// only data the fallback path reconciles from.
type LoanSnapshotStore struct {
	dir string
	log *logrus.Logger

	mu      sync.RWMutex
	entries map[string][]domain.Loan
}

// NewLoanSnapshotStore creates a store. An empty dir keeps everything in memory.
func NewLoanSnapshotStore(dir string, log *logrus.Logger) *LoanSnapshotStore {
	return &LoanSnapshotStore{dir: dir, log: log, entries: make(map[string][]domain.Loan)}
}

// Open loads the user's cached loans. Opening an already open user is a no-op.
func (s *LoanSnapshotStore) Open(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[userID]; ok {
		return nil
	}

	loans, err := loadEntries[domain.Loan](s.path(userID), loansKind)
	if err != nil {
		return err
	}
	if loans == nil {
		loans = []domain.Loan{}
	}
	s.entries[userID] = loans
	s.log.WithFields(logrus.Fields{"user_id": userID, "count": len(loans)}).Debug("loan cache opened")
	return nil
}

// Close evicts the user's entry from memory.
func (s *LoanSnapshotStore) Close(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
}

// Loans returns a copy of the cached loans, payments included.
func (s *LoanSnapshotStore) Loans(userID string) []domain.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLoans(s.entries[userID])
}

// Store replaces the user's cached loans wholesale.
func (s *LoanSnapshotStore) Store(userID string, loans []domain.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[userID]; !ok {
		return ErrUserNotOpen
	}
	return s.replaceLocked(userID, cloneLoans(loans))
}

// RemoveLoan drops a loan together with its payments.
func (s *LoanSnapshotStore) RemoveLoan(userID, loanID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.entries[userID]
	if !ok {
		return ErrUserNotOpen
	}

	next := make([]domain.Loan, 0, len(cur))
	for _, l := range cur {
		if l.ID != loanID {
			next = append(next, l)
		}
	}
	if len(next) == len(cur) {
		return domain.ErrLoanNotFound
	}
	return s.replaceLocked(userID, next)
}

// RemovePayment drops one payment from whichever loan owns it.
func (s *LoanSnapshotStore) RemovePayment(userID, paymentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.entries[userID]
	if !ok {
		return ErrUserNotOpen
	}

	next := cloneLoans(cur)
	for i, l := range next {
		for j, p := range l.Payments {
			if p.ID == paymentID {
				next[i].Payments = append(l.Payments[:j:j], l.Payments[j+1:]...)
				return s.replaceLocked(userID, next)
			}
		}
	}
	return domain.ErrPaymentNotFound
}

func (s *LoanSnapshotStore) replaceLocked(userID string, loans []domain.Loan) error {
	if err := saveEntries(s.path(userID), loansKind, loans); err != nil {
		return err
	}
	s.entries[userID] = loans
	return nil
}

func (s *LoanSnapshotStore) path(userID string) string {
	return userCachePath(s.dir, userID, "loans.json")
}

func cloneLoans(loans []domain.Loan) []domain.Loan {
	out := make([]domain.Loan, len(loans))
	for i, l := range loans {
		out[i] = l
		out[i].Payments = append([]domain.Payment(nil), l.Payments...)
	}
	return out
}
