// Package ledgerstub is an in-memory loan ledger that serves the same HTTP contract as
// the remote service. It backs local development and integration tests.
package ledgerstub

import (
	"sync"

	"github.com/google/uuid"

	"loan-reconciliation/internal/amortization"
	"loan-reconciliation/internal/domain"
)

// Store holds loans per user. All methods return copies.
type Store struct {
	mu    sync.Mutex
	loans map[string][]domain.Loan
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{loans: make(map[string][]domain.Loan)}
}

// Seed appends loans as-is for userID. Ids are generated for loans and payments that lack one.
func (s *Store) Seed(userID string, loans ...domain.Loan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range loans {
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		payments := make([]domain.Payment, len(l.Payments))
		for i, p := range l.Payments {
			if p.ID == "" {
				p.ID = uuid.NewString()
			}
			payments[i] = p
		}
		l.Payments = payments
		s.loans[userID] = append(s.loans[userID], l)
	}
}

// List returns the user's loans with their derived fields, in creation order.
func (s *Store) List(userID string) []domain.LoanView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return amortization.Views(s.loans[userID])
}

// Get returns one of the user's loans, or domain.ErrLoanNotFound.
func (s *Store) Get(userID, loanID string) (domain.LoanView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(userID, loanID)
	if i < 0 {
		return domain.LoanView{}, domain.ErrLoanNotFound
	}
	return amortization.View(s.loans[userID][i]), nil
}

// Summary aggregates the user's loans.
func (s *Store) Summary(userID string) domain.DebtSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return amortization.Summarize(s.loans[userID])
}

// Create validates req and stores a new loan with no payments.
func (s *Store) Create(userID string, req domain.NewLoan) (domain.LoanView, error) {
	if err := req.Validate(); err != nil {
		return domain.LoanView{}, err
	}
	loan := domain.Loan{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Amount:       req.Amount,
		Installments: req.Installments,
		Date:         req.Date,
		Description:  req.Description,
		Payments:     []domain.Payment{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loans[userID] = append(s.loans[userID], loan)
	return amortization.View(loan), nil
}

// Delete removes a loan; its payments go with it.
func (s *Store) Delete(userID, loanID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(userID, loanID)
	if i < 0 {
		return domain.ErrLoanNotFound
	}
	cur := s.loans[userID]
	s.loans[userID] = append(cur[:i:i], cur[i+1:]...)
	return nil
}

// AddPayment validates req and appends a payment to the loan.
func (s *Store) AddPayment(userID, loanID string, req domain.NewPayment) (domain.Payment, error) {
	if err := req.Validate(); err != nil {
		return domain.Payment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(userID, loanID)
	if i < 0 {
		return domain.Payment{}, domain.ErrLoanNotFound
	}
	p := domain.Payment{ID: uuid.NewString(), Amount: req.Amount, Date: req.Date, Notes: req.Notes}
	loan := &s.loans[userID][i]
	loan.Payments = append(loan.Payments[:len(loan.Payments):len(loan.Payments)], p)
	return p, nil
}

// Payments lists a loan's payments in insertion order.
func (s *Store) Payments(userID, loanID string) ([]domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(userID, loanID)
	if i < 0 {
		return nil, domain.ErrLoanNotFound
	}
	return append([]domain.Payment{}, s.loans[userID][i].Payments...), nil
}

// DeletePayment removes a payment from whichever of the user's loans owns it.
func (s *Store) DeletePayment(userID, paymentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.loans[userID] {
		loan := &s.loans[userID][i]
		for j, p := range loan.Payments {
			if p.ID == paymentID {
				loan.Payments = append(loan.Payments[:j:j], loan.Payments[j+1:]...)
				return nil
			}
		}
	}
	return domain.ErrPaymentNotFound
}

func (s *Store) indexLocked(userID, loanID string) int {
	for i, l := range s.loans[userID] {
		if l.ID == loanID {
			return i
		}
	}
	return -1
}
