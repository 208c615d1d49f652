package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"loan-reconciliation/internal/domain"
)

// AddTransaction appends one local income or expense entry for the signed-in user.
func (uc *ReconciliationUseCase) AddTransaction(ctx context.Context, req domain.NewTransaction) (domain.Transaction, error) {
	txs, err := uc.ImportTransactions(ctx, []domain.NewTransaction{req})
	if err != nil {
		return domain.Transaction{}, err
	}
	return txs[0], nil
}

// ImportTransactions validates every entry before appending any of them, so a bad row
// never leaves a partial import behind.
func (uc *ReconciliationUseCase) ImportTransactions(ctx context.Context, reqs []domain.NewTransaction) ([]domain.Transaction, error) {
	userID, err := uc.requireUser()
	if err != nil {
		return nil, err
	}
	for i, req := range reqs {
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
	}
	if len(reqs) == 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	txs := make([]domain.Transaction, 0, len(reqs))
	for _, req := range reqs {
		date := req.Date
		if date.IsZero() {
			date = now
		}
		txs = append(txs, domain.Transaction{
			ID:          uuid.NewString(),
			Type:        req.Type,
			Amount:      req.Amount,
			Date:        date,
			Description: req.Description,
			Metadata:    req.Metadata,
		})
	}

	if err := uc.transactions.Append(userID, txs...); err != nil {
		uc.log.WithError(err).WithField("user_id", userID).Error("could not append transactions")
		return nil, &domain.WriteError{Op: "append transactions", Err: err}
	}

	uc.log.WithFields(logrus.Fields{"user_id": userID, "count": len(txs)}).Info("transactions added")
	return txs, nil
}

// Transactions lists the signed-in user's local transactions in insertion order.
func (uc *ReconciliationUseCase) Transactions() []domain.Transaction {
	userID := uc.UserID()
	if userID == "" {
		return nil
	}
	return uc.transactions.List(userID)
}
