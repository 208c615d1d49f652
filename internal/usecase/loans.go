package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"loan-reconciliation/internal/amortization"
	"loan-reconciliation/internal/domain"
)

// Loan writes are fire-and-confirm: they validate, call the ledger and report the outcome.
// None of them recompute; callers follow a successful write with Recompute.

// CreateLoan validates req and creates the loan on the remote ledger.
func (uc *ReconciliationUseCase) CreateLoan(ctx context.Context, req domain.NewLoan) (domain.LoanView, error) {
	userID, err := uc.requireUser()
	if err != nil {
		return domain.LoanView{}, err
	}
	if err := req.Validate(); err != nil {
		return domain.LoanView{}, err
	}

	loan, err := uc.ledger.CreateLoan(ctx, userID, req)
	if err != nil {
		uc.log.WithError(err).WithField("user_id", userID).Error("could not create loan")
		return domain.LoanView{}, &domain.WriteError{Op: "create loan", Err: err}
	}

	uc.log.WithFields(logrus.Fields{"user_id": userID, "loan_id": loan.ID}).Info("loan created")
	return amortization.View(loan), nil
}

// DeleteLoan removes the loan remotely and, once confirmed, drops it and its payments
// from the cached loan list.
func (uc *ReconciliationUseCase) DeleteLoan(ctx context.Context, loanID string) error {
	userID, err := uc.requireUser()
	if err != nil {
		return err
	}
	if loanID == "" {
		return &domain.ValidationError{Field: "loan id", Reason: "is required"}
	}

	logger := uc.log.WithFields(logrus.Fields{"user_id": userID, "loan_id": loanID})
	if err := uc.ledger.DeleteLoan(ctx, userID, loanID); err != nil {
		logger.WithError(err).Error("could not delete loan")
		return &domain.WriteError{Op: "delete loan", Err: err}
	}

	if err := uc.loanCache.RemoveLoan(userID, loanID); err != nil && !errors.Is(err, domain.ErrLoanNotFound) {
		logger.WithError(err).Warn("could not drop deleted loan from cache")
	}
	logger.Info("loan deleted")
	return nil
}

// AddPayment validates req and records the payment against loanID.
func (uc *ReconciliationUseCase) AddPayment(ctx context.Context, loanID string, req domain.NewPayment) (domain.Payment, error) {
	userID, err := uc.requireUser()
	if err != nil {
		return domain.Payment{}, err
	}
	if loanID == "" {
		return domain.Payment{}, &domain.ValidationError{Field: "loan id", Reason: "is required"}
	}
	if err := req.Validate(); err != nil {
		return domain.Payment{}, err
	}

	logger := uc.log.WithFields(logrus.Fields{"user_id": userID, "loan_id": loanID})
	payment, err := uc.ledger.AddPayment(ctx, userID, loanID, req)
	if err != nil {
		logger.WithError(err).Error("could not add payment")
		return domain.Payment{}, &domain.WriteError{Op: "add payment", Err: err}
	}

	logger.WithField("payment_id", payment.ID).Info("payment added")
	return payment, nil
}

// DeletePayment removes a payment as an administrative correction.
func (uc *ReconciliationUseCase) DeletePayment(ctx context.Context, paymentID string) error {
	userID, err := uc.requireUser()
	if err != nil {
		return err
	}
	if paymentID == "" {
		return &domain.ValidationError{Field: "payment id", Reason: "is required"}
	}

	logger := uc.log.WithFields(logrus.Fields{"user_id": userID, "payment_id": paymentID})
	if err := uc.ledger.DeletePayment(ctx, userID, paymentID); err != nil {
		logger.WithError(err).Error("could not delete payment")
		return &domain.WriteError{Op: "delete payment", Err: err}
	}

	if err := uc.loanCache.RemovePayment(userID, paymentID); err != nil && !errors.Is(err, domain.ErrPaymentNotFound) {
		logger.WithError(err).Warn("could not drop deleted payment from cache")
	}
	logger.Info("payment deleted")
	return nil
}
