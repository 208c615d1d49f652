package usecase

// Trigger names the event that asked for a recompute cycle.
type Trigger string

const (
	TriggerSessionChanged   Trigger = "session_changed"
	TriggerLoanCreated      Trigger = "loan_created"
	TriggerLoanDeleted      Trigger = "loan_deleted"
	TriggerPaymentAdded     Trigger = "payment_added"
	TriggerPaymentDeleted   Trigger = "payment_deleted"
	TriggerTransactionAdded Trigger = "transaction_added"
	TriggerManual           Trigger = "manual"
	TriggerFollowUp         Trigger = "follow_up"
)

// refreshesLoans reports whether the cycle must re-fetch the loan list before reconciling.
// Local transactions never touch the remote ledger.
func (t Trigger) refreshesLoans() bool {
	switch t {
	case TriggerTransactionAdded, TriggerFollowUp:
		return false
	}
	return true
}
