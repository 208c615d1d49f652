package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"loan-reconciliation/internal/amortization"
	"loan-reconciliation/internal/domain"
)

const (
	pathIdle     = "idle"
	pathRemote   = "remote"
	pathFallback = "fallback"
)

// ReconciliationUseCase orchestrates balance reconciliation for the signed-in user.
// It runs at most one cycle at a time; triggers arriving mid-cycle collapse into a
// single follow-up cycle.
type ReconciliationUseCase struct {
	ledger       LoanLedgerClient
	transactions TransactionLedger
	loanCache    LoanSnapshotCache
	log          *logrus.Logger

	mu           sync.Mutex
	userID       string
	generation   uint64
	cancelCycle  context.CancelFunc
	running      bool
	pending      bool
	pendingLoans bool
	snapshot     domain.BalanceSnapshot
	listeners    []func(domain.BalanceSnapshot)
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(ledger LoanLedgerClient, transactions TransactionLedger, loanCache LoanSnapshotCache, log *logrus.Logger) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		ledger:       ledger,
		transactions: transactions,
		loanCache:    loanCache,
		log:          log,
		snapshot:     domain.ZeroSnapshot(),
	}
}

// Login starts a session for userID: it opens the user's caches and runs a cycle that
// also refreshes the loan list. Switching users ends the previous session first.
func (uc *ReconciliationUseCase) Login(ctx context.Context, userID string) error {
	if userID == "" {
		uc.Logout()
		return domain.ErrNoUser
	}

	uc.mu.Lock()
	prev := uc.userID
	if prev == userID {
		uc.mu.Unlock()
		uc.Recompute(ctx, TriggerSessionChanged)
		return nil
	}
	uc.endSessionLocked()
	uc.mu.Unlock()
	uc.closeCaches(prev)

	if err := uc.transactions.Open(userID); err != nil {
		return fmt.Errorf("could not open transaction cache: %w", err)
	}
	if err := uc.loanCache.Open(userID); err != nil {
		uc.transactions.Close(userID)
		return fmt.Errorf("could not open loan cache: %w", err)
	}

	uc.mu.Lock()
	uc.userID = userID
	uc.mu.Unlock()

	uc.log.WithField("user_id", userID).Info("session started")
	uc.Recompute(ctx, TriggerSessionChanged)
	return nil
}

// Logout ends the session. Any in-flight cycle is cancelled and its result discarded,
// and the zero snapshot is published.
func (uc *ReconciliationUseCase) Logout() {
	uc.mu.Lock()
	prev := uc.userID
	uc.endSessionLocked()
	snap := uc.snapshot
	listeners := uc.listenersLocked()
	uc.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
	uc.closeCaches(prev)
	if prev != "" {
		uc.log.WithField("user_id", prev).Info("session ended")
	}
}

// endSessionLocked invalidates the current session. Callers hold uc.mu.
func (uc *ReconciliationUseCase) endSessionLocked() {
	uc.userID = ""
	uc.generation++
	if uc.cancelCycle != nil {
		uc.cancelCycle()
		uc.cancelCycle = nil
	}
	uc.snapshot = domain.ZeroSnapshot()
}

func (uc *ReconciliationUseCase) closeCaches(userID string) {
	if userID == "" {
		return
	}
	uc.transactions.Close(userID)
	uc.loanCache.Close(userID)
}

// Recompute runs one reconciliation cycle and returns the snapshot published when it
// completes. If a cycle is already running, the trigger is folded into one follow-up
// cycle run by the in-flight caller, and the current snapshot is returned immediately.
func (uc *ReconciliationUseCase) Recompute(ctx context.Context, trigger Trigger) domain.BalanceSnapshot {
	uc.mu.Lock()
	if uc.running {
		uc.pending = true
		uc.pendingLoans = uc.pendingLoans || trigger.refreshesLoans()
		snap := uc.snapshot
		uc.mu.Unlock()
		uc.log.WithField("trigger", trigger).Debug("recompute coalesced into in-flight cycle")
		return snap
	}
	uc.running = true
	uc.mu.Unlock()

	refresh := trigger.refreshesLoans()
	for {
		uc.runCycle(ctx, trigger, refresh)

		uc.mu.Lock()
		if !uc.pending {
			uc.running = false
			snap := uc.snapshot
			uc.mu.Unlock()
			return snap
		}
		refresh = uc.pendingLoans
		uc.pending, uc.pendingLoans = false, false
		uc.mu.Unlock()
		trigger = TriggerFollowUp
	}
}

// runCycle reads the local balance, optionally refreshes the cached loans, then tries the
// remote debt summary and falls back to the cached loans exactly once if it fails.
func (uc *ReconciliationUseCase) runCycle(ctx context.Context, trigger Trigger, refresh bool) {
	uc.mu.Lock()
	userID, gen := uc.userID, uc.generation
	cycleCtx, cancel := context.WithCancel(ctx)
	uc.cancelCycle = cancel
	uc.mu.Unlock()
	defer cancel()

	logger := uc.log.WithFields(logrus.Fields{"user_id": userID, "trigger": trigger})
	if userID == "" {
		uc.publish(gen, domain.ZeroSnapshot(), logger.WithField("path", pathIdle))
		return
	}

	balance := uc.transactions.Sum(userID)

	if refresh {
		uc.refreshLoans(cycleCtx, userID, gen, logger)
	}

	summary, err := uc.ledger.GetDebtSummary(cycleCtx, userID)
	if err == nil {
		bounded, clamped := summary.Clamp()
		if clamped {
			logger.WithFields(logrus.Fields{
				"remaining_debt":        summary.RemainingDebt.String(),
				"completion_percentage": summary.CompletionPercentage.String(),
			}).Warn("debt summary out of range, clamping")
		}
		summary = bounded
		snap := domain.NewBalanceSnapshot(balance, summary.RemainingDebt, summary.CompletionPercentage)
		uc.publish(gen, snap, logger.WithField("path", pathRemote))
		return
	}

	if !uc.isCurrent(gen) {
		logger.WithError(err).Debug("session ended mid-cycle, skipping fallback")
		return
	}
	logger.WithError(err).Warn("debt summary unavailable, reconciling from cached loans")

	local := amortization.Summarize(uc.loanCache.Loans(userID))
	snap := domain.NewBalanceSnapshot(balance, local.RemainingDebt, local.CompletionPercentage)
	uc.publish(gen, snap, logger.WithField("path", pathFallback))
}

// refreshLoans replaces the cached loan list with a fresh one. On failure the previous
// list stays in place for the fallback path.
func (uc *ReconciliationUseCase) refreshLoans(ctx context.Context, userID string, gen uint64, logger *logrus.Entry) {
	loans, err := uc.ledger.ListLoans(ctx, userID)
	if err != nil {
		logger.WithError(err).Warn("could not refresh loans, keeping cached list")
		return
	}
	if !uc.isCurrent(gen) {
		logger.Debug("session ended mid-cycle, dropping fetched loans")
		return
	}
	if err := uc.loanCache.Store(userID, loans); err != nil {
		logger.WithError(err).Warn("could not cache fetched loans")
	}
}

func (uc *ReconciliationUseCase) isCurrent(gen uint64) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return gen == uc.generation
}

// publish stores snap and notifies subscribers unless the session that produced it has ended.
func (uc *ReconciliationUseCase) publish(gen uint64, snap domain.BalanceSnapshot, logger *logrus.Entry) {
	uc.mu.Lock()
	if gen != uc.generation {
		uc.mu.Unlock()
		logger.Info("discarding snapshot computed for an ended session")
		return
	}
	uc.snapshot = snap
	listeners := uc.listenersLocked()
	uc.mu.Unlock()

	logger.WithFields(logrus.Fields{
		"balance":           snap.Balance.String(),
		"total_debt":        snap.TotalDebt.String(),
		"available_balance": snap.AvailableBalance.String(),
		"debt_progress":     snap.DebtProgress.StringFixed(2),
	}).Debug("snapshot published")

	for _, fn := range listeners {
		fn(snap)
	}
}

func (uc *ReconciliationUseCase) listenersLocked() []func(domain.BalanceSnapshot) {
	out := make([]func(domain.BalanceSnapshot), len(uc.listeners))
	copy(out, uc.listeners)
	return out
}

// Subscribe registers fn to receive every published snapshot.
func (uc *ReconciliationUseCase) Subscribe(fn func(domain.BalanceSnapshot)) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.listeners = append(uc.listeners, fn)
}

// Snapshot returns the last published snapshot.
func (uc *ReconciliationUseCase) Snapshot() domain.BalanceSnapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshot
}

// UserID returns the signed-in user, or "" when there is none.
func (uc *ReconciliationUseCase) UserID() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.userID
}

func (uc *ReconciliationUseCase) requireUser() (string, error) {
	userID := uc.UserID()
	if userID == "" {
		return "", domain.ErrNoUser
	}
	return userID, nil
}

// Loans returns the last fetched loans with their derived fields attached.
func (uc *ReconciliationUseCase) Loans() []domain.LoanView {
	userID := uc.UserID()
	if userID == "" {
		return nil
	}
	return amortization.Views(uc.loanCache.Loans(userID))
}
