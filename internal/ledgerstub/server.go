package ledgerstub

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"loan-reconciliation/internal/domain"
	"loan-reconciliation/internal/ledgerapi"
	"loan-reconciliation/internal/session"
)

type ctxKey struct{}

// Server exposes a Store over the ledger's HTTP contract.
type Server struct {
	store  *Store
	secret []byte
	log    *logrus.Logger

	mu            sync.RWMutex
	summaryStatus int
}

// NewServer creates a server over store that accepts tokens signed with secret.
func NewServer(store *Store, secret []byte, log *logrus.Logger) *Server {
	return &Server{store: store, secret: secret, log: log}
}

// FailSummary makes the summary endpoint answer with status until called again with 0.
// It simulates a partial outage of the remote ledger.
func (s *Server) FailSummary(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaryStatus = status
}

// Router builds the route table. The summary route is registered before the
// /loans/{id}/ routes so "summary" is never taken for a loan id.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.authenticate)

	r.HandleFunc(ledgerapi.SummaryPath, s.summary).Methods(http.MethodGet)
	r.HandleFunc(ledgerapi.LoansPath, s.listLoans).Methods(http.MethodGet)
	r.HandleFunc(ledgerapi.LoansPath, s.createLoan).Methods(http.MethodPost)
	r.HandleFunc(ledgerapi.LoanPath, s.getLoan).Methods(http.MethodGet)
	r.HandleFunc(ledgerapi.LoanPath, s.deleteLoan).Methods(http.MethodDelete)
	r.HandleFunc(ledgerapi.AddPaymentPath, s.addPayment).Methods(http.MethodPost)
	r.HandleFunc(ledgerapi.LoanPaymentsPath, s.listPayments).Methods(http.MethodGet)
	r.HandleFunc(ledgerapi.PaymentPath, s.deletePayment).Methods(http.MethodDelete)
	return r
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			s.writeErr(w, errors.New("missing bearer token"), http.StatusUnauthorized)
			return
		}
		id, err := session.ParseToken(token, s.secret)
		if err != nil {
			s.writeErr(w, err, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id.UserID)))
	})
}

func userID(r *http.Request) string {
	id, _ := r.Context().Value(ctxKey{}).(string)
	return id
}

func (s *Server) listLoans(w http.ResponseWriter, r *http.Request) {
	views := s.store.List(userID(r))
	out := make([]ledgerapi.Loan, 0, len(views))
	for _, v := range views {
		out = append(out, ledgerapi.LoanFromDomain(v))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	status := s.summaryStatus
	s.mu.RUnlock()
	if status != 0 {
		s.writeErr(w, errors.New("summary unavailable"), status)
		return
	}
	s.writeJSON(w, http.StatusOK, ledgerapi.SummaryFromDomain(s.store.Summary(userID(r))))
}

func (s *Server) createLoan(w http.ResponseWriter, r *http.Request) {
	var req ledgerapi.CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErr(w, err, http.StatusBadRequest)
		return
	}
	view, err := s.store.Create(userID(r), req.ToDomain())
	if err != nil {
		s.writeErr(w, err, statusFor(err))
		return
	}
	s.log.WithFields(logrus.Fields{"user_id": userID(r), "loan_id": view.ID}).Info("loan created")
	s.writeJSON(w, http.StatusCreated, ledgerapi.LoanFromDomain(view))
}

func (s *Server) getLoan(w http.ResponseWriter, r *http.Request) {
	view, err := s.store.Get(userID(r), mux.Vars(r)["id"])
	if err != nil {
		s.writeErr(w, err, statusFor(err))
		return
	}
	s.writeJSON(w, http.StatusOK, ledgerapi.LoanFromDomain(view))
}

func (s *Server) deleteLoan(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(userID(r), mux.Vars(r)["id"]); err != nil {
		s.writeErr(w, err, statusFor(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addPayment(w http.ResponseWriter, r *http.Request) {
	var req ledgerapi.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErr(w, err, http.StatusBadRequest)
		return
	}
	p, err := s.store.AddPayment(userID(r), mux.Vars(r)["id"], req.ToDomain())
	if err != nil {
		s.writeErr(w, err, statusFor(err))
		return
	}
	s.writeJSON(w, http.StatusCreated, ledgerapi.PaymentFromDomain(p))
}

func (s *Server) listPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := s.store.Payments(userID(r), mux.Vars(r)["id"])
	if err != nil {
		s.writeErr(w, err, statusFor(err))
		return
	}
	out := make([]ledgerapi.Payment, 0, len(payments))
	for _, p := range payments {
		out = append(out, ledgerapi.PaymentFromDomain(p))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) deletePayment(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeletePayment(userID(r), mux.Vars(r)["id"]); err != nil {
		s.writeErr(w, err, statusFor(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrLoanNotFound), errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// writeJSON sends v with code. The status is already on the wire when encoding fails, so
// the failure is only logged.
func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).WithField("status", code).Error("failed to write response")
	}
}

func (s *Server) writeErr(w http.ResponseWriter, err error, code int) {
	s.writeJSON(w, code, ledgerapi.ErrorResponse{Error: err.Error()})
}
