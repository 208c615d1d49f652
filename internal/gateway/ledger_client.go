package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"loan-reconciliation/internal/amortization"
	"loan-reconciliation/internal/domain"
	"loan-reconciliation/internal/ledgerapi"
	"loan-reconciliation/internal/session"
)

const maxErrorBody = 512

// HTTPLoanLedger talks to the remote loan ledger over HTTP/JSON. It is bound to one
// session: every request carries the bearer token and is refused for any other user.
type HTTPLoanLedger struct {
	baseURL string
	token   string
	userID  string
	client  *http.Client
	log     *logrus.Logger
}

// NewHTTPLoanLedger creates a client for baseURL. The user is taken from the token's
// subject, verified with secret.
func NewHTTPLoanLedger(baseURL, token string, secret []byte, timeout time.Duration, log *logrus.Logger) (*HTTPLoanLedger, error) {
	id, err := session.ParseToken(token, secret)
	if err != nil {
		return nil, err
	}
	return &HTTPLoanLedger{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		userID:  id.UserID,
		client: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}, nil
}

// UserID is the user the client's session belongs to.
func (c *HTTPLoanLedger) UserID() string {
	return c.userID
}

// ListLoans fetches all loans with their payments embedded.
func (c *HTTPLoanLedger) ListLoans(ctx context.Context, userID string) ([]domain.Loan, error) {
	const op = "list loans"
	body, err := c.do(ctx, op, userID, http.MethodGet, ledgerapi.LoansPath, nil)
	if err != nil {
		return nil, err
	}

	wire, err := ledgerapi.DecodeLoans(body)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	loans := make([]domain.Loan, 0, len(wire))
	for _, w := range wire {
		loan, err := w.ToDomain()
		if err != nil {
			return nil, &domain.TransportError{Op: op, Err: err}
		}
		c.checkDerived(w, loan)
		loans = append(loans, loan)
	}
	return loans, nil
}

// checkDerived compares the server's precomputed remaining amount with the local
// calculation and logs disagreements. The local value always wins.
func (c *HTTPLoanLedger) checkDerived(wire ledgerapi.Loan, loan domain.Loan) {
	if !wire.RemainingAmount.Valid {
		return
	}
	local := amortization.Status(loan).RemainingAmount
	if !local.Equal(wire.RemainingAmount.Decimal) {
		c.log.WithFields(logrus.Fields{
			"loan_id": loan.ID,
			"server":  wire.RemainingAmount.Decimal.String(),
			"local":   local.String(),
		}).Warn("server remaining amount disagrees with local calculation")
	}
}

// GetDebtSummary fetches the server-computed debt aggregate.
func (c *HTTPLoanLedger) GetDebtSummary(ctx context.Context, userID string) (domain.DebtSummary, error) {
	const op = "get debt summary"
	body, err := c.do(ctx, op, userID, http.MethodGet, ledgerapi.SummaryPath, nil)
	if err != nil {
		return domain.DebtSummary{}, err
	}

	var wire ledgerapi.Summary
	if err := json.Unmarshal(body, &wire); err != nil {
		return domain.DebtSummary{}, &domain.TransportError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	summary, err := wire.ToDomain()
	if err != nil {
		return domain.DebtSummary{}, &domain.TransportError{Op: op, Err: err}
	}
	return summary, nil
}

// CreateLoan posts a new loan and returns it as stored by the ledger.
func (c *HTTPLoanLedger) CreateLoan(ctx context.Context, userID string, loan domain.NewLoan) (domain.Loan, error) {
	const op = "create loan"
	body, err := c.do(ctx, op, userID, http.MethodPost, ledgerapi.LoansPath, ledgerapi.NewCreateLoanRequest(loan))
	if err != nil {
		return domain.Loan{}, err
	}

	var wire ledgerapi.Loan
	if err := json.Unmarshal(body, &wire); err != nil {
		return domain.Loan{}, &domain.TransportError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	created, err := wire.ToDomain()
	if err != nil {
		return domain.Loan{}, &domain.TransportError{Op: op, Err: err}
	}
	return created, nil
}

// DeleteLoan deletes a loan and, on the server, its payments.
func (c *HTTPLoanLedger) DeleteLoan(ctx context.Context, userID, loanID string) error {
	_, err := c.do(ctx, "delete loan", userID, http.MethodDelete, ledgerapi.Route(ledgerapi.LoanPath, loanID), nil)
	return err
}

// AddPayment records a payment against loanID.
func (c *HTTPLoanLedger) AddPayment(ctx context.Context, userID, loanID string, payment domain.NewPayment) (domain.Payment, error) {
	const op = "add payment"
	path := ledgerapi.Route(ledgerapi.AddPaymentPath, loanID)
	body, err := c.do(ctx, op, userID, http.MethodPost, path, ledgerapi.NewCreatePaymentRequest(payment))
	if err != nil {
		return domain.Payment{}, err
	}

	var wire ledgerapi.Payment
	if err := json.Unmarshal(body, &wire); err != nil {
		return domain.Payment{}, &domain.TransportError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if wire.ID == "" {
		return domain.Payment{}, &domain.TransportError{Op: op, Err: errors.New("payment without id")}
	}
	return wire.ToDomain(), nil
}

// DeletePayment deletes a single payment.
func (c *HTTPLoanLedger) DeletePayment(ctx context.Context, userID, paymentID string) error {
	_, err := c.do(ctx, "delete payment", userID, http.MethodDelete, ledgerapi.Route(ledgerapi.PaymentPath, paymentID), nil)
	return err
}

// do sends one request and returns the body of a 2xx response. Everything else becomes a
// *domain.TransportError.
func (c *HTTPLoanLedger) do(ctx context.Context, op, userID, method, path string, payload interface{}) ([]byte, error) {
	if userID != c.userID {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrSessionMismatch)
	}

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to encode request: %w", op, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.log.WithFields(logrus.Fields{"op": op, "status": resp.StatusCode}).Debugf("%s %s", method, path)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.TransportError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(errorMessage(body))}
	}
	return body, nil
}

func errorMessage(body []byte) string {
	var e ledgerapi.ErrorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	if msg == "" {
		msg = "empty response"
	}
	return msg
}
