// Package ledgerapi holds the JSON contract of the remote loan ledger: request and
// response bodies, route templates and their conversion to domain types.
package ledgerapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"loan-reconciliation/internal/domain"
)

// Routes, relative to the ledger base URL.
const (
	LoansPath        = "/loans/"
	SummaryPath      = "/loans/summary/"
	LoanPath         = "/loans/{id}/"
	AddPaymentPath   = "/loans/{id}/add_payment/"
	LoanPaymentsPath = "/loans/{id}/payments/"
	PaymentPath      = "/loan-payments/{id}/"
)

// Route fills the {id} placeholder of a route template.
func Route(tmpl, id string) string {
	return strings.Replace(tmpl, "{id}", url.PathEscape(id), 1)
}

// ID accepts numeric or string ids and always encodes as a string.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Date is a calendar date encoded as YYYY-MM-DD. RFC 3339 timestamps are accepted on input.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(time.DateOnly))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = Date(t)
			return nil
		}
	}
	return fmt.Errorf("unrecognized date %q", s)
}

// Payment is a payment as embedded in a loan or returned by add_payment.
type Payment struct {
	ID     ID              `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   Date            `json:"date"`
	Notes  string          `json:"notes,omitempty"`
}

// Loan is the ledger's loan representation. The derived fields are precomputed by the
// server; clients may ignore them and recompute.
type Loan struct {
	ID           ID              `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Installments int             `json:"installments"`
	Date         Date            `json:"date"`
	Payments     []Payment       `json:"payments"`

	InstallmentAmount  decimal.NullDecimal `json:"installment_amount"`
	TotalPaid          decimal.NullDecimal `json:"total_paid"`
	RemainingAmount    decimal.NullDecimal `json:"remaining_amount"`
	PaidInstallments   *int                `json:"paid_installments,omitempty"`
	ProgressPercentage decimal.NullDecimal `json:"progress_percentage"`
	IsCompleted        *bool               `json:"is_completed,omitempty"`
}

// Page is the paginated list envelope some ledger deployments return.
type Page struct {
	Count   int    `json:"count"`
	Results []Loan `json:"results"`
}

// Summary is the body of the debt summary endpoint.
type Summary struct {
	RemainingDebt        decimal.NullDecimal `json:"remaining_debt"`
	CompletionPercentage decimal.NullDecimal `json:"completion_percentage"`
	TotalLoans           int                 `json:"total_loans"`
	ActiveLoans          int                 `json:"active_loans"`
	CompletedLoans       int                 `json:"completed_loans"`
	TotalDebt            decimal.NullDecimal `json:"total_debt"`
	TotalPaid            decimal.NullDecimal `json:"total_paid"`
}

// CreateLoanRequest is the body of POST /loans/.
type CreateLoanRequest struct {
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	Installments int             `json:"installments"`
	Date         Date            `json:"date"`
	Description  string          `json:"description,omitempty"`
}

// CreatePaymentRequest is the body of POST /loans/{id}/add_payment/.
type CreatePaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   Date            `json:"date"`
	Notes  string          `json:"notes,omitempty"`
}

// ErrorResponse is the body of non-2xx responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeLoans accepts either a bare JSON array or a Page envelope.
func DecodeLoans(raw []byte) ([]Loan, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("empty loan list body")
	}
	if raw[0] == '[' {
		var loans []Loan
		if err := json.Unmarshal(raw, &loans); err != nil {
			return nil, err
		}
		return loans, nil
	}
	var page Page
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, err
	}
	if page.Results == nil {
		return nil, errors.New("loan list envelope has no results")
	}
	return page.Results, nil
}

// PaymentFromDomain encodes a payment for the wire.
func PaymentFromDomain(p domain.Payment) Payment {
	return Payment{ID: ID(p.ID), Amount: p.Amount, Date: Date(p.Date), Notes: p.Notes}
}

// ToDomain converts a wire payment to the domain type.
func (p Payment) ToDomain() domain.Payment {
	return domain.Payment{ID: string(p.ID), Amount: p.Amount, Date: time.Time(p.Date), Notes: p.Notes}
}

// LoanFromDomain encodes a loan together with its derived fields.
func LoanFromDomain(v domain.LoanView) Loan {
	payments := make([]Payment, 0, len(v.Payments))
	for _, p := range v.Payments {
		payments = append(payments, PaymentFromDomain(p))
	}
	paidInstallments, completed := v.PaidInstallments, v.IsCompleted
	return Loan{
		ID:                 ID(v.ID),
		Name:               v.Name,
		Description:        v.Description,
		Amount:             v.Amount,
		Installments:       v.Installments,
		Date:               Date(v.Date),
		Payments:           payments,
		InstallmentAmount:  decimal.NewNullDecimal(v.InstallmentAmount),
		TotalPaid:          decimal.NewNullDecimal(v.TotalPaid),
		RemainingAmount:    decimal.NewNullDecimal(v.RemainingAmount),
		PaidInstallments:   &paidInstallments,
		ProgressPercentage: decimal.NewNullDecimal(v.ProgressPercentage),
		IsCompleted:        &completed,
	}
}

// ToDomain drops the server-computed fields; they are recomputed locally.
func (l Loan) ToDomain() (domain.Loan, error) {
	if l.ID == "" {
		return domain.Loan{}, errors.New("loan without id")
	}
	payments := make([]domain.Payment, 0, len(l.Payments))
	for _, p := range l.Payments {
		if p.ID == "" {
			return domain.Loan{}, fmt.Errorf("loan %s has a payment without id", l.ID)
		}
		payments = append(payments, p.ToDomain())
	}
	return domain.Loan{
		ID:           string(l.ID),
		Name:         l.Name,
		Amount:       l.Amount,
		Installments: l.Installments,
		Date:         time.Time(l.Date),
		Description:  l.Description,
		Payments:     payments,
	}, nil
}

// SummaryFromDomain encodes a debt summary for the wire.
func SummaryFromDomain(s domain.DebtSummary) Summary {
	return Summary{
		RemainingDebt:        decimal.NewNullDecimal(s.RemainingDebt),
		CompletionPercentage: decimal.NewNullDecimal(s.CompletionPercentage),
		TotalLoans:           s.TotalLoans,
		ActiveLoans:          s.ActiveLoans,
		CompletedLoans:       s.CompletedLoans,
		TotalDebt:            decimal.NewNullDecimal(s.TotalDebt),
		TotalPaid:            decimal.NewNullDecimal(s.TotalPaid),
	}
}

// ToDomain requires remaining_debt and completion_percentage; the counters are optional.
func (s Summary) ToDomain() (domain.DebtSummary, error) {
	if !s.RemainingDebt.Valid || !s.CompletionPercentage.Valid {
		return domain.DebtSummary{}, errors.New("summary is missing remaining_debt or completion_percentage")
	}
	return domain.DebtSummary{
		RemainingDebt:        s.RemainingDebt.Decimal,
		CompletionPercentage: s.CompletionPercentage.Decimal,
		TotalLoans:           s.TotalLoans,
		ActiveLoans:          s.ActiveLoans,
		CompletedLoans:       s.CompletedLoans,
		TotalDebt:            s.TotalDebt.Decimal,
		TotalPaid:            s.TotalPaid.Decimal,
	}, nil
}

// NewCreateLoanRequest builds the body of a create-loan call.
func NewCreateLoanRequest(n domain.NewLoan) CreateLoanRequest {
	return CreateLoanRequest{
		Name:         n.Name,
		Amount:       n.Amount,
		Installments: n.Installments,
		Date:         Date(n.Date),
		Description:  n.Description,
	}
}

// ToDomain converts a create-loan body to the domain request.
func (r CreateLoanRequest) ToDomain() domain.NewLoan {
	return domain.NewLoan{
		Name:         r.Name,
		Amount:       r.Amount,
		Installments: r.Installments,
		Date:         time.Time(r.Date),
		Description:  r.Description,
	}
}

// NewCreatePaymentRequest builds the body of an add-payment call.
func NewCreatePaymentRequest(n domain.NewPayment) CreatePaymentRequest {
	return CreatePaymentRequest{Amount: n.Amount, Date: Date(n.Date), Notes: n.Notes}
}

// ToDomain converts an add-payment body to the domain request.
func (r CreatePaymentRequest) ToDomain() domain.NewPayment {
	return domain.NewPayment{Amount: r.Amount, Date: time.Time(r.Date), Notes: r.Notes}
}
