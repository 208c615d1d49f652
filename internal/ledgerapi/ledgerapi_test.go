package ledgerapi

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-reconciliation/internal/domain"
)

func TestDecodeLoans(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantIDs []string
		wantErr bool
	}{
		{
			name:    "bare list with numeric ids and decimal strings",
			body:    `[{"id": 7, "name": "Car", "amount": "1200.00", "installments": 12, "date": "2025-01-15", "payments": [{"id": 3, "amount": "100.00", "date": "2025-02-15"}]}]`,
			wantIDs: []string{"7"},
		},
		{
			name:    "paginated envelope with string ids",
			body:    `{"count": 2, "results": [{"id": "a", "name": "A", "amount": 10, "installments": 1, "date": "2025-01-01", "payments": []}, {"id": "b", "name": "B", "amount": 20, "installments": 2, "date": "2025-01-01T00:00:00Z", "payments": []}]}`,
			wantIDs: []string{"a", "b"},
		},
		{name: "empty body", body: ``, wantErr: true},
		{name: "envelope without results", body: `{"detail": "nope"}`, wantErr: true},
		{name: "bad date", body: `[{"id": 1, "date": "15/01/2025"}]`, wantErr: true},
		{name: "bad id", body: `[{"id": true}]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loans, err := DecodeLoans([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			var ids []string
			for _, l := range loans {
				ids = append(ids, string(l.ID))
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestLoan_ToDomain(t *testing.T) {
	loans, err := DecodeLoans([]byte(`[{"id": 7, "name": "Car", "description": "used", "amount": "1200.00", "installments": 12, "date": "2025-01-15",
		"payments": [{"id": 3, "amount": "100.00", "date": "2025-02-15", "notes": "first"}],
		"remaining_amount": "1100.00", "is_completed": false}]`))
	require.NoError(t, err)

	got, err := loans[0].ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "7", got.ID)
	assert.Equal(t, "Car", got.Name)
	assert.Equal(t, "used", got.Description)
	assert.True(t, decimal.NewFromInt(1200).Equal(got.Amount))
	assert.Equal(t, 12, got.Installments)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), got.Date)
	require.Len(t, got.Payments, 1)
	assert.Equal(t, "3", got.Payments[0].ID)
	assert.Equal(t, "first", got.Payments[0].Notes)
	assert.True(t, loans[0].RemainingAmount.Valid)

	_, err = Loan{Name: "no id"}.ToDomain()
	assert.Error(t, err)
	_, err = Loan{ID: "1", Payments: []Payment{{}}}.ToDomain()
	assert.Error(t, err)
}

func TestSummary_ToDomain(t *testing.T) {
	var s Summary
	require.NoError(t, json.Unmarshal([]byte(`{"remaining_debt": "900.00", "completion_percentage": 10, "total_loans": 2}`), &s))
	got, err := s.ToDomain()
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(900).Equal(got.RemainingDebt))
	assert.True(t, decimal.NewFromInt(10).Equal(got.CompletionPercentage))
	assert.Equal(t, 2, got.TotalLoans)

	var missing Summary
	require.NoError(t, json.Unmarshal([]byte(`{"remaining_debt": null}`), &missing))
	_, err = missing.ToDomain()
	assert.Error(t, err)
}

func TestLoanFromDomain_EncodesDateOnly(t *testing.T) {
	view := domain.LoanView{Loan: domain.Loan{
		ID:   "1",
		Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}}
	raw, err := json.Marshal(LoanFromDomain(view))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"date":"2025-03-01"`)
	assert.Contains(t, string(raw), `"is_completed":false`)
}

func TestRoute(t *testing.T) {
	assert.Equal(t, "/loans/12/add_payment/", Route(AddPaymentPath, "12"))
	assert.Equal(t, "/loan-payments/a%2Fb/", Route(PaymentPath, "a/b"))
}
