package gateway

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-reconciliation/internal/domain"
)

func TestCSVTransactionReader_ReadTransactions(t *testing.T) {
	tests := []struct {
		name     string
		csvData  [][]string
		expected []domain.NewTransaction
		wantErr  bool
	}{
		{
			name: "signed amounts become income and expense",
			csvData: [][]string{
				{"id", "amount", "date", "description"},
				{"B001", "2000.00", "2025-09-01", "Salary"},
				{"B002", "-500.00", "2025-09-02", "Rent"},
			},
			expected: []domain.NewTransaction{
				{
					Type:        domain.TransactionTypeIncome,
					Amount:      decimal.RequireFromString("2000.00"),
					Date:        mustParseDate("2025-09-01"),
					Description: "Salary",
					Metadata:    map[string]string{"source": "statement.csv", "source_id": "B001"},
				},
				{
					Type:        domain.TransactionTypeExpense,
					Amount:      decimal.RequireFromString("500.00"),
					Date:        mustParseDate("2025-09-02"),
					Description: "Rent",
					Metadata:    map[string]string{"source": "statement.csv", "source_id": "B002"},
				},
			},
		},
		{
			name: "empty file with header only",
			csvData: [][]string{
				{"id", "amount", "date", "description"},
			},
			expected: nil,
		},
		{
			name: "invalid amount format",
			csvData: [][]string{
				{"id", "amount", "date", "description"},
				{"B001", "invalid_amount", "2025-09-01", "x"},
			},
			wantErr: true,
		},
		{
			name: "zero amount",
			csvData: [][]string{
				{"id", "amount", "date", "description"},
				{"B001", "0", "2025-09-01", "x"},
			},
			wantErr: true,
		},
		{
			name: "invalid date format",
			csvData: [][]string{
				{"id", "amount", "date", "description"},
				{"B001", "10", "09/01/2025", "x"},
			},
			wantErr: true,
		},
		{
			name: "wrong column count",
			csvData: [][]string{
				{"id", "amount", "date", "description"},
				{"B001", "10"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, tt.csvData)
			got, err := NewCSVTransactionReader().ReadTransactions(context.Background(), []string{path})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.expected))
			for i := range tt.expected {
				assert.Equal(t, tt.expected[i].Type, got[i].Type)
				assert.True(t, tt.expected[i].Amount.Equal(got[i].Amount))
				assert.Equal(t, tt.expected[i].Date, got[i].Date)
				assert.Equal(t, tt.expected[i].Description, got[i].Description)
				assert.Equal(t, tt.expected[i].Metadata, got[i].Metadata)
			}
		})
	}
}

func TestCSVTransactionReader_MissingFile(t *testing.T) {
	_, err := NewCSVTransactionReader().ReadTransactions(context.Background(), []string{filepath.Join(t.TempDir(), "nope.csv")})
	assert.Error(t, err)
}

func writeCSV(t *testing.T, records [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.csv")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	w := csv.NewWriter(file)
	require.NoError(t, w.WriteAll(records))
	return path
}

func mustParseDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}
