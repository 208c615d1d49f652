package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"loan-reconciliation/internal/domain"
)

// CSVTransactionReader parses bank-statement style CSV exports into local transactions.
// Expected columns: id, amount, date (YYYY-MM-DD), description. Negative amounts are
// expenses, positive amounts are income.
type CSVTransactionReader struct{}

// NewCSVTransactionReader creates a new reader instance.
func NewCSVTransactionReader() *CSVTransactionReader {
	return &CSVTransactionReader{}
}

// ReadTransactions reads and normalizes every statement file in paths.
func (r *CSVTransactionReader) ReadTransactions(ctx context.Context, paths []string) ([]domain.NewTransaction, error) {
	var all []domain.NewTransaction
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		txs, err := r.readFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, txs...)
	}
	return all, nil
}

func (r *CSVTransactionReader) readFile(path string) ([]domain.NewTransaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 4
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	source := filepath.Base(path)
	var transactions []domain.NewTransaction
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		amount, err := decimal.NewFromString(record[1])
		if err != nil {
			return nil, fmt.Errorf("could not parse amount '%s': %w", record[1], err)
		}
		if amount.IsZero() {
			return nil, fmt.Errorf("zero amount in record '%s' of %s", record[0], path)
		}

		date, err := time.Parse(time.DateOnly, record[2])
		if err != nil {
			return nil, fmt.Errorf("could not parse date '%s': %w", record[2], err)
		}

		tx := domain.NewTransaction{
			Type:        domain.TransactionTypeIncome,
			Amount:      amount,
			Date:        date,
			Description: record[3],
			Metadata:    map[string]string{"source": source, "source_id": record[0]},
		}
		// Normalize the sign into the transaction type
		if amount.IsNegative() {
			tx.Type = domain.TransactionTypeExpense
			tx.Amount = amount.Abs()
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}
