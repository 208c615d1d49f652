package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/shopspring/decimal"

	"loan-reconciliation/internal/config"
	"loan-reconciliation/internal/domain"
	"loan-reconciliation/internal/gateway"
	"loan-reconciliation/internal/usecase"
)

const usage = `usage: reconciler <command> [flags]

commands:
  snapshot        print the reconciled balance
  loans           list loans with derived fields
  transactions    list local transactions
  add-loan        -name -amount -installments -date [-description]
  pay             -loan -amount -date [-notes]
  delete-loan     -id
  delete-payment  -id
  add-tx          -type income|expense -amount [-date] [-description]
  import          file.csv [file.csv ...]
`

// output is what every command prints: the command's result plus the snapshot after it.
type output struct {
	Result   interface{}            `json:"result,omitempty"`
	Snapshot domain.BalanceSnapshot `json:"snapshot"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	cmd, args := os.Args[1], os.Args[2:]

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	if err := cfg.RequireLedger(); err != nil {
		logger.Fatalf("config: %v", err)
	}

	ledger, err := gateway.NewHTTPLoanLedger(cfg.LedgerURL, cfg.LedgerToken, []byte(cfg.TokenSecret), cfg.HTTPTimeout, logger)
	if err != nil {
		logger.Fatalf("ledger client: %v", err)
	}
	reconciler := usecase.NewReconciliationUseCase(
		ledger,
		gateway.NewTransactionStore(cfg.CacheDir, logger),
		gateway.NewLoanSnapshotStore(cfg.CacheDir, logger),
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := reconciler.Login(ctx, ledger.UserID()); err != nil {
		logger.Fatalf("login: %v", err)
	}
	defer reconciler.Logout()

	out, err := run(ctx, reconciler, cmd, args)
	if err != nil {
		logger.WithField("command", cmd).WithError(err).Error("command failed")
		reconciler.Logout()
		os.Exit(1)
	}

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		logger.Fatalf("failed to encode output: %v", err)
	}
	fmt.Println(string(raw))
}

func run(ctx context.Context, uc *usecase.ReconciliationUseCase, cmd string, args []string) (output, error) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	var (
		result  interface{}
		trigger usecase.Trigger
		err     error
	)

	switch cmd {
	case "snapshot":
		if err := fs.Parse(args); err != nil {
			return output{}, err
		}
		return output{Snapshot: uc.Snapshot()}, nil

	case "loans":
		if err := fs.Parse(args); err != nil {
			return output{}, err
		}
		return output{Result: uc.Loans(), Snapshot: uc.Snapshot()}, nil

	case "transactions":
		if err := fs.Parse(args); err != nil {
			return output{}, err
		}
		return output{Result: uc.Transactions(), Snapshot: uc.Snapshot()}, nil

	case "add-loan":
		name := fs.String("name", "", "Loan name (required)")
		amount := fs.String("amount", "", "Principal (required)")
		installments := fs.Int("installments", 0, "Number of installments (required)")
		date := fs.String("date", "", "Start date YYYY-MM-DD (required)")
		description := fs.String("description", "", "Free-form description")
		if err := fs.Parse(args); err != nil {
			return output{}, err
		}
		req := domain.NewLoan{Name: *name, Installments: *installments, Description: *description}
		if req.Amount, err = parseAmount(*amount); err != nil {
			return output{}, err
		}
		if req.Date, err = parseDate(*date); err != nil {
			return output{}, err
		}
		result, err = uc.CreateLoan(ctx, req)
		trigger = usecase.TriggerLoanCreated

	case "pay":
		loanID := fs.String("loan", "", "Loan id (required)")
		amount := fs.String("amount", "", "Payment amount (required)")
		date := fs.String("date", "", "Payment date YYYY-MM-DD (required)")
		notes := fs.String("notes", "", "Free-form notes")
		if err := fs.Parse(args); err != nil {
			return output{}, err
		}
		req := domain.NewPayment{Notes: *notes}
		if req.Amount, err = parseAmount(*amount); err != nil {
			return output{}, err
		}
		if req.Date, err = parseDate(*date); err != nil {
			return output{}, err
		}
		result, err = uc.AddPayment(ctx, *loanID, req)
		trigger = usecase.TriggerPaymentAdded

	case "delete-loan":
		id := fs.String("id", "", "Loan id (required)")
		if err := fs.Parse(args); err != nil {
			return output{}, err
		}
		err = uc.DeleteLoan(ctx, *id)
		trigger = usecase.TriggerLoanDeleted

	case "delete-payment":
		id := fs.String("id", "", "Payment id (required)")
		if err := fs.Parse(args); err != nil {
			return output{}, err
		}
		err = uc.DeletePayment(ctx, *id)
		trigger = usecase.TriggerPaymentDeleted

	case "add-tx":
		typ := fs.String("type", "", "income or expense (required)")
		amount := fs.String("amount", "", "Amount (required)")
		date := fs.String("date", "", "Date YYYY-MM-DD, defaults to now")
		description := fs.String("description", "", "Free-form description")
		if err := fs.Parse(args); err != nil {
			return output{}, err
		}
		req := domain.NewTransaction{Type: domain.TransactionType(*typ), Description: *description}
		if req.Amount, err = parseAmount(*amount); err != nil {
			return output{}, err
		}
		if *date != "" {
			if req.Date, err = parseDate(*date); err != nil {
				return output{}, err
			}
		}
		result, err = uc.AddTransaction(ctx, req)
		trigger = usecase.TriggerTransactionAdded

	case "import":
		if err := fs.Parse(args); err != nil {
			return output{}, err
		}
		if fs.NArg() == 0 {
			return output{}, fmt.Errorf("import needs at least one CSV file")
		}
		var reqs []domain.NewTransaction
		reqs, err = gateway.NewCSVTransactionReader().ReadTransactions(ctx, fs.Args())
		if err != nil {
			return output{}, err
		}
		result, err = uc.ImportTransactions(ctx, reqs)
		trigger = usecase.TriggerTransactionAdded

	default:
		fmt.Fprint(os.Stderr, usage)
		return output{}, fmt.Errorf("unknown command %q", cmd)
	}

	if err != nil {
		return output{}, err
	}
	return output{Result: result, Snapshot: uc.Recompute(ctx, trigger)}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return date, nil
}
