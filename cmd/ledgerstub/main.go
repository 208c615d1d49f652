package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loan-reconciliation/internal/config"
	"loan-reconciliation/internal/ledgerstub"
	"loan-reconciliation/internal/session"
)

func main() {
	issue := flag.String("issue", "", "Print a bearer token for this user id and exit")
	ttl := flag.Duration("ttl", 24*time.Hour, "Lifetime of tokens printed with -issue")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	secret := []byte(cfg.TokenSecret)

	if *issue != "" {
		token, err := session.IssueToken(*issue, secret, *ttl)
		if err != nil {
			logger.Fatalf("Failed to issue token: %v", err)
		}
		fmt.Println(token)
		return
	}

	stub := ledgerstub.NewServer(ledgerstub.NewStore(), secret, logger)
	server := &http.Server{
		Addr:         cfg.StubAddr,
		Handler:      stub.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("shutdown failed")
		}
	}()

	logger.Infof("Starting ledger stub on %s", cfg.StubAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("Server failed: %v", err)
	}
}
