// Command bank runs the interactive terminal banking session.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/benx421/simple-banking/internal/card"
	"github.com/benx421/simple-banking/internal/cli"
	"github.com/benx421/simple-banking/internal/config"
	"github.com/benx421/simple-banking/internal/db"
	"github.com/benx421/simple-banking/internal/service"
)

const defaultLogFile = "bank.log"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		return 1
	}

	// Menus own the terminal, so logs go to a file unless told otherwise.
	if os.Getenv("LOG_OUTPUT") == "" {
		cfg.Logger.Output = defaultLogFile
	}

	logger, logCloser, err := cfg.Logger.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		return 1
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return 1
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		return 1
	}

	generator, err := card.NewGenerator(cfg.Card.IIN, nil)
	if err != nil {
		logger.Error("failed to create card generator", "error", err)
		return 1
	}

	accounts := service.NewAccountService(database, generator, cfg.Card.MaxRetries, logger)
	session := cli.NewSession(os.Stdin, os.Stdout, cli.Services{
		Issuer:        accounts,
		Authenticator: accounts,
		Teller:        accounts,
		Transferrer:   service.NewTransferService(database),
		Closer:        service.NewClosureService(database),
	}, logger)

	if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("session failed", "error", err)
		return 1
	}

	return 0
}
