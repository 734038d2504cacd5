package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kintai-dev/kintai/internal/cli"
	"github.com/kintai-dev/kintai/internal/db"
	"github.com/kintai-dev/kintai/internal/repository"
	"github.com/kintai-dev/kintai/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.kintai/kintai.db
	dbPath := os.Getenv("KINTAI_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".kintai", "kintai.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	stampRepo := repository.NewSQLiteStampRepo(database)
	employeeRepo := repository.NewSQLiteEmployeeRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Attendance: service.NewAttendanceService(stampRepo, employeeRepo, settingsRepo, uow),
		Employees:  service.NewEmployeeService(employeeRepo),
		Settings:   service.NewSettingsService(settingsRepo),
		Extractor:  cli.JSONVectorExtractor{},
	}

	// Confirmation prompts only make sense on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
