package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/explore/internal/cli"
	"github.com/alexanderramin/explore/internal/config"
	"github.com/alexanderramin/explore/internal/db"
	"github.com/alexanderramin/explore/internal/domain"
	"github.com/alexanderramin/explore/internal/nav"
	"github.com/alexanderramin/explore/internal/repository"
	"github.com/alexanderramin/explore/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Persisting sessions needs a file; fall back to ~/.explore/explore.db
	// when the path was left in memory.
	dbPath := cfg.Database.Path
	if cfg.Session.Persist && dbPath == db.MemoryPath {
		if dbPath, err = config.PersistentDBPath(); err != nil {
			return err
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Transition and use-case logging
	var logOut io.Writer
	if cfg.Log.Transitions {
		logOut = os.Stderr
		if cfg.Log.File != "" {
			f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer f.Close()
			logOut = f
		}
	}
	useCaseObserver := service.NewLogUseCaseObserver(logOut)

	// Wire repositories
	uow := db.NewSQLiteUnitOfWork(database)
	locationRepo := repository.NewSQLiteLocationRepo(database, uow)

	store, err := service.NewCatalogService(locationRepo, useCaseObserver).Load(context.Background(), cfg.Catalog.File)
	if err != nil {
		return err
	}

	app := &cli.App{
		Catalog:   store,
		Observer:  nav.NewLogObserver(logOut),
		AltScreen: cfg.UI.AltScreen,
	}

	if cfg.Session.Persist {
		app.Sessions = service.NewSessionService(repository.NewSQLiteSessionRepo(database), useCaseObserver)
	}

	// "home" is the default; leave Start unset so a restored screen wins.
	if cfg.UI.Start != "" && cfg.UI.Start != "home" {
		start, err := domain.ParseRoute(cfg.UI.Start)
		if err != nil {
			return fmt.Errorf("ui.start: %w", err)
		}
		app.Start = start
	}

	// Detect interactive terminal for the bare "explore" entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
