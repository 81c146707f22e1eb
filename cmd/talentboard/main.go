package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/mattn/go-isatty"

	"github.com/twillhq/talentboard/internal/cli"
	"github.com/twillhq/talentboard/internal/config"
	"github.com/twillhq/talentboard/internal/db"
	"github.com/twillhq/talentboard/internal/repository"
	"github.com/twillhq/talentboard/internal/service"
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
		return fmt.Errorf("loading config: %w", err)
	}
	gin.SetMode(cfg.GinMode)

	// Warn by default so command output stays clean; TALENTBOARD_LOG or
	// --verbose lowers it to Info.
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	if cfg.Log {
		level.Set(slog.LevelInfo)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	clientRepo := repository.NewSQLiteClientRepo(database)
	roleRepo := repository.NewSQLiteRoleRepo(database)
	candidateRepo := repository.NewSQLiteCandidateRepo(database)
	advisorRepo := repository.NewSQLiteAdvisorRepo(database)
	changeRepo := repository.NewSQLiteStageChangeRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewSlogUseCaseObserver(logger)

	app := &cli.App{
		Alerts:     service.NewAlertService(roleRepo, candidateRepo, clientRepo, advisorRepo),
		Roles:      service.NewRoleService(roleRepo, candidateRepo, clientRepo, advisorRepo, uow, observer),
		Candidates: service.NewCandidateService(candidateRepo, changeRepo, uow, observer),
		Metrics:    service.NewMetricsService(roleRepo, candidateRepo, clientRepo, advisorRepo),
		Import:     service.NewImportService(uow, observer),

		Clock:          cfg.Clock(),
		DefaultAdvisor: cfg.AdvisorID,
		Addr:           cfg.Addr,
		Logger:         logger,
		LogLevel:       level,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
