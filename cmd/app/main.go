package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parceltrack/api"
	"parceltrack/cmd"
	httpadapter "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config := getConfigs()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.SlogLevel()}))
	slog.SetDefault(slogger)

	gormDB := mustOpenDB(config)

	app, err := cmd.NewCompositionRoot(config, gormDB)
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootstrapAdmin(ctx, app, config, slogger)

	jobManager := jobs.NewJobManager(app.CreateGetParcelStatsQueryHandler(), config.StatusReportSchedule, slogger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}

	err = startWebServer(ctx, app, config, slogger)
	jobManager.StopAll()
	stop()
	if err != nil {
		slogger.Error("HTTP server stopped", "error", err)
		os.Exit(1)
	}
}

func getConfigs() cmd.Config {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}
	return config
}

func mustOpenDB(config cmd.Config) *gorm.DB {
	dsn, err := config.DSN()
	if err != nil {
		log.Fatalf("%v", err)
	}

	gormDB, err := postgres.Open(dsn, logger.Default.LogMode(logger.Warn))
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	return gormDB
}

func bootstrapAdmin(ctx context.Context, app cmd.CompositionRoot, config cmd.Config, slogger *slog.Logger) {
	if !config.HasBootstrapAdmin() {
		return
	}

	ensureAdmin, err := commands.NewEnsureAdminCommand(config.AdminName, config.AdminEmail, config.AdminPassword)
	if err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}
	created, err := app.CreateEnsureAdminCommandHandler().Handle(ctx, ensureAdmin)
	if err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}
	if created {
		slogger.Info("Bootstrap administrator created", "email", config.AdminEmail)
	}
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, config cmd.Config, slogger *slog.Logger) error {
	doc, err := api.Load()
	if err != nil {
		return err
	}
	if err := api.RegisterSwagger(doc); err != nil {
		return err
	}

	server := httpadapter.NewServer(app.HTTPHandlers(), app.Tokens(), doc, slogger)
	e := server.Router()
	e.Logger.SetLevel(config.EchoLevel())

	return cmd.Serve(ctx, e, fmt.Sprintf("0.0.0.0:%s", config.HTTPPort), shutdownTimeout)
}
