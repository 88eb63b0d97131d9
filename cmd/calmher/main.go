package main

import (
	"github.com/alecthomas/kong"

	"github.com/julianstephens/calmher/internal/cli"
	"github.com/julianstephens/calmher/internal/config"
	"github.com/julianstephens/calmher/internal/constants"
	"github.com/julianstephens/calmher/internal/errors"
	"github.com/julianstephens/calmher/internal/logger"
	"github.com/julianstephens/calmher/internal/server"
	"github.com/julianstephens/calmher/internal/service"
	"github.com/julianstephens/calmher/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path (default $XDG_CONFIG_HOME/calmher/config.yaml)." type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Generate cli.GenerateCmd `cmd:"" help:"Generate a wellness schedule."`
	Tui      cli.TuiCmd      `cmd:"" help:"Generate a schedule and browse it day by day."`
	Validate cli.ValidateCmd `cmd:"" help:"Check a request and report calendar problems."`
	Classify cli.ClassifyCmd `cmd:"" help:"Print the burnout category for a score."`
	Score    cli.ScoreCmd    `cmd:"" help:"Score a burnout assessment questionnaire."`
	Import   cli.ImportCmd   `cmd:"" help:"Convert an .ics file to calendar events JSON."`
	Serve    cli.ServeCmd    `cmd:"" help:"Run the HTTP API."`
	Init     cli.InitCmd     `cmd:"" help:"Initialize calmher storage."`
	Keyring  cli.KeyringCmd  `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Backup   cli.BackupCmd   `cmd:"" help:"Manage SQLite database backups."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks."`
	Debug    cli.DebugCmd    `cmd:"" help:"Inspect paths and configuration."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Burnout-aware wellness schedule generator"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := config.Init(CLI.Config); err != nil {
		errors.Fatalf("failed to read config: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		errors.Fatalf("invalid configuration: %v", err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Logging.Debug || CLI.Verbose, Dir: cfg.Logging.Dir}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	sink, err := storage.Open(storage.Options{
		Driver:  cfg.Storage.Driver,
		Path:    cfg.StoragePath(),
		DSN:     cfg.Storage.DSN,
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})
	if err != nil {
		// commands that never persist still work
		logger.Warn("Storage unavailable", "driver", cfg.Storage.Driver, "error", err)
		sink = storage.UnavailableSink{Err: err}
	}
	defer sink.Close()

	metrics := server.NewMetrics()
	svc := service.New(
		service.WithLocation(cfg.Location()),
		service.WithSink(sink),
		service.WithObserver(metrics),
	)

	appCtx := &cli.Context{
		Config:  cfg,
		Service: svc,
		Sink:    sink,
		Metrics: metrics,
	}

	if err := ctx.Run(appCtx); err != nil {
		sink.Close()
		errors.Fatal(err)
	}
}
