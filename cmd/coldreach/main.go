package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"coldreach/config"
	"coldreach/internal/client"
	"coldreach/internal/clipboard"
	"coldreach/internal/logger"
	"coldreach/internal/notify"
	"coldreach/internal/orchestrator"
	"coldreach/internal/prompts"
	"coldreach/internal/theme"
	"coldreach/internal/tui"
	"coldreach/internal/wallet"
)

func main() {
	os.Exit(run())
}

func run() int {
	bootLog, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	config.LoadEnvFile(bootLog)

	cfg, err := config.LoadConfig(".", bootLog)
	if err != nil {
		bootLog.Error("Cannot load config", "error", err)
		return 1
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		bootLog.Error("Cannot build logger", "error", err)
		return 1
	}
	defer log.Sync()
	log = log.With("app", "coldreach")
	cfg.WarnMissingClient(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	th := theme.Default(cfg.ColorMode)
	driver := tui.NewSurveyDriver(os.Stdout)
	notifier := notify.NewTerminal(os.Stdout, th)

	orch := orchestrator.New(client.NewPromptClient(cfg.APIURL), notifier, clipboard.System{}, log)
	w := wallet.NewManual(wallet.Config{ProjectID: cfg.ProjectID}, tui.AddressReader{Driver: driver})

	app := tui.NewApp(orch, tui.Options{
		Driver:    driver,
		Wallet:    w,
		Templates: prompts.Templates(),
		Theme:     th,
		Out:       os.Stdout,
		Logger:    log,
	})
	if err := app.Run(ctx); err != nil {
		log.Error("Landing page exited with error", "error", err)
		return 1
	}
	return 0
}
