package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dmitrymomot/essentials/internal/cli"
	"github.com/dmitrymomot/essentials/pkg/config"
	"github.com/dmitrymomot/essentials/pkg/logger"
)

func main() {
	var cfg cli.Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "essentials: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithLevelName(cfg.Level),
		logger.WithOutput(os.Stderr),
		logger.WithAttr(logger.Component("cli")),
		logger.WithContextExtractors(cli.CommandFromContext),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := cli.New(cfg, log, os.Stdout, os.Stderr, os.Stdin)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		if cli.IsUsage(err) {
			log.WarnContext(ctx, "invalid arguments", logger.Error(err))
		} else {
			log.ErrorContext(ctx, "command failed", logger.Error(err))
		}
		stop()
		os.Exit(1)
	}
}
