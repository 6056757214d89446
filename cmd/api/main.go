package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bookshelf/internal/book"
	"bookshelf/internal/config"
	"bookshelf/internal/logger"
	"bookshelf/internal/server"

	"github.com/urfave/cli/v2"
)

func main() {
	config.LoadEnvFiles()

	app := &cli.App{
		Name:  "bookshelf",
		Usage: "in-memory bookshelf HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address (overrides APP_ADDR)"},
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging (overrides DEBUG)"},
			&cli.BoolFlag{Name: "pretty", Usage: "human-readable console logs (overrides LOG_PRETTY)"},
			&cli.Float64Flag{Name: "rate-limit", Usage: "requests per second per client, 0 disables (overrides RATE_LIMIT_RPS)"},
			&cli.DurationFlag{Name: "shutdown-timeout", Usage: "graceful shutdown timeout (overrides SHUTDOWN_TIMEOUT)"},
			&cli.StringFlag{Name: "seed", Usage: "JSON file with an array of books to load at startup"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(c, &cfg)

	log := logger.Init(logger.Options{Debug: cfg.Debug, Pretty: cfg.LogPretty})
	log.Debug().Any("cfg", cfg).Send()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	repo := book.NewMemoryRepository(log)
	svc := book.NewService(repo, book.UUIDGenerator{})

	if path := c.String("seed"); path != "" {
		n, err := seedBooks(ctx, svc, path)
		if err != nil {
			return fmt.Errorf("seed %s: %w", path, err)
		}
		log.Info().Int("books", n).Str("file", path).Msg("seed loaded")
	}

	srv := server.New(cfg, book.NewHTTPHandler(svc, log), svc, log)
	if err := srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

// applyFlags lets explicitly set flags win over the environment.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("addr") {
		cfg.Addr = c.String("addr")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("pretty") {
		cfg.LogPretty = c.Bool("pretty")
	}
	if c.IsSet("rate-limit") {
		cfg.RateLimitRPS = c.Float64("rate-limit")
	}
	if c.IsSet("shutdown-timeout") && c.Duration("shutdown-timeout") > 0 {
		cfg.ShutdownTimeout = c.Duration("shutdown-timeout")
	}
}
