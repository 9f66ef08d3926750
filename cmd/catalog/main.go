// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the catalog service. The default
// command loads configuration, connects to PostgreSQL and Valkey, and
// serves the HTTP API with graceful shutdown; "migrate" only applies the
// schema.
package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"catalog/internal/config"
)

func main() {
	app := &cli.App{
		Name:  "catalog",
		Usage: "brands, categories and items over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-file",
				Value:   ".env",
				Usage:   "dotenv file loaded before reading the environment",
				EnvVars: []string{"CATALOG_ENV_FILE"},
			},
		},
		Before: func(c *cli.Context) error {
			return config.LoadEnvFile(c.String("env-file"))
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run migrations and serve the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply pending database migrations and exit",
				Action: migrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("catalog failed", "error", err)
		os.Exit(1)
	}
}

// setupLogger installs the default slog logger: JSON in production, text
// otherwise.
func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	logger := slog.New(handler).With("service", "catalog")
	slog.SetDefault(logger)
	return logger
}
