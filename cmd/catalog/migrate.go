// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"catalog/internal/config"
	"catalog/internal/database"
)

func migrate(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogger(cfg)

	db, err := database.Connect(c.Context, cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(c.Context, db); err != nil {
		return err
	}

	version, err := database.Version(c.Context, db)
	if err != nil {
		return err
	}
	slog.Info("schema up to date", "version", version)
	return nil
}
