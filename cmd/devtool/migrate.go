package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/Scoreline_Go/internal/config"
	"github.com/osse101/Scoreline_Go/internal/database"
	"github.com/osse101/Scoreline_Go/migrations"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply or inspect the embedded migrations (up, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status")
	}

	ctx := context.Background()
	pool, err := database.NewPool(databaseURL(), 2, config.DefaultDBMaxConnIdleTime, config.DefaultDBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		version, err := database.Migrate(ctx, pool)
		if err != nil {
			return err
		}
		PrintSuccess("Schema at version %d", version)
		return nil
	case "status":
		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect(database.MigrationsDialect); err != nil {
			return err
		}
		db := stdlib.OpenDBFromPool(pool)
		defer db.Close()
		return goose.StatusContext(ctx, db, ".")
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}
