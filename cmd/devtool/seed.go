package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const demoSeedFile = "internal/database/seeds/demo.sql"

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Seed a demo season with teams, rounds, matches and users"
}

func (c *SeedCommand) Run(args []string) error {
	dbURL := databaseURL()
	PrintInfo("Connecting to database: %s", redactPassword(dbURL))

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	file := demoSeedFile
	if len(args) > 0 {
		file = args[0]
	}

	PrintInfo("Executing %s...", file)
	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", file, err)
	}
	if _, err := db.Exec(string(content)); err != nil {
		return fmt.Errorf("failed to execute seed file %s: %w", file, err)
	}

	PrintSuccess("Seed completed successfully")
	return nil
}
