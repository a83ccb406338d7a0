package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/cmlabs-hris/hrms-lite-go/internal/config"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
)

var errUsage = errors.New("usage")

type command struct {
	name string
	// steps for down, target version for force
	arg int
}

func main() {
	flag.Parse()

	cmd, err := parseCommand(flag.Args())
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		usage()
		os.Exit(1)
	}

	if err := run(cmd); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, errUsage
	}

	switch args[0] {
	case "up", "version":
		return command{name: args[0]}, nil

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return command{}, fmt.Errorf("down: invalid steps argument %q", args[1])
			}
			steps = n
		}
		return command{name: "down", arg: steps}, nil

	case "force":
		if len(args) < 2 {
			return command{}, fmt.Errorf("force: version argument required")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return command{}, fmt.Errorf("force: invalid version %q", args[1])
		}
		return command{name: "force", arg: v}, nil
	}

	return command{}, errUsage
}

func run(cmd command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.SetDefault(logger.New(os.Stderr, logger.Options{
		AppName: cfg.App.Name,
		Version: cfg.App.Version,
		Env:     cfg.App.Env,
		Level:   logger.ParseLevel(cfg.App.LogLevel),
	}))

	m, err := database.NewMigrator(cfg.DatabaseURL())
	if err != nil {
		return err
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			slog.Warn("failed to close migrator", "source_error", srcErr, "database_error", dbErr)
		}
	}()

	switch cmd.name {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("up failed: %w", err)
		}
		slog.Info("migrations: up completed")

	case "down":
		if err := m.Steps(-cmd.arg); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("down failed: %w", err)
		}
		slog.Info("migrations: down completed", "steps", cmd.arg)

	case "version":
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("version failed: %w", err)
		}
		fmt.Printf("version: %d  dirty: %v\n", v, dirty)

	case "force":
		if err := m.Force(cmd.arg); err != nil {
			return fmt.Errorf("force failed: %w", err)
		}
		slog.Info("migrations: forced", "version", cmd.arg)
	}

	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate <command> [args]

Commands:
  up           Apply all pending migrations
  down [N]     Roll back N migrations (default: 1)
  version      Print current migration version
  force <V>    Force set migration version (clears dirty state)

The database is selected with the DB_* variables from the environment or .env.`)
}
