package main

import (
	"errors"
	"fmt"

	"finbot/internal/config"
	"finbot/internal/database"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

var errPostgresOnly = errors.New("versioned migrations are only available for the postgres driver; sqlite uses AutoMigrate")

func newMigrateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	var steps int

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.New(&a.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if a.cfg.Database.Driver == config.DriverSQLite {
				if err := db.AutoMigrate(); err != nil {
					return err
				}
				a.printf("schema migrated\n")
				return nil
			}

			runner, err := migrationRunner(db)
			if err != nil {
				return err
			}
			if err := runner.WaitForDatabase(); err != nil {
				return err
			}
			if err := runner.RunMigrations(); err != nil {
				return err
			}
			return printMigrationStatus(a, runner)
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, db, err := openPostgresRunner(a)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := runner.Down(steps); err != nil {
				return err
			}
			return printMigrationStatus(a, runner)
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the applied migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, db, err := openPostgresRunner(a)
			if err != nil {
				return err
			}
			defer db.Close()

			return printMigrationStatus(a, runner)
		},
	}

	cmd.AddCommand(up, down, status)
	return cmd
}

func newSeedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert missing default categories and attach them to every user",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.New(&a.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			inserted, err := database.SeedDefaultCategories(cmd.Context(), db.DB)
			if err != nil {
				return err
			}
			a.printf("default categories inserted: %d\n", inserted)
			return nil
		},
	}
}

func openPostgresRunner(a *app) (*database.MigrationRunner, *database.DB, error) {
	if a.cfg.Database.Driver != config.DriverPostgres {
		return nil, nil, errPostgresOnly
	}

	db, err := database.New(&a.cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	runner, err := migrationRunner(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return runner, db, nil
}

func migrationRunner(db *database.DB) (*database.MigrationRunner, error) {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return database.NewMigrationRunner(sqlDB), nil
}

func printMigrationStatus(a *app, runner *database.MigrationRunner) error {
	version, dirty, err := runner.GetMigrationStatus()
	if errors.Is(err, migrate.ErrNilVersion) {
		a.printf("no migrations applied\n")
		return nil
	}
	if err != nil {
		return err
	}
	a.printf("version: %d, dirty: %t\n", version, dirty)
	return nil
}
