package migration

import (
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql" // mysql driver
	_ "github.com/golang-migrate/migrate/v4/source/file"    // file source
	"github.com/spf13/cobra"
)

// DefaultSourceDir is the migrations directory relative to the root of the module
const DefaultSourceDir = "migrations"

func withMultiStatements(dsn string) string {
	if strings.Contains(dsn, "multiStatements=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&multiStatements=true"
	}
	return dsn + "?multiStatements=true"
}

func newMigrate(sourceDir string, dsn string) (*migrate.Migrate, error) {
	return migrate.New("file://"+sourceDir, "mysql://"+withMultiStatements(dsn))
}

func closeMigrate(m *migrate.Migrate) {
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		fmt.Println("[ERROR] close source:", sourceErr)
	}
	if dbErr != nil {
		fmt.Println("[ERROR] close database:", dbErr)
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateUpForTesting applies all migrations, panics on failure
func MigrateUpForTesting(rootDir string, dsn string) {
	m, err := newMigrate(path.Join(rootDir, DefaultSourceDir), dsn)
	if err != nil {
		panic(err)
	}
	defer closeMigrate(m)

	if err := ignoreNoChange(m.Up()); err != nil {
		panic(err)
	}
}

// MigrateCommand returns the root command with up, down, version and force sub commands
func MigrateCommand(dsn string) *cobra.Command {
	sourceDir := DefaultSourceDir

	run := func(fn func(m *migrate.Migrate) error) error {
		m, err := newMigrate(sourceDir, dsn)
		if err != nil {
			return err
		}
		defer closeMigrate(m)
		return fn(m)
	}

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "database schema migration",
	}
	rootCmd.PersistentFlags().StringVar(&sourceDir, "source", DefaultSourceDir, "migrations directory")

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "apply all up migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(m *migrate.Migrate) error {
				return ignoreNoChange(m.Up())
			})
		},
	}

	downCmd := &cobra.Command{
		Use:   "down [steps]",
		Short: "revert migrations, one step by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid steps: %s", args[0])
				}
				steps = n
			}
			return run(func(m *migrate.Migrate) error {
				return ignoreNoChange(m.Steps(-steps))
			})
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(m *migrate.Migrate) error {
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Println("VERSION: none")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Println("VERSION:", version, "DIRTY:", dirty)
				return nil
			})
		},
	}

	forceCmd := &cobra.Command{
		Use:   "force <version>",
		Short: "set migration version without running migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid version: %s", args[0])
			}
			return run(func(m *migrate.Migrate) error {
				return m.Force(version)
			})
		},
	}

	rootCmd.AddCommand(upCmd, downCmd, versionCmd, forceCmd)
	return rootCmd
}
