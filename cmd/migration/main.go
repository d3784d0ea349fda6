package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

var errUnknownCommand = errors.New("unknown command")

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	if err := run(strings.ToLower(strings.TrimSpace(os.Args[1])), os.Args[2:]); err != nil {
		if errors.Is(err, errUnknownCommand) {
			printUsage()
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "migration:", err)
		os.Exit(1)
	}
}

func run(cmd string, args []string) error {
	_ = godotenv.Load()

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	// lib/pq and golang-migrate accept either scheme; keep the canonical one.
	if strings.HasPrefix(dbURL, "postgres://") {
		dbURL = "postgresql://" + strings.TrimPrefix(dbURL, "postgres://")
	}

	dir, err := migrationsDir()
	if err != nil {
		return err
	}

	m, err := migrate.New("file://"+filepath.ToSlash(dir), dbURL)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			fmt.Fprintln(os.Stderr, "close migration source:", srcErr)
		}
		if dbErr != nil {
			fmt.Fprintln(os.Stderr, "close migration db:", dbErr)
		}
	}()

	switch cmd {
	case "up":
		if err := apply(m.Up()); err != nil {
			return err
		}
		fmt.Printf("migrations applied (dir=%s)\n", dir)
	case "down":
		steps := 1
		if len(args) > 0 {
			steps, err = strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil || steps <= 0 {
				return fmt.Errorf("invalid down steps %q", args[0])
			}
		}
		if err := apply(m.Steps(-steps)); err != nil {
			return err
		}
		fmt.Printf("rolled back %d migration(s)\n", steps)
	case "version":
		version, dirty, versionErr := m.Version()
		if errors.Is(versionErr, migrate.ErrNilVersion) {
			fmt.Println("version: none")
			fmt.Println("dirty: false")
			return nil
		}
		if versionErr != nil {
			return fmt.Errorf("read version: %w", versionErr)
		}
		fmt.Printf("version: %d\ndirty: %t\n", version, dirty)
	case "force":
		version, err := parseVersion(args)
		if err != nil {
			return err
		}
		if err := m.Force(version); err != nil {
			return fmt.Errorf("force version %d: %w", version, err)
		}
		fmt.Printf("forced version to %d\n", version)
	case "goto", "migrate":
		version, err := parseVersion(args)
		if err != nil {
			return err
		}
		if err := apply(m.Migrate(uint(version))); err != nil {
			return err
		}
		fmt.Printf("migrated to version %d\n", version)
	default:
		return errUnknownCommand
	}

	return nil
}

// apply treats migrate.ErrNoChange as success.
func apply(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("no migration changes")
		return nil
	}
	return err
}

func parseVersion(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("a version argument is required")
	}
	version, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || version < 0 {
		return 0, fmt.Errorf("invalid version %q", args[0])
	}
	return version, nil
}

func migrationsDir() (string, error) {
	candidates := []string{
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		"./migrations",
		"/app/migrations",
	}
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", errors.New("migration directory not found (checked MIGRATIONS_DIR, ./migrations, /app/migrations)")
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <command> [args]\n\n", name)
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  up             apply all pending migrations")
	fmt.Fprintln(os.Stderr, "  down [n]       roll back n migrations (default 1)")
	fmt.Fprintln(os.Stderr, "  version        print the current schema version")
	fmt.Fprintln(os.Stderr, "  force <v>      set the version without running migrations")
	fmt.Fprintln(os.Stderr, "  goto <v>       migrate up or down to version v")
}
