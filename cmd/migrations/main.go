package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Target        string `long:"target" env:"MIGRATIONS_TARGET" choice:"mongodb" choice:"clickhouse" default:"mongodb" description:"database to migrate"`
	DatabaseURL   string `long:"database-url" env:"MIGRATIONS_DATABASE_URL" description:"migrate database URL, e.g. mongodb://localhost:27017/bc_adapter or clickhouse://localhost:9000/default" required:"true"`
	MigrationsDir string `long:"migrations-dir" env:"MIGRATIONS_DIR" description:"migration files root, the target name is appended" default:"migrations"`
	Down          bool   `long:"down" env:"MIGRATIONS_DOWN" description:"roll every migration back"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runMigrations(ctx, cfg, logger.With(zap.String("target", cfg.Target))); err != nil {
		logger.Fatal("migration run failed", zap.Error(err))
	}
}

func sourceURL(root, target string) (string, error) {
	dir, err := filepath.Abs(filepath.Join(root, target))
	if err != nil {
		return "", fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("stat migrations dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", dir)
	}
	return "file://" + filepath.ToSlash(dir), nil
}

func runMigrations(ctx context.Context, cfg config, logger *zap.Logger) error {
	src, err := sourceURL(cfg.MigrationsDir, cfg.Target)
	if err != nil {
		return err
	}

	m, err := migrate.New(src, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Warn("migration source close error", zap.Error(srcErr))
		}
		if dbErr != nil {
			logger.Warn("migration database close error", zap.Error(dbErr))
		}
	}()

	go func() {
		<-ctx.Done()
		m.GracefulStop <- true
	}()

	if cfg.Down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to apply")
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read migration version: %w", err)
	}
	logger.Info("migrations applied", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
