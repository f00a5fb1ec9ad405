package main

import (
	"errors"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/healthtrack/backend/config"
	"github.com/healthtrack/backend/internal/database"
	"github.com/healthtrack/backend/internal/logging"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, true)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if *rollback {
		err := database.RollbackLast(db, database.MigrationsFS(), logger)
		if errors.Is(err, database.ErrNoMigrations) {
			logger.Info("No migrations to rollback")
			return
		}
		if err != nil {
			logger.Fatal("Rollback failed", zap.Error(err))
		}
		return
	}

	if err := database.RunMigrations(db, database.MigrationsFS(), logger); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}
	logger.Info("Migrations complete")
}
