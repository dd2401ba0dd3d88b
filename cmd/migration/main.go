package main

import (
	"os"
	"path/filepath"
	"sparrc-service/internal/app/config"
	"sparrc-service/internal/app/drivers/database"
	"sparrc-service/internal/app/drivers/logger"

	migrate "github.com/rubenv/sql-migrate"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	db := database.NewMySQLDB(driverConfig)
	defer db.Close()

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error getting working directory: %v", err)
	}

	migrations := &migrate.FileMigrationSource{
		Dir: filepath.Join(wd, "internal/migration"),
	}

	n, err := migrate.Exec(db, "mysql", migrations, migrate.Up)
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.Printf("Applied %d migrations!", n)
}
