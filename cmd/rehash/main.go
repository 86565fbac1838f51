// Command rehash converts legacy plaintext passwords in usuarios.contrasena
// into bcrypt hashes. Run it once against a database written by the old
// service before pointing this one at it.
package main

import (
	"context"
	"log"
	"os"

	"go-vacancy-backend/config"
	"go-vacancy-backend/internal/repository/sqlrepo"
	"go-vacancy-backend/pkg/database"
	"go-vacancy-backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.Dialect, cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	n, err := sqlrepo.UpgradePlaintextSecrets(ctx, db)
	if err != nil {
		logger.Log.Error("Rehash stopped", "upgraded", n, "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Rehash complete", "upgraded", n)
}
