package main

import (
	"database/sql"
	"log"

	"coachbot/internal/api"
	"coachbot/internal/config"
	"coachbot/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireAPI(); err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	store := storage.NewPostgres(db)
	if err := store.EnsureSchema(); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	if err := api.EnsureUsersTable(db); err != nil {
		log.Fatalf("Failed to ensure users table: %v", err)
	}

	server := api.NewServer(db, store, cfg.JWTSecret)

	log.Printf("API listening on :%s", cfg.HTTPPort)
	if err := server.Router().Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
