package main

import (
	"flag"
	"log"

	"github.com/AKARSH147/hrms/internal/shared/config"
	"github.com/AKARSH147/hrms/internal/shared/connection"

	"github.com/joho/godotenv"
)

func main() {
	migrationsDir := flag.String("dir", "db/migrations", "directory containing migration files")
	flag.Parse()

	action := "up"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	_ = godotenv.Load()
	cfg := config.Load()
	databaseURL := cfg.DatabaseURL()

	switch action {
	case "up":
		if err := connection.MigrateUp(*migrationsDir, databaseURL); err != nil {
			log.Fatalf("migration up failed: %v", err)
		}
	case "down":
		if err := connection.MigrateDown(*migrationsDir, databaseURL); err != nil {
			log.Fatalf("migration down failed: %v", err)
		}
	case "version":
		version, dirty, err := connection.MigrateVersion(*migrationsDir, databaseURL)
		if err != nil {
			log.Fatalf("migration version failed: %v", err)
		}
		log.Printf("version=%d dirty=%t", version, dirty)
		return
	default:
		log.Fatalf("unsupported action %q", action)
	}

	log.Printf("migration %s completed", action)
}
