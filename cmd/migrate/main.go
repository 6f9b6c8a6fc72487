// Command migrate applies the database schema. Production deployments run
// this explicitly; development connections migrate automatically.
package main

import (
	"log"

	"mosaic/internal/config"
	"mosaic/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Println("schema migration applied")
}
