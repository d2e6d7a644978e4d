package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/vncsmyrnk/votepage/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/votepage/internal/config"
)

// Usage: migrations <name>, e.g. "create_votes.up", or "all" to apply every up migration.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("a migration name is required.")
	}
	migrationName := os.Args[1]

	cfg := config.Read()
	db, err := sql.Open("postgres", cfg.PostgresConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if migrationName == "all" {
		if err := postgres.ApplyUp(context.Background(), db); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Migrations executed successfully.")
		return
	}

	fileContent, err := postgres.MigrationContent(migrationName)
	if err != nil {
		log.Fatal(err)
	}

	_, err = db.Exec(string(fileContent))
	if err != nil {
		log.Fatalf("Failed to execute SQL file: %v", err)
	}

	fmt.Println("Migration file executed successfully.")
}
