// cmd/migrate/main.go
// Imports races from a legacy MySQL race-calendar database into the
// local PostgreSQL database.
//
// Usage:
//
//	MYSQL_DSN="user:pass@tcp(host:3306)/calendar?parseTime=true" \
//	DB_PASS="pgpass" \
//	go run ./cmd/migrate
package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/code4projects/raceboard/config"
	bundb "github.com/code4projects/raceboard/db"
	"github.com/code4projects/raceboard/models"
)

const batchSize = 500

func main() {
	ctx := context.Background()

	cfg := config.Load()

	// --- MySQL ---
	if cfg.MySQLDSN == "" {
		log.Fatal("MYSQL_DSN required, e.g.: user:pass@tcp(host:3306)/calendar?parseTime=true")
	}
	myDB, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("open mysql: %v", err)
	}
	defer myDB.Close()
	myDB.SetMaxOpenConns(4)
	if err := myDB.PingContext(ctx); err != nil {
		log.Fatalf("ping mysql: %v", err)
	}
	log.Println("connected to MySQL")

	// --- PostgreSQL ---
	pgDB := bundb.Setup(cfg)
	defer pgDB.Close()
	log.Println("connected to PostgreSQL")

	// Create tables (idempotent)
	if err := bundb.CreateTables(ctx, pgDB); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	rows, err := myDB.QueryContext(ctx,
		"SELECT name, start_time, city, distance, COALESCE(website, '') FROM races ORDER BY start_time")
	if err != nil {
		log.Fatalf("query mysql races: %v", err)
	}
	defer rows.Close()

	var (
		batch    []models.Race
		imported int
	)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		if _, err := pgDB.NewInsert().Model(&batch).Exec(ctx); err != nil {
			log.Fatalf("insert batch: %v", err)
		}
		imported += len(batch)
		batch = batch[:0]
	}

	for rows.Next() {
		var (
			r     models.Race
			start time.Time
		)
		if err := rows.Scan(&r.Name, &start, &r.City, &r.Distance, &r.Website); err != nil {
			log.Fatalf("scan race: %v", err)
		}
		r.Time = start.UTC()

		// rows that would fail the app's own validation are skipped, not imported
		if r.Name == "" || r.Distance <= 0 {
			log.Printf("skipping invalid race %q (distance %d)", r.Name, r.Distance)
			continue
		}

		batch = append(batch, r)
		if len(batch) == batchSize {
			flush()
		}
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("iterate mysql races: %v", err)
	}
	flush()

	log.Printf("imported %d races", imported)
}
