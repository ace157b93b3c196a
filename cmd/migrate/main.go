// Command migrate bootstraps the database schema from the bun models
// and seeds the reference lookup tables (categories, ticket sectors).
package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"ticketeiro/internal/config"
	"ticketeiro/internal/models"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	cfg := config.Load()

	sqldb, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	log.Println("Creating tables...")
	createTables(ctx, db)

	log.Println("Seeding reference data...")
	seedData(ctx, db)

	log.Println("Done.")
}

func createTables(ctx context.Context, db *bun.DB) {
	tables := []interface{}{
		(*models.User)(nil),
		(*models.Category)(nil),
		(*models.TicketSector)(nil),
		(*models.Event)(nil),
		(*models.EventDay)(nil),
		(*models.Batch)(nil),
		(*models.Ticket)(nil),
	}
	for _, m := range tables {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			log.Fatalf("Failed to create table for %T: %v", m, err)
		}
	}
}

func seedData(ctx context.Context, db *bun.DB) {
	categories := []models.Category{
		{ID: "cat-show", Name: "Shows e Festas", CreatedAt: time.Now()},
		{ID: "cat-teatro", Name: "Teatro", CreatedAt: time.Now()},
		{ID: "cat-esporte", Name: "Esportes", CreatedAt: time.Now()},
		{ID: "cat-curso", Name: "Cursos e Workshops", CreatedAt: time.Now()},
	}
	if _, err := db.NewInsert().Model(&categories).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
		log.Printf("Failed to seed categories: %v", err)
	}

	sectors := []models.TicketSector{
		{ID: "sec-pista", Name: "Pista", CreatedAt: time.Now()},
		{ID: "sec-vip", Name: "Pista VIP", CreatedAt: time.Now()},
		{ID: "sec-camarote", Name: "Camarote", CreatedAt: time.Now()},
		{ID: "sec-arquibancada", Name: "Arquibancada", CreatedAt: time.Now()},
	}
	if _, err := db.NewInsert().Model(&sectors).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
		log.Printf("Failed to seed ticket sectors: %v", err)
	}
}
