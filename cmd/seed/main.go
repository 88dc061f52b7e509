// Command seed fills PostgreSQL and MongoDB with demo data.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/AnshRaj112/cinnamon-backend/internal/config"
	"github.com/AnshRaj112/cinnamon-backend/internal/database"
	"github.com/AnshRaj112/cinnamon-backend/internal/seed"
	"github.com/AnshRaj112/cinnamon-backend/internal/services"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	snippetsPerUser := flag.Int("snippets", 3, "Snippets per user")
	conditions := flag.Int("conditions", 5, "Health conditions to create (each with hunches, challenges and questions)")
	seedValue := flag.Int64("seed", 0, "Random seed (0 = time based)")
	shouldClean := flag.Bool("clean", false, "Clear snippets, users and health collections first")
	dryRun := flag.Bool("dry-run", false, "Build and validate data without writing")
	flag.Parse()

	log.Println("🌱 Cinnamon seeder")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if !*dryRun {
		if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
			log.Fatal("Failed to connect to PostgreSQL:", err)
		}
		defer database.DisconnectPostgres()

		if err := database.Connect(cfg.MongoURI, cfg.MongoDatabase); err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer database.Disconnect()

		if err := services.EnsureHealthIndexes(context.Background()); err != nil {
			log.Printf("⚠️  WARNING: failed to ensure MongoDB health indexes: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	summary, err := seed.NewSeeder(seed.Options{
		Users:           *numUsers,
		SnippetsPerUser: *snippetsPerUser,
		Conditions:      *conditions,
		Seed:            *seedValue,
		Clean:           *shouldClean,
		DryRun:          *dryRun,
	}).Run(ctx)
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Printf("✨ Done: %d users, %d snippets, %v", summary.Users, summary.Snippets, summary.Documents)
	log.Printf("🔑 All seeded users have the password: %s", seed.DemoPassword)
}
