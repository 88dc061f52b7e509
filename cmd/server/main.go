package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/AnshRaj112/cinnamon-backend/internal/config"
	"github.com/AnshRaj112/cinnamon-backend/internal/database"
	"github.com/AnshRaj112/cinnamon-backend/internal/handlers"
	"github.com/AnshRaj112/cinnamon-backend/internal/middleware"
	"github.com/AnshRaj112/cinnamon-backend/internal/routes"
	"github.com/AnshRaj112/cinnamon-backend/internal/services"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()
	handlers.DefaultPageSize = cfg.DefaultPageSize

	// Connect to PostgreSQL (snippets, users)
	log.Printf("Connecting to PostgreSQL...")
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer database.DisconnectPostgres()

	// Connect to Redis (sessions, rate limiting)
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Connect to MongoDB (health tracking)
	if err := database.Connect(cfg.MongoURI, cfg.MongoDatabase); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := services.EnsureHealthIndexes(indexCtx); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure MongoDB health indexes: %v", err)
	} else {
		log.Println("✅ MongoDB health indexes ensured")
	}
	cancel()

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)

	// CORS first so preflight never hits rate limiting
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Production: SecurityHeaders → HostCheck → GlobalRateLimit → LoginRateLimit
	// Non-production: Redis-based rate limit only
	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity(cfg.AllowedHost) {
			r.Use(mw)
		}
		log.Println("✅ Production security enabled (security headers, host check, per-IP + login rate limiting)")
	} else {
		r.Use(middleware.RateLimitMiddleware)
	}
	r.Use(middleware.SnippetWriteRateLimit)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	routes.SetupRoutes(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("🚀 Cinnamon backend running on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
