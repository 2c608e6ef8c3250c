package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/auth-claims-service/internal/config"     // Internal config loader
	"github.com/iliyamo/auth-claims-service/internal/database"   // MySQL connection pool
	"github.com/iliyamo/auth-claims-service/internal/handler"    // HTTP handlers
	"github.com/iliyamo/auth-claims-service/internal/queue"      // Background event consumer
	"github.com/iliyamo/auth-claims-service/internal/repository" // Credential store access
	"github.com/iliyamo/auth-claims-service/internal/router"     // Internal router setup
)

func main() {
	// Load a .env file when present; a missing file is fine because
	// production environments inject real environment variables.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables the permission cache and
	// claims resolution reads straight from MySQL.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, permission cache disabled")
	}

	accounts := repository.NewAccountRepo(db)
	perms := repository.NewPermissionCache(accounts, rdb, config.LoadPermCacheConfig())
	auth := handler.NewAuthHandler(cfg, accounts, perms)

	// Consume account.registered events in the background.  The consumer
	// runs its own reconnect loop and never takes the server down.
	go func() {
		if err := queue.StartAccountConsumer(); err != nil {
			log.Printf("account consumer stopped: %v", err)
		}
	}()

	e := echo.New()             // Create Echo instance
	router.RegisterRoutes(e)    // Health check
	router.RegisterAuth(e, auth) // Register/login/claims endpoints

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
