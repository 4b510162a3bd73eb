package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/zunnuran/discord-bot/internal/config"
	"github.com/zunnuran/discord-bot/internal/database"
	"github.com/zunnuran/discord-bot/internal/discord"
	"github.com/zunnuran/discord-bot/internal/domain/service"
	"github.com/zunnuran/discord-bot/internal/handlers"
	"github.com/zunnuran/discord-bot/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	dm := database.NewInstance(db)
	gateway := discord.New(cfg.DiscordBotToken)
	services := service.NewInstance(dm, gateway)

	if err := services.Runtime.Start(); err != nil {
		log.Fatalf("Failed to start bot runtime: %v", err)
	}
	defer services.Runtime.Stop()

	handler := handlers.New(services.Runtime)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.Router(),
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	server.Close()
}
