// main.go
package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"hotel-booking/cmd"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/notify"
	"hotel-booking/internal/voucher"
	"hotel-booking/internal/wire"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/utils"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize repositories and ensure the schema exists
	repos := repository.NewRepository(db, logger)
	if err := repos.Booking.EnsureSchema(context.Background()); err != nil {
		logger.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	// Voucher renderer (creates the voucher directory if absent)
	renderer, err := voucher.NewRenderer(config.Voucher, logger)
	if err != nil {
		logger.Fatal("Failed to init voucher renderer", zap.Error(err))
	}

	// WhatsApp dispatcher
	dispatcher := notify.NewDispatcher(config.Twilio, config.Voucher.HotelName, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, renderer, dispatcher, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
