package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nandu-kp/paygate/config"
	"github.com/nandu-kp/paygate/controllers"
	"github.com/nandu-kp/paygate/routes"
	"github.com/nandu-kp/paygate/settlement"
	"github.com/nandu-kp/paygate/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer utils.SyncLogger()

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Seed the well-known test merchant
	if err := controllers.SeedTestMerchant(); err != nil {
		utils.LogError("Failed to seed test merchant: %v", err)
		log.Fatal("Failed to seed test merchant:", err)
	}

	// Start the settlement worker pool
	processor := settlement.NewProcessor(settlement.Config{
		TestMode:           cfg.TestMode,
		TestDelay:          cfg.TestProcessingDelay,
		TestOutcomeSuccess: cfg.TestPaymentSuccess,
		MinDelay:           cfg.ProcessingDelayMin,
		MaxDelay:           cfg.ProcessingDelayMax,
		UPISuccessRate:     cfg.UPISuccessRate,
		CardSuccessRate:    cfg.CardSuccessRate,
		Workers:            cfg.SettlementWorkers,
	}, settlement.NewStore(config.DB))
	processor.Start()
	controllers.SetSettlementProcessor(processor)

	// Set up router
	router := routes.SetupRouter()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		utils.LogInfo("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.LogError("Error starting server: %v", err)
			log.Fatal("Error starting server:", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.LogInfo("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.LogError("Server forced to shutdown: %v", err)
	}

	// Resolve outstanding settlements before exiting so no payment is
	// abandoned mid-flight.
	if err := processor.Shutdown(ctx); err != nil {
		utils.LogError("Settlement drain incomplete: %v", err)
	}

	utils.LogInfo("Server exited")
}
