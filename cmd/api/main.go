package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JosephVasc/arenameta/common/data"
	"github.com/JosephVasc/arenameta/common/utils"
	"github.com/JosephVasc/arenameta/internal/api"
	"github.com/JosephVasc/arenameta/internal/config"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadEnvironment()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v\n", err)
	}

	logger, err := utils.NewLogger(cfg.ElasticUrl, cfg.ServiceName)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	db, err := data.NewPgDbContext(cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	server := api.NewServer(cfg, db, logger)
	go func() {
		addr := fmt.Sprintf(":%s", cfg.ServerPort)
		if err := server.Start(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Server started successfully", zap.String("port", cfg.ServerPort))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}
