package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"customer-management/internal/api"
	"customer-management/internal/config"
	"customer-management/internal/database"
	"customer-management/internal/modules/address"
	"customer-management/internal/modules/customer"
	"customer-management/pkg/logging"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// 1. --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. --- Logging ---
	// Access log and error log are plain append-only files next to the process.
	accessLog, err := logging.OpenAccessLog(cfg.LogDir)
	if err != nil {
		log.Fatalf("Failed to open access log: %v", err)
	}
	defer accessLog.Close()

	errorLogger, err := logging.NewErrorLogger(cfg.LogDir)
	if err != nil {
		log.Fatalf("Failed to open error log: %v", err)
	}
	defer errorLogger.Sync()

	// 3. --- Middleware ---
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Output: accessLog}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", cfg.ClientOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// 4. --- Database Connection ---
	// The pool is the only shared state in the process and is shared across
	// all request handlers.
	dbPool, err := database.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := database.EnsureSchema(context.Background(), dbPool); err != nil {
		log.Fatalf("Unable to create schema: %v", err)
	}
	e.Logger.Info("Successfully connected to the database!")

	// 5. --- Dependency Injection (Wiring everything up) ---
	// --- Customers Module ---
	customerRepo := customer.NewRepository(dbPool)
	customerService := customer.NewService(customerRepo)
	customerHandler := customer.NewHandler(customerService, errorLogger)

	// --- Addresses Module ---
	addressRepo := address.NewRepository(dbPool)
	addressService := address.NewService(addressRepo)
	addressHandler := address.NewHandler(addressService, errorLogger)

	// 6. --- Initialize Router ---
	api.SetupRoutes(e, customerHandler, addressHandler)

	// 7. --- Start Server with graceful shutdown logic ---
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server an error occurred:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exiting")
}
