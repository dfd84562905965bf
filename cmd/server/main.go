package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gusau-brt/ticketing-service/internal/api"
	"github.com/gusau-brt/ticketing-service/internal/config"
	"github.com/gusau-brt/ticketing-service/internal/handler"
	"github.com/gusau-brt/ticketing-service/internal/observability"
	"github.com/gusau-brt/ticketing-service/internal/receipt"
	"github.com/gusau-brt/ticketing-service/internal/repository/csvstore"
	service "github.com/gusau-brt/ticketing-service/internal/services"
)

func main() {
	cfg := config.Load()

	shutdown, _ := observability.Setup("ticketing-service")
	defer shutdown(context.Background())

	userRepo, err := csvstore.NewCSVUserRepository(filepath.Join(cfg.DataDir, "users.csv"))
	if err != nil {
		log.Fatalf("Failed to open users table: %v", err)
	}
	walletRepo, err := csvstore.NewCSVWalletRepository(filepath.Join(cfg.DataDir, "wallets.csv"))
	if err != nil {
		log.Fatalf("Failed to open wallets table: %v", err)
	}
	ticketRepo, err := csvstore.NewCSVTicketRepository(filepath.Join(cfg.DataDir, "tickets.csv"))
	if err != nil {
		log.Fatalf("Failed to open tickets table: %v", err)
	}
	receipts, err := receipt.NewPNGGenerator(cfg.QRDir)
	if err != nil {
		log.Fatalf("Failed to prepare QR dir: %v", err)
	}

	svc := service.NewTicketingService(userRepo, walletRepo, ticketRepo, receipts)
	h := handler.NewHandler(svc, cfg.QRDir)
	router := api.SetupRouter(h)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}
	go func() {
		log.Printf("Starting server on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
