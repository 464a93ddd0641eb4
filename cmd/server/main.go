// Package main is the entry point for the HCI Agent server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sahidmustakim/hci-agent/internal/config"
	"github.com/sahidmustakim/hci-agent/internal/handlers"
	"github.com/sahidmustakim/hci-agent/internal/router"
	"github.com/sahidmustakim/hci-agent/internal/services/gemini"
	"github.com/sahidmustakim/hci-agent/internal/store"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 HCI Agent %s starting...", Version)

	// Step 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	log.Printf("📋 Config loaded: port=%s, model=%s, max_upload=%dMB, max_pages=%d",
		cfg.Port, cfg.GeminiModel, cfg.MaxUploadMB, cfg.MaxPDFPages)

	// Step 2: Create Services
	var analyzer handlers.Analyzer
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.New(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("❌ Failed to create Gemini client: %v", err)
		}
		analyzer = client
		log.Printf("✅ Gemini client ready (model=%s)", client.Model())
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set, analysis requests will fail until it is configured")
	}

	resultStore := store.New(cfg.ResultCapacity, time.Duration(cfg.ResultTTLMinutes)*time.Minute)
	log.Printf("✅ Result store ready (capacity=%d, ttl=%dm)", cfg.ResultCapacity, cfg.ResultTTLMinutes)

	handlers.Version = Version

	// Step 3: Setup HTTP Router
	h := handlers.New(cfg, analyzer, resultStore)
	r, err := router.Setup(h)
	if err != nil {
		log.Fatalf("❌ Failed to set up router: %v", err)
	}

	// Step 4: Start the HTTP Server
	// The write timeout sits above the model timeout so a slow Gemini
	// call fails in the handler, not at the socket.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: time.Duration(cfg.ModelTimeout+60) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Step 5: Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("🛑 Received signal %v, shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server stopped. Goodbye!")
}
