package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/softpen/tonerelay/internal/config"
	"github.com/softpen/tonerelay/internal/db"
	"github.com/softpen/tonerelay/internal/gateway"
	"github.com/softpen/tonerelay/internal/logging"
	"github.com/softpen/tonerelay/internal/prompts"
	"github.com/softpen/tonerelay/internal/relay/handlers"
	"github.com/softpen/tonerelay/internal/relay/monitor"
	"github.com/softpen/tonerelay/internal/rewrite"
	"github.com/softpen/tonerelay/internal/usage"
	"github.com/softpen/tonerelay/internal/version"
)

func main() {
	cfg := config.FromEnv()

	// Optional tone instruction overrides
	if err := prompts.LoadOverrides(cfg.TonesPath); err != nil {
		log.Fatalf("Failed to load tone overrides: %v", err)
	}

	// Initialize database (request log monitor)
	database, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	requestMonitor := monitor.NewRequestMonitor(database)

	// Initialize usage counter (file-backed, survives restarts)
	usageStore := usage.NewStore(usage.NewFilePersistence(cfg.UsagePath))

	// Initialize upstream rewriter. A missing key is not fatal at boot:
	// every format call then fails with a configuration error while
	// /health and /usage keep working.
	var rewriter rewrite.Rewriter
	if client, err := rewrite.NewOpenAIRewriter(cfg.OpenAIKey); err != nil {
		log.Printf("⚠️ Rewriter disabled: %v", err)
	} else {
		rewriter = client
	}

	gw := gateway.New(rewriter, usageStore)

	// Create router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(logging.RequestID)

	r.Post("/format", handlers.FormatHandlerWithMonitor(gw, requestMonitor))
	r.Get("/usage", handlers.UsageHandler(usageStore))
	r.Get("/health", handlers.HealthHandler(cfg.Env))

	// Monitor API (metadata only, no text content)
	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", handlers.StatsHandler(requestMonitor))
		r.Get("/logs", handlers.LogsHandler(requestMonitor))
	})

	// Everything else falls back to the single-page client
	r.NotFound(handlers.AppHandler())

	log.Printf("🎛️ ToneRelay %s starting on http://%s (env=%s, usage=%d)",
		version.Version, cfg.Addr(), cfg.Env, usageStore.Read())

	if err := http.ListenAndServe(cfg.Addr(), r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
