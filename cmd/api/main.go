package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/georgemunganga/printa-closet/internal/app"
	"github.com/georgemunganga/printa-closet/internal/config"
	"github.com/georgemunganga/printa-closet/internal/modules/auth"
	"github.com/georgemunganga/printa-closet/internal/modules/catalog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()
	fmt.Printf("Catalog loaded from %s\n", cfg.CatalogSource())

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	if cfg.MetricsEnabled {
		router.Handle("/metrics", promhttp.Handler())
	}

	// ── Admin auth ──────────────────────────────────────────
	authService := auth.NewService(auth.Config{
		Secret:            []byte(cfg.JWTSecret),
		AdminUsername:     cfg.AdminUsername,
		AdminPasswordHash: cfg.AdminPasswordHash,
	})
	authHandler := auth.NewHandler(authService)
	authHandler.RegisterRoutes(router)

	// ── Catalog ─────────────────────────────────────────────
	catalog.NewHandler(a.Service, authHandler.Middleware).RegisterRoutes(router)
	catalog.NewPages(a.Service).RegisterRoutes(router)

	// ── Start Server ─────────────────────────────────────────
	fmt.Printf("Closet server starting on :%s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
