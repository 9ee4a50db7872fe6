package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/bakehouse/bakehouse-go/internal/config"
	"github.com/bakehouse/bakehouse-go/internal/handler"
	"github.com/bakehouse/bakehouse-go/internal/middleware"
	"github.com/bakehouse/bakehouse-go/internal/repository"
	"github.com/bakehouse/bakehouse-go/internal/service"
	"github.com/bakehouse/bakehouse-go/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	authService := service.NewAuthService(cfg)
	authHandler := handler.NewAuthHandler(authService)

	cakeRepo := repository.NewCakeRepository(db)
	catalogService := service.NewCatalogService(cakeRepo)
	imageStore := storage.NewImageStore(cfg.UploadDir)
	cakeHandler := handler.NewCakeHandler(catalogService, imageStore)

	siteHandler := handler.NewSiteHandler(cfg.WhatsAppNumber)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/auth/login", authHandler.HandleLogin)
	r.Get("/api/site", siteHandler.HandleSiteInfo)

	r.Get("/api/cakes", cakeHandler.HandleListCakes)
	r.Get("/api/cakes/featured", cakeHandler.HandleListFeatured)
	r.Get("/api/cakes/categories", cakeHandler.HandleListCategories)
	r.Get("/api/cakes/category/{category}", cakeHandler.HandleListByCategory)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/cakes/{id}", cakeHandler.HandleGetCake)
		r.Post("/api/cakes", cakeHandler.HandleCreateCake)
		r.Put("/api/cakes/{id}", cakeHandler.HandleUpdateCake)
		r.Delete("/api/cakes/{id}", cakeHandler.HandleDeleteCake)
	})

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
