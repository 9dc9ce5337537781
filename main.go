package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dmhr-service/config"
	httpLayer "dmhr-service/http"
	"dmhr-service/repository"
	"dmhr-service/service"
)

func main() {
	cfg := config.Load()

	calcRepo := repository.NewCalculationRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
	} else {
		cache = repository.NewMockCache()
	}

	costService := service.NewCostService(calcRepo)
	comparisonService := service.NewComparisonService(costService, cache)
	reportService := service.NewReportService(cfg.ReportPrecision)

	costHandler := httpLayer.NewCostHandler(costService, cfg.ReportPrecision)
	comparisonHandler := httpLayer.NewComparisonHandler(comparisonService, cfg.ReportPrecision)
	reportHandler := httpLayer.NewReportHandler(costService, comparisonService, reportService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/dmhr/calculate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(costHandler.Calculate),
		),
	)

	mux.Handle(
		"/dmhr/compare",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(comparisonHandler.Compare),
		),
	)

	mux.Handle(
		"/dmhr/report",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(reportHandler.Export),
		),
	)

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 DMHR API corriendo en http://localhost%s", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
