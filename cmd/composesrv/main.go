// Command composesrv is the HTTP front end for the composition
// pipeline (SPEC_FULL.md A.4): POST /v1/documents renders a document
// and streams back the PDF, GET /healthz reports liveness, and
// GET /metrics exposes Prometheus counters/histograms.
//
// Grounded on the teacher's cmd/gopdfsuit/main.go: gin.New() (skipping
// gin.Default()'s Logger middleware), a lightweight custom recovery
// middleware, and a semaphore-channel concurrency gate sized for
// CPU-bound work — generalized from a fixed worker count to the
// config-driven max_concurrent_jobs setting. Prometheus wiring follows
// sigex-kz-ddc's promhttp.Handler-on-its-own-mux pattern.
package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chinmay-sawant/legalcompose/internal/config"
	"github.com/chinmay-sawant/legalcompose/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	logging.Configure(cfg.Logging.Level, cfg.Logging.Format)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("panic recovered", slog.Any("panic", r))
				c.AbortWithStatus(http.StatusInternalServerError)
			}
		}()
		c.Next()
	})

	maxConcurrent := cfg.Server.MaxConcurrentJobs
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	semaphore := make(chan struct{}, maxConcurrent)
	router.Use(func(c *gin.Context) {
		semaphore <- struct{}{}
		defer func() { <-semaphore }()
		c.Next()
	})

	registerMetricsMiddleware(router)
	router.Use(requestIDMiddleware())
	router.GET("/healthz", handleHealthz)
	router.POST("/v1/documents", handleCompose(cfg))

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{Addr: ":9090", Handler: metricsMux}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server failed", slog.String("error", err.Error()))
		}
	}()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down composesrv")
}

func handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
