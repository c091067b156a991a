package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// ServerConfigFromEnv membaca PORT dan SERVER_*_TIMEOUT dari env;
// nilai kosong atau tidak valid jatuh ke default.
func ServerConfigFromEnv() ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	return ServerConfig{
		Port:            port,
		ReadTimeout:     envDuration("SERVER_READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    envDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     envDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: envDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

// StartHTTPServer menjalankan API sampai menerima SIGINT/SIGTERM lalu
// shutdown rapi. Event start dan stop tercatat di audit logger.
func StartHTTPServer(
	router *gin.Engine,
	cfg ServerConfig,
	audit AuditLogger,
) {
	log := zap.L().Named("bootstrap")

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	audit.Log(context.Background(), AuditLog{
		Action:  "SERVER_START",
		Message: "Asset tracking API listening",
		Meta: map[string]any{
			"port": cfg.Port,
		},
	})

	go func() {
		log.Info("http server listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info("shutdown signal received", zap.String("signal", sig.String()))

	// Audit dicatat sebelum listener ditutup supaya event tidak hilang.
	audit.Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Asset tracking API shutting down",
		Meta: map[string]any{
			"signal": sig.String(),
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
		return
	}
	log.Info("server exited cleanly")
}
