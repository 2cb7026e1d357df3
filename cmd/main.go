package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"task-manager-api/internal/config"
	router "task-manager-api/internal/http"
	"task-manager-api/internal/http/handlers"
	"task-manager-api/internal/logging"
	"task-manager-api/internal/service"
	"task-manager-api/internal/store/memory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", "err", err)
	}

	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	logger := logging.New(opts)

	store := memory.New()

	service, err := service.New(store)
	if err != nil {
		logger.Fatal("service initiation failed", "err", err)
	}

	handler := handlers.New(service)

	router := router.New(handler, logger)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", "err", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	<-stop
	logger.Info("shut down signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown failed", "err", err)
	}

	logger.Info("shut down gracefully")
}
