// Command valuecore runs the value object layer's HTTP introspection
// surface standalone: an empty keyspace Store plus the OBJECT/MEMORY
// command set exposed over HTTP, for operators and tests that want to
// poke at it without embedding the package in a larger host database.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"valuecore/api"
	"valuecore/command"
	"valuecore/config"
	"valuecore/logger"
	"valuecore/object"
	"valuecore/object/memaccount"
)

func main() {
	logger.Configure()

	cfg := config.Current()
	logger.Info("valuecore starting (eviction policy=%s, embstr limit=%d)", cfg.EvictionPolicy, cfg.EmbstrLimit)

	store := object.NewStore()

	monitor := memaccount.NewMonitor(30 * time.Second)
	monitor.Start()
	defer monitor.Stop()
	command.SetPressureMonitor(monitor)

	handler := api.NewHandler(store)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     logger.SetHTTPServerErrorLog(),
	}

	go func() {
		logger.Info("listening on :%d", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("received signal %v, shutting down", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error: %v", err)
	}
	logger.Info("valuecore shutdown complete")
}
